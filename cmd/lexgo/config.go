package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config is the YAML configuration for the lexgo command.
type config struct {
	// Corpus is the path to a newline-delimited JSON corpus file.
	Corpus string `yaml:"corpus"`

	// Fields lists the document fields to index.
	Fields []string `yaml:"fields"`

	// CompressedLists enables varint-delta posting lists.
	CompressedLists bool `yaml:"compressed_lists"`

	// Compression selects the block codec: none, lz4 or zstd.
	Compression string `yaml:"compression"`

	// MatchThreshold is the N-of-M match threshold in (0, 1].
	MatchThreshold float64 `yaml:"match_threshold"`

	// HitCount caps the number of results per query.
	HitCount int `yaml:"hit_count"`

	// Ranker selects the scoring strategy: frequency or tfidf.
	Ranker string `yaml:"ranker"`

	// Verbose enables per-match debug logging.
	Verbose bool `yaml:"verbose"`
}

func loadConfig(path string) (*config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := config{
		Fields:         []string{"body"},
		MatchThreshold: 0.5,
		HitCount:       10,
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Corpus == "" {
		return nil, fmt.Errorf("%s: corpus path is required", path)
	}
	return &cfg, nil
}
