// Command lexgo indexes a JSON-lines corpus and answers N-of-M ranked
// queries read from stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hupe1980/lexgo"
	"github.com/hupe1980/lexgo/analysis"
	"github.com/hupe1980/lexgo/corpus"
	"github.com/hupe1980/lexgo/index"
	"github.com/hupe1980/lexgo/postings"
	"github.com/hupe1980/lexgo/ranker"
)

func main() {
	configPath := flag.String("config", "lexgo.yaml", "path to config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := lexgo.NewTextLogger(level)

	c, err := corpus.LoadJSONLFile(cfg.Corpus)
	if err != nil {
		logger.Error("failed to load corpus", "path", cfg.Corpus, "error", err)
		os.Exit(1)
	}

	compression, err := cfg.compression()
	if err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	indexOpts := []index.Option{index.WithLogger(logger.Logger)}
	if cfg.CompressedLists {
		indexOpts = append(indexOpts, index.WithCompressedLists(compression))
	}

	normalizer := analysis.NewSimpleNormalizer()
	tokenizer := analysis.NewSimpleTokenizer()

	idx, err := index.New(c, cfg.Fields, normalizer, tokenizer, indexOpts...)
	if err != nil {
		logger.Error("failed to build index", "error", err)
		os.Exit(1)
	}

	engine := lexgo.NewSearchEngine(c, idx, lexgo.WithLogger(logger))
	opts := lexgo.Options{
		MatchThreshold: cfg.MatchThreshold,
		HitCount:       cfg.HitCount,
	}

	newRanker, err := cfg.newRanker(c, idx)
	if err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(1)
	}

	fmt.Printf("indexed %d documents, %d terms; enter queries (ctrl-d to exit)\n",
		c.Size(), idx.VocabularySize())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("query> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}

		results, err := engine.Evaluate(query, opts, newRanker())
		if err != nil {
			logger.Error("query failed", "query", query, "error", err)
			continue
		}
		if len(results) == 0 {
			fmt.Println("no matches")
			continue
		}
		for i, r := range results {
			fmt.Printf("%2d. %8.4f  %s\n", i+1, r.Score, describe(r.Document, cfg.Fields))
		}
	}
}

// describe renders a one-line preview of a document's indexed fields.
func describe(doc corpus.Document, fields []string) string {
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if v := doc.Field(field, ""); v != "" {
			parts = append(parts, v)
		}
	}
	line := strings.Join(parts, " | ")
	if len(line) > 120 {
		line = line[:117] + "..."
	}
	return fmt.Sprintf("[%d] %s", doc.DocumentID(), line)
}

func (c *config) newRanker(cp corpus.Corpus, idx index.Index) (func() ranker.Ranker, error) {
	switch c.Ranker {
	case "", "frequency":
		return func() ranker.Ranker { return ranker.NewFrequencyRanker() }, nil
	case "tfidf":
		return func() ranker.Ranker { return ranker.NewTFIDFRanker(cp, idx) }, nil
	default:
		return nil, fmt.Errorf("unknown ranker %q", c.Ranker)
	}
}

func (c *config) compression() (postings.Compression, error) {
	switch strings.ToLower(c.Compression) {
	case "", "none":
		return postings.CompressionNone, nil
	case "lz4":
		return postings.CompressionLZ4, nil
	case "zstd":
		return postings.CompressionZSTD, nil
	default:
		return postings.CompressionNone, fmt.Errorf("unknown compression %q", c.Compression)
	}
}
