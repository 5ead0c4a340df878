package corpus

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadJSONL reads a corpus from a stream of newline-delimited JSON
// objects. Each object's members become document fields; document ids
// are assigned sequentially in input order. Blank lines are skipped.
func LoadJSONL(r io.Reader) (*InMemoryCorpus, error) {
	c := NewInMemoryCorpus()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var fields map[string]any
		if err := json.Unmarshal([]byte(text), &fields); err != nil {
			return nil, fmt.Errorf("corpus: line %d: %w", line, err)
		}
		c.AddFields(fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	return c, nil
}

// LoadJSONLFile reads a newline-delimited JSON corpus from disk.
func LoadJSONLFile(path string) (*InMemoryCorpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: %w", err)
	}
	defer f.Close()

	return LoadJSONL(f)
}
