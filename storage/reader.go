package storage

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/yuvrxj-24/sales-analytics-system/utils"
)

// SalesReader reads the raw sales file and returns its record lines.
// A missing or unreadable file is the only fatal error in the pipeline.
type SalesReader struct {
	logger *utils.Logger
}

// NewSalesReader creates a SalesReader with the given logger.
func NewSalesReader(logger *utils.Logger) *SalesReader {
	return &SalesReader{logger: logger}
}

// Read loads the file at path, decoding UTF-8 with a windows-1252 /
// latin-1 fallback for legacy exports. Blank lines are dropped, every line
// is trimmed, and an optional header line starting (case-insensitively)
// with "transactionid" is skipped.
func (r *SalesReader) Read(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reader: open %q: %w", path, err)
	}

	text, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("reader: decode %q: %w", path, err)
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}

	if len(lines) > 0 && strings.HasPrefix(strings.ToLower(lines[0]), "transactionid") {
		r.logger.Debug("[reader] Skipping header line: %s", lines[0])
		lines = lines[1:]
	}

	r.logger.Info("[reader] Read %d lines from %s", len(lines), path)
	return lines, nil
}

func decode(data []byte) (string, error) {
	if utf8.Valid(data) {
		return string(data), nil
	}

	// Legacy exports tend to be windows-1252; latin-1 accepts any byte and
	// is the last resort.
	if out, err := charmap.Windows1252.NewDecoder().Bytes(data); err == nil {
		return string(out), nil
	}
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
