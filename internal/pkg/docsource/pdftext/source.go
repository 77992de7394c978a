// Package pdftext serves AIP entries for countries that only publish PDF
// charts. The PDFs are converted to text out of band; this source reads
// the pre-extracted <CC>-AD-2-<ICAO>.txt files from a local directory.
package pdftext

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nordavia/airport-aip-service/internal/pkg/docsource"
	"github.com/nordavia/airport-aip-service/internal/pkg/docsource/sourceutils"
)

const SourceName = "pdf-text"

type Source struct {
	Name        string
	DocumentDir string
	Timeout     time.Duration
}

func NewSource(config docsource.SourceConfig) *Source {
	return &Source{
		Name:        SourceName,
		DocumentDir: config.DocumentDir,
		Timeout:     config.Timeout,
	}
}

func (s *Source) Fetch(ctx context.Context, airportCode string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context cancelled or timeout: %w", err)
	}

	code := strings.ToUpper(strings.TrimSpace(airportCode))
	prefix := code
	if len(prefix) > 2 {
		prefix = prefix[:2]
	}

	path := filepath.Join(s.DocumentDir, fmt.Sprintf("%s-AD-2-%s.txt", prefix, code))

	text, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", sourceutils.ErrDocumentNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read aip text file: %w", err)
	}

	return string(text), nil
}
