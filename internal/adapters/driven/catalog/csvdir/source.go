// Package csvdir loads the snippet catalog from a directory of CSV
// files, one file per domain (styles.csv, colors.csv, ...). Files for
// missing domains are skipped; their indexes stay absent.
package csvdir

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/stencil-labs/stencil-cli/internal/core/domain"
	"github.com/stencil-labs/stencil-cli/internal/core/ports/driven"
	"github.com/stencil-labs/stencil-cli/internal/logger"
)

// Ensure Source implements the interface.
var _ driven.SnippetSource = (*Source)(nil)

// Source is a CSV-directory implementation of driven.SnippetSource.
type Source struct {
	dir string
}

// NewSource creates a source reading from the given directory.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// Dir returns the directory the source reads from.
func (s *Source) Dir() string {
	return s.dir
}

// Load reads every per-domain CSV file present in the directory.
func (s *Source) Load(ctx context.Context) ([]domain.Snippet, error) {
	return LoadFS(ctx, os.DirFS(s.dir))
}

// LoadFS reads per-domain CSV files from any filesystem. Shared with
// the embedded catalog.
func LoadFS(ctx context.Context, fsys fs.FS) ([]domain.Snippet, error) {
	var all []domain.Snippet

	for _, d := range domain.AllDomains() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		name := string(d) + ".csv"
		f, err := fsys.Open(name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}

		snippets, err := parseCSV(f, d)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}

		logger.Debug("Loaded %d records from %s", len(snippets), name)
		all = append(all, snippets...)
	}

	return all, nil
}

// parseCSV reads one domain's records. The first row is the header;
// each following row becomes a flat field map keyed by header name.
// Rows shorter than the header are padded with empty fields, which CSV
// exports from spreadsheets produce routinely.
func parseCSV(r io.Reader, d domain.Domain) ([]domain.Snippet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var snippets []domain.Snippet
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		fields := make(map[string]string, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(row) {
				fields[key] = strings.TrimSpace(row[i])
			} else {
				fields[key] = ""
			}
		}

		snippets = append(snippets, domain.Snippet{Domain: d, Fields: fields})
	}

	return snippets, nil
}
