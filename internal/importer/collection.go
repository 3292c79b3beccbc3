package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/matsen/pdfsources/internal/citation"
)

// Collection is the citations extracted from one source document.
type Collection struct {
	Name      string              // Human-readable source name
	Path      string              // File the collection was read from
	Citations []citation.Citation // In record order
	Warnings  []error             // Per-record problems that did not stop loading
	Err       error               // Set when the collection could not be read at all
}

// NewCollection builds an in-memory collection.
func NewCollection(name string, cits []citation.Citation) Collection {
	return Collection{Name: name, Citations: cits}
}

// LoadFile reads one anystyle JSON file. Read and parse failures are stored
// in the returned Collection's Err rather than returned, so one bad file
// never prevents the others from being processed.
func LoadFile(path string) Collection {
	col := Collection{Name: SourceName(path), Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		col.Err = fmt.Errorf("reading %s: %w", path, err)
		return col
	}

	cits, warnings, err := ParseAnystyle(data)
	if err != nil {
		col.Err = fmt.Errorf("%s: %w", path, err)
		return col
	}
	col.Citations = cits
	col.Warnings = warnings
	return col
}

// LoadFiles reads every path concurrently and returns the collections in
// input order. Problems are logged; they never abort the batch.
func LoadFiles(paths []string, logger *zap.Logger) []Collection {
	if logger == nil {
		logger = zap.NewNop()
	}

	cols := make([]Collection, len(paths))
	var wg sync.WaitGroup
	for i, p := range paths {
		wg.Add(1)
		go func(i int, p string) {
			defer wg.Done()
			cols[i] = LoadFile(p)
		}(i, p)
	}
	wg.Wait()

	for _, col := range cols {
		if col.Err != nil {
			logger.Warn("skipping unreadable collection", zap.String("file", col.Path), zap.Error(col.Err))
			continue
		}
		for _, w := range col.Warnings {
			logger.Debug("malformed record", zap.String("file", col.Path), zap.Error(w))
		}
		logger.Debug("loaded collection",
			zap.String("file", col.Path),
			zap.Int("records", len(col.Citations)))
	}
	return cols
}

// SourceName derives a display name from a collection file path:
// "info/anystyle-smith_2020.json" becomes "Smith 2020".
func SourceName(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".json")
	name = strings.TrimPrefix(name, "anystyle-")
	name = strings.ReplaceAll(name, "_", " ")
	return cases.Title(language.English).String(name)
}
