// Package importer loads citation collections produced by external
// extraction tools.
package importer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/matsen/pdfsources/internal/citation"
)

// ErrNotArray is returned when an anystyle document is not a JSON array.
var ErrNotArray = errors.New("expected a JSON array of citation records")

// ErrTrailingData is returned when anything but whitespace follows the array.
var ErrTrailingData = errors.New("parsing anystyle JSON: unexpected data after top-level array")

// ParseAnystyle parses anystyle JSON output (`anystyle -f json find`).
//
// The document must be an array; otherwise err is set and no citations are
// returned. Individual records that are not objects become empty citations
// and are reported in warnings, so record positions are preserved.
func ParseAnystyle(data []byte) (cits []citation.Citation, warnings []error, err error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("parsing anystyle JSON: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, nil, ErrTrailingData
	}

	records, ok := doc.([]any)
	if !ok {
		return nil, nil, fmt.Errorf("%w, got %s", ErrNotArray, jsonKind(doc))
	}

	cits = make([]citation.Citation, 0, len(records))
	for i, rec := range records {
		raw, ok := rec.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Errorf("record %d: expected object, got %s", i+1, jsonKind(rec)))
			cits = append(cits, citation.Citation{})
			continue
		}
		cits = append(cits, citation.Normalize(raw))
	}

	return cits, warnings, nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
