package bibliography

import (
	"errors"
	"fmt"
	"strings"
)

// Grouping is one of the output arrangements of a bibliography.
type Grouping string

const (
	Divided        Grouping = "divided"         // Grouped by citation type
	Combined       Grouping = "combined"        // One sorted list
	Sources        Grouping = "sources"         // One list per source collection
	SourcesDivided Grouping = "sources_divided" // Per source, grouped by type
)

// ErrUnknownGrouping is returned for a grouping name that is not recognized.
var ErrUnknownGrouping = errors.New("unknown grouping")

// Groupings returns all groupings in the order they are generated.
func Groupings() []Grouping {
	return []Grouping{Divided, Combined, Sources, SourcesDivided}
}

// ParseGrouping parses a grouping name. Hyphens are accepted in place of
// underscores.
func ParseGrouping(s string) (Grouping, error) {
	g := Grouping(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	for _, known := range Groupings() {
		if g == known {
			return g, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGrouping, s)
}

// DefaultFile returns the default output file name for g.
func (g Grouping) DefaultFile() string {
	return "bibliography_" + string(g) + ".md"
}

// title returns the top-level heading text for g, without the style.
func (g Grouping) title() string {
	switch g {
	case Sources:
		return "Bibliography by Source"
	case SourcesDivided:
		return "Bibliography by Source with Categories"
	default:
		return "Bibliography"
	}
}
