// Package bibliography assembles formatted citations from one or more source
// collections into grouped Markdown documents.
package bibliography

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/matsen/pdfsources/internal/citation"
	"github.com/matsen/pdfsources/internal/importer"
	"github.com/matsen/pdfsources/internal/style"
)

// Assembler renders collections of citations into bibliography documents.
//
// When Dedupe is set, the pooled groupings (Divided, Combined) drop repeats
// across all collections, keeping the first by collection then record order;
// the per-source groupings drop repeats within each collection only.
type Assembler struct {
	Formatter  style.Formatter
	Classifier citation.Classifier
	Dedupe     bool
	Logger     *zap.Logger
}

// New returns an Assembler using f, the default classifier and deduplication.
func New(f style.Formatter, logger *zap.Logger) *Assembler {
	return &Assembler{
		Formatter:  f,
		Classifier: citation.DefaultClassifier(),
		Dedupe:     true,
		Logger:     logger,
	}
}

// SourceStats summarizes one collection in a Result.
type SourceStats struct {
	Name    string `json:"name"`
	Path    string `json:"path,omitempty"`
	Records int    `json:"records"`
	Entries int    `json:"entries"`
	Error   string `json:"error,omitempty"`
}

// Result is a rendered document and the counts behind it.
type Result struct {
	Grouping   Grouping      `json:"grouping"`
	Style      string        `json:"style"`
	Document   string        `json:"-"`
	Records    int           `json:"records"`
	Entries    int           `json:"entries"`
	Duplicates int           `json:"duplicates"`
	Sources    []SourceStats `json:"sources"`
}

// item is one formatted entry and its inferred type.
type item struct {
	text string
	kind citation.CitationType
}

// Render produces the document for grouping g.
func (a *Assembler) Render(g Grouping, cols []importer.Collection) (*Result, error) {
	if a.Formatter == nil {
		return nil, fmt.Errorf("assembler has no formatter")
	}

	res := &Result{Grouping: g, Style: a.Formatter.Name()}
	for _, col := range cols {
		stats := SourceStats{Name: col.Name, Path: col.Path, Records: len(col.Citations)}
		if col.Err != nil {
			stats.Error = col.Err.Error()
		}
		res.Records += stats.Records
		res.Sources = append(res.Sources, stats)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s (%s)\n\n", g.title(), a.styleTitle())

	switch g {
	case Divided, Combined:
		var dedupe *citation.Deduper
		if a.Dedupe {
			dedupe = citation.NewDeduper()
		}
		var items []item
		for i, col := range cols {
			colItems := a.format(col, dedupe)
			res.Sources[i].Entries = len(colItems)
			items = append(items, colItems...)
		}
		if dedupe != nil {
			res.Duplicates = dedupe.Dropped()
		}
		res.Entries = len(items)
		if g == Divided {
			writeGroups(&b, items, "##")
		} else {
			writeList(&b, texts(items))
		}

	case Sources, SourcesDivided:
		for i, col := range cols {
			var dedupe *citation.Deduper
			if a.Dedupe {
				dedupe = citation.NewDeduper()
			}
			items := a.format(col, dedupe)
			if dedupe != nil {
				res.Duplicates += dedupe.Dropped()
			}
			res.Sources[i].Entries = len(items)
			res.Entries += len(items)

			fmt.Fprintf(&b, "## %s (%d sources)\n\n", col.Name, len(items))
			if len(items) > 0 {
				if g == SourcesDivided {
					writeGroups(&b, items, "###")
				} else {
					writeList(&b, texts(items))
				}
			}
			b.WriteString("\n")
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGrouping, string(g))
	}

	res.Document = b.String()
	a.logger().Info("rendered bibliography",
		zap.String("grouping", string(g)),
		zap.String("style", res.Style),
		zap.Int("records", res.Records),
		zap.Int("entries", res.Entries),
		zap.Int("duplicates", res.Duplicates))
	return res, nil
}

// format renders every listable citation in col. Unreadable collections
// contribute nothing.
func (a *Assembler) format(col importer.Collection, dedupe *citation.Deduper) []item {
	if col.Err != nil {
		return nil
	}
	var items []item
	for _, c := range col.Citations {
		text := a.Formatter.Format(c)
		if text == "" {
			continue
		}
		if dedupe != nil && !dedupe.Keep(c) {
			a.logger().Debug("dropping duplicate", zap.String("source", col.Name), zap.String("title", c.Title))
			continue
		}
		items = append(items, item{text: text, kind: a.Classifier.Classify(c)})
	}
	return items
}

func (a *Assembler) styleTitle() string {
	return cases.Title(language.English).String(a.Formatter.Name())
}

func (a *Assembler) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

// writeGroups writes items grouped by type, groups in first-seen order, each
// under a heading of the given level.
func writeGroups(b *strings.Builder, items []item, level string) {
	var order []citation.CitationType
	groups := make(map[citation.CitationType][]string)
	for _, it := range items {
		if _, ok := groups[it.kind]; !ok {
			order = append(order, it.kind)
		}
		groups[it.kind] = append(groups[it.kind], it.text)
	}

	for _, kind := range order {
		fmt.Fprintf(b, "%s %s\n\n", level, kind.Heading())
		writeList(b, groups[kind])
		b.WriteString("\n")
	}
}

// writeList writes entries as a sorted Markdown list.
func writeList(b *strings.Builder, entries []string) {
	SortEntries(entries)
	for _, e := range entries {
		fmt.Fprintf(b, "* %s\n", e)
	}
}

func texts(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.text
	}
	return out
}

// SortEntries sorts entries in place, case-insensitively by the text before
// the first comma (usually the lead author's surname). Ties keep input order.
func SortEntries(entries []string) {
	sort.SliceStable(entries, func(i, j int) bool {
		return sortKey(entries[i]) < sortKey(entries[j])
	})
}

func sortKey(entry string) string {
	lead, _, _ := strings.Cut(entry, ",")
	if lead == "" {
		return entry
	}
	return strings.ToLower(lead)
}
