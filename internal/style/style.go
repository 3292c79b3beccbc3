// Package style renders citations as single-line Markdown bibliography
// entries in Chicago, APA and Harvard styles.
//
// All styles share one engine: a Style is an ordered table of segments, each
// rendering one block of the entry (authors, title, container, ...) from a
// pre-sanitized view of the citation. Styles differ only in their tables.
package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/matsen/pdfsources/internal/citation"
	"github.com/matsen/pdfsources/internal/sanitize"
)

// Formatter renders one citation as one bibliography entry.
type Formatter interface {
	// Name returns the lowercase style name, e.g. "chicago".
	Name() string
	// Format returns the entry, or "" if the citation should not be listed.
	Format(c citation.Citation) string
}

// segment renders one block of an entry. An empty result is skipped.
type segment func(e entry) string

// Style is a table-driven Formatter.
type Style struct {
	name       string
	segments   []segment
	filter     citation.Filter
	classifier citation.Classifier
}

// Name returns the style name.
func (s *Style) Name() string {
	return s.name
}

// With returns a copy of s that validates with f and classifies with cl.
func (s *Style) With(f citation.Filter, cl citation.Classifier) *Style {
	out := *s
	out.filter = f
	out.classifier = cl
	return &out
}

// Format renders c, or returns "" if c fails the validity filter or has no
// title.
func (s *Style) Format(c citation.Citation) string {
	if !s.filter.IsValid(c) {
		return ""
	}
	e := newEntry(c, s.classifier.Classify(c))
	if e.title == "" {
		return ""
	}

	parts := make([]string, 0, len(s.segments))
	for _, seg := range s.segments {
		if p := seg(e); p != "" {
			parts = append(parts, p)
		}
	}
	return finish(strings.Join(parts, " "))
}

// finish collapses whitespace and doubled periods.
func finish(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	for strings.Contains(s, "..") {
		s = strings.ReplaceAll(s, "..", ".")
	}
	return s
}

func newStyle(name string, segments ...segment) *Style {
	return &Style{
		name:       name,
		segments:   segments,
		filter:     citation.DefaultFilter(),
		classifier: citation.DefaultClassifier(),
	}
}

var registry = map[string]func() *Style{
	"chicago": Chicago,
	"apa":     APA,
	"harvard": Harvard,
}

// Names returns the supported style names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the style with the given name (case-insensitive).
func Lookup(name string) (*Style, error) {
	ctor, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown style %q (valid: %s)", name, strings.Join(Names(), ", "))
	}
	return ctor(), nil
}

// entry is the sanitized, Markdown-safe view of a citation that segments
// render from.
type entry struct {
	kind      citation.CitationType
	authors   string
	title     string
	container string
	volume    string
	issue     string
	pages     string
	date      string
	publisher string
	location  string
}

func newEntry(c citation.Citation, kind citation.CitationType) entry {
	return entry{
		kind:      kind,
		authors:   authorString(c),
		title:     sanitize.Escape(strings.TrimSuffix(sanitize.Clean(c.Title), ".")),
		container: sanitize.Text(c.ContainerTitle),
		volume:    sanitize.Text(c.Volume),
		issue:     sanitize.Text(c.Issue),
		pages:     sanitize.Text(c.Pages),
		date:      sanitize.Text(c.Date),
		publisher: sanitize.Text(c.Publisher),
		location:  sanitize.Text(c.Location),
	}
}

// authorString renders contributors as "Family, Given" joined by commas with
// a final "and". Editors standing in for authors get a trailing ", eds.".
func authorString(c citation.Citation) string {
	people, editors := c.Contributors()

	var names []string
	for _, p := range people {
		if p.IsZero() {
			continue
		}
		family := sanitize.Escape(sanitize.NameCase(sanitize.Clean(p.Family)))
		given := sanitize.Escape(sanitize.NameCase(sanitize.Clean(p.Given)))
		switch {
		case family != "" && given != "":
			names = append(names, family+", "+given)
		case family != "":
			names = append(names, family)
		}
	}
	if len(names) == 0 {
		return ""
	}

	s := names[0]
	if len(names) > 1 {
		s = strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
	}
	if editors {
		s += ", eds."
	}
	return s
}
