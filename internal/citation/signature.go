package citation

import (
	"sort"
	"strings"
	"unicode"
)

// Signature returns a near-duplicate fingerprint for c: the alphanumeric
// title, the sorted family names of at most two lead authors, and the first
// four-digit run in the date.
func Signature(c Citation) string {
	var b strings.Builder
	b.WriteString(alnumLower(c.Title))

	var families []string
	for i, p := range c.Author {
		if i >= 2 {
			break
		}
		families = append(families, alnumLower(p.Family))
	}
	sort.Strings(families)
	for _, f := range families {
		b.WriteString(f)
	}

	b.WriteString(firstYear(c.Date))
	return b.String()
}

func alnumLower(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// firstYear returns the first run of four consecutive ASCII digits in s.
func firstYear(s string) string {
	run := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			run++
			if run == 4 {
				return s[i-3 : i+1]
			}
		} else {
			run = 0
		}
	}
	return ""
}

// Deduper drops citations whose signature has already been seen.
// It is scoped to one assembly run and is not safe for concurrent use.
type Deduper struct {
	seen    map[string]bool
	dropped int
}

// NewDeduper returns an empty Deduper.
func NewDeduper() *Deduper {
	return &Deduper{seen: make(map[string]bool)}
}

// Keep reports whether c is the first citation with its signature.
// Citations with an empty signature are always kept.
func (d *Deduper) Keep(c Citation) bool {
	sig := Signature(c)
	if sig == "" {
		return true
	}
	if d.seen[sig] {
		d.dropped++
		return false
	}
	d.seen[sig] = true
	return true
}

// Dropped returns how many citations Keep has rejected.
func (d *Deduper) Dropped() int {
	return d.dropped
}
