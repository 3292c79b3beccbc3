package citation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/matsen/pdfsources/internal/sanitize"
)

// Reasons a citation is rejected, as returned by Filter.Reason.
const (
	ReasonMissingTitle = "missing title"
	ReasonShortTitle   = "title too short"
	ReasonDenylisted   = "extraction boilerplate"
	ReasonIPAddress    = "ip address in title"
	ReasonLowText      = "title mostly punctuation or digits"
	ReasonFragment     = "title ends mid-sentence"
	ReasonNoAuthor     = "no author or editor"
)

// ipv4Pattern is unanchored: extraction often glues an address to the word before it.
var ipv4Pattern = regexp.MustCompile(`\d{1,3}(?:\.\d{1,3}){3}`)

// Filter decides whether a citation is real content or extraction noise.
type Filter struct {
	MinTitleLength int      `yaml:"min_title_length,omitempty"`
	MinAlnumRatio  float64  `yaml:"min_alnum_ratio,omitempty"`
	Denylist       []string `yaml:"denylist,omitempty"`   // Lowercase phrases that mark boilerplate
	StopWords      []string `yaml:"stop_words,omitempty"` // Words a complete title never ends with
}

// DefaultFilter returns a Filter with the built-in thresholds and word lists.
func DefaultFilter() Filter {
	return Filter{
		MinTitleLength: 10,
		MinAlnumRatio:  0.6,
		Denylist: []string{
			"ibid",
			"this content downloaded from",
			"all use subject to jstor",
			"terms and conditions of use",
			"access provided by",
			"downloaded by",
			"jstor is a not-for-profit",
			"the main topic discussed in",
			"790–791",
		},
		StopWords: []string{"the", "in", "of", "and", "or", "but", "was", "were"},
	}
}

// Merge returns f with every non-zero setting in o replacing its counterpart.
func (f Filter) Merge(o Filter) Filter {
	if o.MinTitleLength > 0 {
		f.MinTitleLength = o.MinTitleLength
	}
	if o.MinAlnumRatio > 0 {
		f.MinAlnumRatio = o.MinAlnumRatio
	}
	if len(o.Denylist) > 0 {
		f.Denylist = append([]string(nil), o.Denylist...)
	}
	if len(o.StopWords) > 0 {
		f.StopWords = append([]string(nil), o.StopWords...)
	}
	return f
}

// IsValid reports whether c passes every rule.
func (f Filter) IsValid(c Citation) bool {
	return f.Reason(c) == ""
}

// Reason returns the first rule c fails, or "" if it is valid.
func (f Filter) Reason(c Citation) string {
	title := sanitize.Clean(c.Title)
	if title == "" {
		return ReasonMissingTitle
	}
	if utf8.RuneCountInString(title) < f.MinTitleLength {
		return ReasonShortTitle
	}

	lower := strings.ToLower(title)
	if containsAny(lower, f.Denylist) {
		return ReasonDenylisted
	}
	if ipv4Pattern.MatchString(title) {
		return ReasonIPAddress
	}
	if alnumRatio(title) < f.MinAlnumRatio {
		return ReasonLowText
	}
	if endsWithAny(lower, f.StopWords) {
		return ReasonFragment
	}

	if len(c.Author) == 0 && len(c.Editor) == 0 {
		return ReasonNoAuthor
	}
	return ""
}

// IsValid reports whether c passes the built-in filter.
func IsValid(c Citation) bool {
	return DefaultFilter().IsValid(c)
}

func alnumRatio(s string) float64 {
	total, alnum := 0, 0
	for _, r := range s {
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			alnum++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(alnum) / float64(total)
}

// endsWithAny reports whether the last word of s, ignoring trailing
// punctuation, is one of words.
func endsWithAny(s string, words []string) bool {
	trimmed := strings.TrimRightFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return false
	}
	last := fields[len(fields)-1]
	for _, w := range words {
		if last == w {
			return true
		}
	}
	return false
}
