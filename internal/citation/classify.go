package citation

import "strings"

// Heuristics holds the indicator word lists used to infer a citation type.
// All matching is by lowercase substring.
type Heuristics struct {
	JournalWords   []string `yaml:"journal_words,omitempty"`
	NewspaperWords []string `yaml:"newspaper_words,omitempty"`
	ThesisWords    []string `yaml:"thesis_words,omitempty"`
	ReportWords    []string `yaml:"report_words,omitempty"`
	ChapterWords   []string `yaml:"chapter_words,omitempty"`
	WebpageWords   []string `yaml:"webpage_words,omitempty"`
}

// DefaultHeuristics returns a fresh copy of the built-in word lists.
func DefaultHeuristics() Heuristics {
	return Heuristics{
		JournalWords:   []string{"journal", "review", "proceedings", "quarterly", "annual"},
		NewspaperWords: []string{"times", "post", "herald", "news", "daily", "weekly"},
		ThesisWords:    []string{"dissertation", "thesis", "phd", "master's", "doctoral"},
		ReportWords:    []string{"report", "working paper", "technical report", "policy brief"},
		ChapterWords:   []string{"chapter", "in:"},
		WebpageWords:   []string{"website", "blog", "online", "web"},
	}
}

// Merge returns h with every non-empty list in o replacing its counterpart.
func (h Heuristics) Merge(o Heuristics) Heuristics {
	pick := func(base, override []string) []string {
		if len(override) > 0 {
			return append([]string(nil), override...)
		}
		return base
	}
	return Heuristics{
		JournalWords:   pick(h.JournalWords, o.JournalWords),
		NewspaperWords: pick(h.NewspaperWords, o.NewspaperWords),
		ThesisWords:    pick(h.ThesisWords, o.ThesisWords),
		ReportWords:    pick(h.ReportWords, o.ReportWords),
		ChapterWords:   pick(h.ChapterWords, o.ChapterWords),
		WebpageWords:   pick(h.WebpageWords, o.WebpageWords),
	}
}

// Classifier infers citation types. The zero value has empty word lists, so
// only the structural rules apply.
type Classifier struct {
	h Heuristics
}

// NewClassifier returns a Classifier using the given word lists.
func NewClassifier(h Heuristics) Classifier {
	return Classifier{h: DefaultHeuristics().Merge(h)}
}

// DefaultClassifier returns a Classifier with the built-in word lists.
func DefaultClassifier() Classifier {
	return Classifier{h: DefaultHeuristics()}
}

// Classify infers the type of c. The first rule that matches wins:
// explicit type, container title, publisher or location, volume or issue,
// then title keywords. It never fails and defaults to TypeOther.
func (cl Classifier) Classify(c Citation) CitationType {
	if c.Type != "" {
		hint := strings.ToLower(c.Type)
		for _, t := range Types() {
			if strings.Contains(hint, string(t)) {
				return t
			}
		}
	}

	if c.ContainerTitle != "" {
		container := strings.ToLower(c.ContainerTitle)
		switch {
		case containsAny(container, cl.h.JournalWords):
			return TypeArticleJournal
		case containsAny(container, cl.h.NewspaperWords):
			return TypeArticleNewspaper
		default:
			return TypeArticleJournal
		}
	}

	if c.Publisher != "" || c.Location != "" {
		return TypeBook
	}

	if c.Volume != "" || c.Issue != "" {
		return TypeArticleJournal
	}

	title := strings.ToLower(c.Title)
	switch {
	case containsAny(title, cl.h.ThesisWords):
		return TypeThesis
	case containsAny(title, cl.h.ReportWords):
		return TypeReport
	case containsAny(title, cl.h.ChapterWords):
		return TypeChapter
	case containsAny(title, cl.h.WebpageWords):
		return TypeWebpage
	}

	return TypeOther
}

// Classify infers the type of c with the built-in word lists.
func Classify(c Citation) CitationType {
	return DefaultClassifier().Classify(c)
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if w != "" && strings.Contains(s, w) {
			return true
		}
	}
	return false
}
