package citation

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CitationType is the semantic kind of a citation.
type CitationType string

const (
	TypeBook             CitationType = "book"
	TypeArticleJournal   CitationType = "article-journal"
	TypeArticleNewspaper CitationType = "article-newspaper"
	TypeChapter          CitationType = "chapter"
	TypeReport           CitationType = "report"
	TypeThesis           CitationType = "thesis"
	TypeWebpage          CitationType = "webpage"
	TypeOther            CitationType = "other"
)

// Types lists every CitationType in matching order.
func Types() []CitationType {
	return []CitationType{
		TypeBook,
		TypeArticleJournal,
		TypeArticleNewspaper,
		TypeChapter,
		TypeReport,
		TypeThesis,
		TypeWebpage,
		TypeOther,
	}
}

func (t CitationType) String() string {
	return string(t)
}

// Heading returns the human-readable group label, e.g. "Article Journal".
func (t CitationType) Heading() string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(t), "-", " "))
}
