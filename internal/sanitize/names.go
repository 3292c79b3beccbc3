package sanitize

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// particles are surname joining words written in lower case by convention.
var particles = []string{"van", "von", "de", "da", "del", "della", "du", "le", "la", "el", "al", "der"}

var gaelicPrefix = regexp.MustCompile(`\b(Mc|O')(\p{Ll})`)

// NameCase normalizes the casing of a name or name part.
//
// All-caps input is converted to title case with Mc and O' prefixes keeping
// their inner capital. Capitalized particles followed by another word of the
// same name are lowercased ("Van Der Berg" becomes "van der Berg").
// Mixed-case input otherwise keeps its capitals.
func NameCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if isAllUpper(s) {
		s = cases.Title(language.Und).String(strings.ToLower(s))
		s = gaelicPrefix.ReplaceAllStringFunc(s, func(m string) string {
			sub := gaelicPrefix.FindStringSubmatch(m)
			return sub[1] + strings.ToUpper(sub[2])
		})
	}
	return lowerParticles(s)
}

func isAllUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

func lowerParticles(s string) string {
	words := strings.Split(s, " ")
	for i := 0; i < len(words)-1; i++ {
		w := words[i]
		if w == "" || strings.HasSuffix(w, ",") || words[i+1] == "" {
			continue
		}
		if isParticle(w) && unicode.IsUpper([]rune(w)[0]) {
			words[i] = strings.ToLower(w)
		}
	}
	return strings.Join(words, " ")
}

func isParticle(w string) bool {
	lower := strings.ToLower(w)
	for _, p := range particles {
		if lower == p {
			return true
		}
	}
	return false
}
