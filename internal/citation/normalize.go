package citation

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Keys recognized by Normalize. Anything else is kept in Citation.Extra.
const (
	KeyType                 = "type"
	KeyTitle                = "title"
	KeyAuthor               = "author"
	KeyEditor               = "editor"
	KeyContainerTitle       = "container_title"
	KeyContainerTitleHyphen = "container-title"
	KeyVolume               = "volume"
	KeyIssue                = "issue"
	KeyPages                = "pages"
	KeyDate                 = "date"
	KeyPublisher            = "publisher"
	KeyLocation             = "location"
)

// Normalize converts one raw extraction record into a Citation.
//
// Extraction tools wrap most fields in single-element lists, so a non-empty
// list collapses to its first element and an empty list to absent. Values that
// cannot be interpreted are dropped rather than reported; Normalize never fails.
func Normalize(raw map[string]any) Citation {
	var c Citation
	for key, v := range raw {
		switch key {
		case KeyType:
			c.Type = Scalar(v)
		case KeyTitle:
			c.Title = Scalar(v)
		case KeyAuthor:
			c.Author = People(v)
		case KeyEditor:
			c.Editor = People(v)
		case KeyContainerTitle:
			if s := Scalar(v); s != "" {
				c.ContainerTitle = s
			}
		case KeyContainerTitleHyphen:
			// The underscore spelling wins when both are present.
			if _, ok := raw[KeyContainerTitle]; ok && Scalar(raw[KeyContainerTitle]) != "" {
				continue
			}
			c.ContainerTitle = Scalar(v)
		case KeyVolume:
			c.Volume = Scalar(v)
		case KeyIssue:
			c.Issue = Scalar(v)
		case KeyPages:
			c.Pages = Scalar(v)
		case KeyDate:
			c.Date = Scalar(v)
		case KeyPublisher:
			c.Publisher = Scalar(v)
		case KeyLocation:
			c.Location = Scalar(v)
		default:
			if c.Extra == nil {
				c.Extra = make(map[string]any)
			}
			c.Extra[key] = v
		}
	}
	return c
}

// Scalar collapses a raw field value to a trimmed string.
// Lists yield their first element; nil and empty values yield "".
func Scalar(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []any:
		if len(t) == 0 {
			return ""
		}
		if s, ok := t[0].(string); ok {
			return strings.TrimSpace(s)
		}
		return display(t[0])
	case []string:
		if len(t) == 0 {
			return ""
		}
		return strings.TrimSpace(t[0])
	case string:
		return strings.TrimSpace(t)
	default:
		return display(t)
	}
}

// display renders a non-string value the way it would print.
func display(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case json.Number:
		return t.String()
	case fmt.Stringer:
		return strings.TrimSpace(t.String())
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// People converts a raw author or editor value to a list of Persons.
// A single mapping counts as a one-element list, a bare string becomes a
// family name, and anything else is skipped. A mapping without name parts
// still yields an (anonymous) Person.
func People(v any) []Person {
	var items []any
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		items = t
	case map[string]any:
		items = []any{t}
	case []map[string]any:
		for _, m := range t {
			items = append(items, m)
		}
	case []Person:
		items = make([]any, len(t))
		for i, p := range t {
			items[i] = p
		}
	default:
		return nil
	}

	var people []Person
	for _, item := range items {
		switch p := item.(type) {
		case Person:
			people = append(people, NewPerson(p.Family, p.Given))
		case map[string]any:
			people = append(people, NewPerson(Scalar(p["family"]), Scalar(p["given"])))
		case string:
			if s := strings.TrimSpace(p); s != "" {
				people = append(people, Person{Family: s})
			}
		}
	}
	return people
}
