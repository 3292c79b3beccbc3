package style

import (
	"strings"

	"github.com/matsen/pdfsources/internal/citation"
)

// Chicago returns the Chicago Manual of Style (bibliography) formatter:
//
//	Author. "Title". *Container* volume, no. issue (date): pages. Location: Publisher.
//
// Books italicize the title and put the date after the publisher.
func Chicago() *Style {
	return newStyle("chicago",
		authorsSegment("."),
		chicagoTitle,
		chicagoContainer,
		chicagoDate,
		chicagoPages,
		chicagoPublisher,
	)
}

func chicagoTitle(e entry) string {
	if e.kind == citation.TypeBook {
		return italicTitle(e)
	}
	return `"` + e.title + `".`
}

func chicagoContainer(e entry) string {
	var parts []string
	if e.container != "" {
		parts = append(parts, "*"+e.container+"*")
	}
	if e.volume != "" {
		parts = append(parts, e.volume)
	}
	s := strings.Join(parts, " ")
	if e.issue != "" {
		if s != "" {
			s += ","
		}
		s += " no. " + e.issue
	}
	s = strings.TrimSpace(s)
	if s != "" && (e.kind == citation.TypeBook || e.date == "") && e.pages == "" {
		s += "."
	}
	return s
}

func chicagoDate(e entry) string {
	if e.kind == citation.TypeBook || e.date == "" {
		return ""
	}
	if e.pages != "" {
		return "(" + e.date + "):"
	}
	return "(" + e.date + ")."
}

func chicagoPages(e entry) string {
	if e.pages == "" {
		return ""
	}
	return e.pages + "."
}

func chicagoPublisher(e entry) string {
	p := publisherBlock(e)
	if e.kind != citation.TypeBook || e.date == "" {
		if p == "" {
			return ""
		}
		return p + "."
	}
	if p == "" {
		return e.date + "."
	}
	return p + ", " + e.date + "."
}
