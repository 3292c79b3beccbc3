package style

import "strings"

// APA returns the APA formatter:
//
//	Author (date). Title. *Container*, *volume*(issue), pages. Location: Publisher.
func APA() *Style {
	return newStyle("apa",
		authorsSegment(""),
		apaDate,
		apaTitle,
		apaSource,
		publisherSegment,
	)
}

func apaDate(e entry) string {
	if e.date == "" {
		return ""
	}
	return "(" + e.date + ")."
}

func apaTitle(e entry) string {
	return e.title + "."
}

func apaSource(e entry) string {
	var b strings.Builder
	if e.container != "" {
		b.WriteString("*" + e.container + "*")
	}
	if e.volume != "" {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString("*" + e.volume + "*")
	}
	if e.issue != "" {
		b.WriteString("(" + e.issue + ")")
	}
	if e.pages != "" {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.pages)
	}
	if b.Len() == 0 {
		return ""
	}
	b.WriteString(".")
	return b.String()
}
