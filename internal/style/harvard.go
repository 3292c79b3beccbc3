package style

// Harvard returns the Harvard formatter:
//
//	Author date, *Title*. Location: Publisher.
func Harvard() *Style {
	return newStyle("harvard",
		authorsSegment(""),
		harvardDate,
		italicTitle,
		publisherSegment,
	)
}

func harvardDate(e entry) string {
	if e.date == "" {
		return ""
	}
	return e.date + ","
}
