package style

// Segments shared by several styles.

func authorsSegment(suffix string) segment {
	return func(e entry) string {
		if e.authors == "" {
			return ""
		}
		return e.authors + suffix
	}
}

func italicTitle(e entry) string {
	return "*" + e.title + "*."
}

// publisherBlock renders "Location: Publisher", or whichever part exists.
func publisherBlock(e entry) string {
	switch {
	case e.location != "" && e.publisher != "":
		return e.location + ": " + e.publisher
	case e.publisher != "":
		return e.publisher
	default:
		return e.location
	}
}

func publisherSegment(e entry) string {
	if p := publisherBlock(e); p != "" {
		return p + "."
	}
	return ""
}
