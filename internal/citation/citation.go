// Package citation defines the normalized citation record and the pure queries
// over it: type inference, validity filtering and duplicate signatures.
package citation

// Citation is one normalized bibliographic entry.
//
// Every scalar field is a trimmed string and the empty string means the field
// is absent. Citations are built once by Normalize and never mutated.
type Citation struct {
	Type           string   `json:"type,omitempty"` // Raw type hint from the extractor
	Title          string   `json:"title,omitempty"`
	Author         []Person `json:"author,omitempty"` // Authorship order
	Editor         []Person `json:"editor,omitempty"` // Used only when Author is empty
	ContainerTitle string   `json:"container_title,omitempty"`
	Volume         string   `json:"volume,omitempty"`
	Issue          string   `json:"issue,omitempty"`
	Pages          string   `json:"pages,omitempty"`
	Date           string   `json:"date,omitempty"`
	Publisher      string   `json:"publisher,omitempty"`
	Location       string   `json:"location,omitempty"`

	// Extra holds keys the pipeline does not interpret, exactly as received.
	Extra map[string]any `json:"extra,omitempty"`
}

// Contributors returns the authors, or the editors when there are no authors.
// The second result reports whether editors were used.
func (c Citation) Contributors() ([]Person, bool) {
	if len(c.Author) > 0 {
		return c.Author, false
	}
	if len(c.Editor) > 0 {
		return c.Editor, true
	}
	return nil, false
}
