package pdf

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// textProbePages is how many leading pages Inspect reads looking for text.
const textProbePages = 3

// Info describes a PDF as seen before extraction.
type Info struct {
	Pages   int  `json:"pages"`
	HasText bool `json:"has_text"` // False for image-only scans with no text layer
}

// Inspect opens the PDF at path and reports its page count and whether its
// first pages carry extractable text. An error means the file is not a
// readable PDF.
func Inspect(path string) (info Info, err error) {
	defer func() {
		// The PDF reader panics on some malformed cross-reference tables.
		if r := recover(); r != nil {
			err = fmt.Errorf("reading %s: malformed PDF: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	info.Pages = r.NumPage()
	probe := min(textProbePages, info.Pages)
	for i := 1; i <= probe; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) != "" {
			info.HasText = true
			break
		}
	}
	return info, nil
}
