package serviceImp

import (
	"fmt"
	"log"

	"github.com/ledongthuc/pdf"
)

// PageSource yields the ordered page texts of a document. A page that fails
// text extraction contributes an empty string rather than an error, so one
// bad page never aborts the whole book.
type PageSource interface {
	PageTexts() ([]string, error)
}

type pdfSource struct{ path string }

func NewPDFSource(path string) PageSource { return &pdfSource{path: path} }

func (p *pdfSource) PageTexts() ([]string, error) {
	f, r, err := pdf.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", p.path, err)
	}
	defer f.Close()

	total := r.NumPage()
	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		pg := r.Page(i)
		if pg.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := pg.GetPlainText(nil)
		if err != nil {
			log.Printf("[book] page %d unreadable, using empty text: %v", i, err)
			text = ""
		}
		pages = append(pages, text)
	}
	return pages, nil
}
