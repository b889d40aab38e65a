package serviceImp

import (
	"log"
	"strings"

	"bookstudy/entities"
	"bookstudy/pkg/book/repository"
)

type Svc struct {
	r    repository.BookRepository
	seg  *Segmenter
	open func(path string) PageSource
}

func New(r repository.BookRepository, det HeadingDetector) *Svc {
	return &Svc{r: r, seg: NewSegmenter(det), open: NewPDFSource}
}

func (s *Svc) ProcessUpload(path, filename string) (*entities.Book, []entities.Chapter, error) {
	pages, err := s.open(path).PageTexts()
	if err != nil {
		return nil, nil, err
	}

	bookID := entities.HashID(filename)
	chapters := s.seg.Segment(bookID, pages)

	book := &entities.Book{
		BookID:   bookID,
		Filename: filename,
		Title:    strings.TrimSuffix(filename, ".pdf"),
		NumPages: len(pages),
	}
	if err := s.r.SaveBook(book); err != nil {
		return nil, nil, err
	}
	if err := s.r.ReplaceChapters(bookID, chapters); err != nil {
		return nil, nil, err
	}
	// ReplaceChapters assigns primary keys on insert; reload so callers see them.
	stored, err := s.r.ChaptersByBook(bookID)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("[book] processed %s: %d pages, %d chapters", bookID, len(pages), len(stored))
	return book, stored, nil
}

func (s *Svc) ChapterByNumber(bookID string, chapterNumber int) (*entities.Chapter, error) {
	return s.r.ChapterByNumber(bookID, chapterNumber)
}

func (s *Svc) ChaptersByBook(bookID string) ([]entities.Chapter, error) {
	return s.r.ChaptersByBook(bookID)
}
