package controllerImp

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bookstudy/entities"
	"bookstudy/pkg/book/service"
	kbservice "bookstudy/pkg/kb/service"
)

type noteGenerator interface {
	GenerateChapterNotes(ch *entities.Chapter) (*entities.Note, error)
}

type noteStore interface {
	AddNote(n *entities.Note) error
}

type BookCtrl struct {
	s         service.BookService
	kb        kbservice.KBService
	assistant noteGenerator
	notes     noteStore
	uploadDir string
}

func New(s service.BookService, kb kbservice.KBService, assistant noteGenerator, notes noteStore, uploadDir string) *BookCtrl {
	return &BookCtrl{s: s, kb: kb, assistant: assistant, notes: notes, uploadDir: uploadDir}
}

// Upload handles POST /upload_book: validate the PDF, save it, segment into
// chapters, rebuild the book's search index and store generated notes per
// chapter.
func (h *BookCtrl) Upload(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}
	if !strings.EqualFold(filepath.Ext(fh.Filename), ".pdf") {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Only PDF files are supported"})
	}

	path, err := h.saveUpload(fh)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	book, chapters, err := h.s.ProcessUpload(path, fh.Filename)
	if err != nil {
		log.Printf("[book] processing %s failed: %v", fh.Filename, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	indexed, err := h.kb.IndexChapters(book.BookID, chapters)
	if err != nil {
		log.Printf("[book] indexing %s failed: %v", book.BookID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	for i := range chapters {
		note, err := h.assistant.GenerateChapterNotes(&chapters[i])
		if err != nil {
			log.Printf("[book] notes for %s chapter %d failed: %v", book.BookID, chapters[i].ChapterNumber, err)
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		if err := h.notes.AddNote(note); err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}

	type chapterOut struct {
		Number int    `json:"number"`
		Title  string `json:"title"`
		Pages  string `json:"pages"`
	}
	out := make([]chapterOut, 0, len(chapters))
	for _, ch := range chapters {
		out = append(out, chapterOut{
			Number: ch.ChapterNumber,
			Title:  ch.Title,
			Pages:  fmt.Sprintf("%d-%d", ch.PageStart, ch.PageEnd),
		})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"book_id":        book.BookID,
		"filename":       book.Filename,
		"chapters":       out,
		"chunks_indexed": indexed,
	})
}

// Chapters handles GET /books/:book_id/chapters.
func (h *BookCtrl) Chapters(c echo.Context) error {
	chs, err := h.s.ChaptersByBook(c.Param("book_id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	type chapterOut struct {
		Number    int    `json:"number"`
		Title     string `json:"title"`
		PageStart int    `json:"page_start"`
		PageEnd   int    `json:"page_end"`
	}
	out := make([]chapterOut, 0, len(chs))
	for _, ch := range chs {
		out = append(out, chapterOut{Number: ch.ChapterNumber, Title: ch.Title, PageStart: ch.PageStart, PageEnd: ch.PageEnd})
	}
	return c.JSON(http.StatusOK, out)
}

// saveUpload writes the multipart file under a unique name so concurrent
// uploads of the same filename never clobber each other.
func (h *BookCtrl) saveUpload(fh *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	path := filepath.Join(h.uploadDir, uuid.New().String()+"_"+filepath.Base(fh.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return path, nil
}
