package controllerImp

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"bookstudy/entities"
	"bookstudy/pkg/notes/service"
)

type topicTagger interface {
	ExtractTopics(text string) ([]string, error)
}

type NoteCtrl struct {
	s      service.NoteService
	tagger topicTagger
	allow  map[string]bool
}

func New(s service.NoteService, tagger topicTagger, allowedDomains string) *NoteCtrl {
	allow := map[string]bool{}
	for _, h := range strings.Split(allowedDomains, ",") {
		if h = strings.TrimSpace(h); h != "" {
			allow[strings.ToLower(h)] = true
		}
	}
	return &NoteCtrl{s: s, tagger: tagger, allow: allow}
}

// Upload handles POST /upload_notes/:book_id with a multipart "file" and an
// optional "chapter" form field.
func (h *NoteCtrl) Upload(c echo.Context) error {
	bookID := c.Param("book_id")

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}
	var chapter *int
	if v := c.FormValue("chapter"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "chapter must be an integer"})
		}
		chapter = &parsed
	}

	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	defer src.Close()
	content, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	note, err := h.storeUserNote(bookID, fh.Filename, string(content), chapter)
	if err != nil {
		log.Printf("[notes] upload failed for book %s: %v", bookID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Notes uploaded successfully", "note_id": note.ID})
}

// UploadURL handles POST /upload_notes_url/:book_id with a JSON body
// {"url": "...", "chapter": n?}. Only hosts on the configured allowlist are
// fetched.
func (h *NoteCtrl) UploadURL(c echo.Context) error {
	bookID := c.Param("book_id")

	var body struct {
		URL     string `json:"url"`
		Chapter *int   `json:"chapter"`
	}
	if err := c.Bind(&body); err != nil || strings.TrimSpace(body.URL) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "url required"})
	}

	text, title, err := fetchMainText(body.URL, h.allow)
	if err != nil {
		if err == errDomainNotAllowed {
			return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
	if title != "" {
		text = title + "\n\n" + text
	}

	note, err := h.storeUserNote(bookID, body.URL, text, body.Chapter)
	if err != nil {
		log.Printf("[notes] url upload failed for book %s: %v", bookID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Notes uploaded successfully", "note_id": note.ID})
}

func (h *NoteCtrl) storeUserNote(bookID, origin, content string, chapter *int) (*entities.Note, error) {
	topics, err := h.tagger.ExtractTopics(content)
	if err != nil {
		log.Printf("[notes] topic extraction failed for %s: %v", origin, err)
		topics = nil
	}
	note := &entities.Note{
		ID:            entities.HashID(fmt.Sprintf("%s_user_%s", bookID, origin)),
		BookID:        bookID,
		ChapterNumber: chapter,
		Content:       content,
		Source:        "user_upload",
		TopicTags:     topics,
	}
	if err := h.s.AddNote(note); err != nil {
		return nil, err
	}
	return note, nil
}

// PastTest handles POST /upload_past_test/:book_id with a multipart "file".
func (h *NoteCtrl) PastTest(c echo.Context) error {
	bookID := c.Param("book_id")

	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file is required"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	defer src.Close()
	content, err := io.ReadAll(src)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	notes, err := h.s.ProcessPastTest(bookID, string(content))
	if err != nil {
		log.Printf("[notes] past test failed for book %s: %v", bookID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{
		"message":       "Past test processed successfully",
		"notes_created": len(notes),
	})
}

// List handles GET /get_notes/:book_id?chapter=n.
func (h *NoteCtrl) List(c echo.Context) error {
	bookID := c.Param("book_id")
	chapter, err := chapterParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	byTopic, err := h.s.MergeNotes(bookID, chapter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, byTopic)
}

// Export handles GET /export_notes/:book_id?chapter=n and streams an xlsx
// workbook of the merged notes.
func (h *NoteCtrl) Export(c echo.Context) error {
	bookID := c.Param("book_id")
	chapter, err := chapterParam(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	f, err := h.s.ExportWorkbook(bookID, chapter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="notes_%s.xlsx"`, bookID))
	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	return f.Write(c.Response())
}

func chapterParam(c echo.Context) (*int, error) {
	v := c.QueryParam("chapter")
	if v == "" {
		return nil, nil
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return nil, fmt.Errorf("chapter must be an integer")
	}
	return &parsed, nil
}
