package controllerImp

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"bookstudy/entities"
)

type fakeNoteSvc struct {
	added    []entities.Note
	pastTest []entities.Note
	merged   map[string][]entities.Note
}

func (s *fakeNoteSvc) AddNote(n *entities.Note) error {
	s.added = append(s.added, *n)
	return nil
}

func (s *fakeNoteSvc) MergeNotes(bookID string, chapterNumber *int) (map[string][]entities.Note, error) {
	return s.merged, nil
}

func (s *fakeNoteSvc) ProcessPastTest(bookID, testContent string) ([]entities.Note, error) {
	return s.pastTest, nil
}

func (s *fakeNoteSvc) ExportWorkbook(bookID string, chapterNumber *int) (*excelize.File, error) {
	return excelize.NewFile(), nil
}

type fixedTagger struct{ tags []string }

func (t *fixedTagger) ExtractTopics(text string) ([]string, error) { return t.tags, nil }

func noteUpload(t *testing.T, target, filename, content string, form map[string]string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	for k, v := range form {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req, httptest.NewRecorder()
}

func bookCtx(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder) echo.Context {
	ctx := e.NewContext(req, rec)
	ctx.SetParamNames("book_id")
	ctx.SetParamValues("b1")
	return ctx
}

func TestNoteUpload(t *testing.T) {
	e := echo.New()
	svc := &fakeNoteSvc{}
	h := New(svc, &fixedTagger{tags: []string{"biology"}}, "")

	req, rec := noteUpload(t, "/upload_notes/b1", "my_notes.txt", "cells are small", map[string]string{"chapter": "3"})
	require.NoError(t, h.Upload(bookCtx(e, req, rec)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, svc.added, 1)

	n := svc.added[0]
	assert.Equal(t, "user_upload", n.Source)
	assert.Equal(t, "cells are small", n.Content)
	assert.Equal(t, []string{"biology"}, n.TopicTags)
	assert.Equal(t, entities.HashID("b1_user_my_notes.txt"), n.ID)
	require.NotNil(t, n.ChapterNumber)
	assert.Equal(t, 3, *n.ChapterNumber)
}

func TestNoteUpload_BadChapter(t *testing.T) {
	e := echo.New()
	h := New(&fakeNoteSvc{}, &fixedTagger{}, "")

	req, rec := noteUpload(t, "/upload_notes/b1", "n.txt", "x", map[string]string{"chapter": "three"})
	require.NoError(t, h.Upload(bookCtx(e, req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestNoteUpload_RequiresFile(t *testing.T) {
	e := echo.New()
	h := New(&fakeNoteSvc{}, &fixedTagger{}, "")

	req := httptest.NewRequest(http.MethodPost, "/upload_notes/b1", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Upload(bookCtx(e, req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadURL_DomainNotAllowed(t *testing.T) {
	e := echo.New()
	h := New(&fakeNoteSvc{}, &fixedTagger{}, "docs.example.com")

	req := httptest.NewRequest(http.MethodPost, "/upload_notes_url/b1",
		strings.NewReader(`{"url": "https://evil.example.net/page"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.UploadURL(bookCtx(e, req, rec)))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUploadURL_FetchesAllowedPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><title>Cell Biology</title></head>
<body><main><h1>Cells</h1><p>Cells are the unit of life.</p></main></body></html>`))
	}))
	defer srv.Close()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)

	e := echo.New()
	svc := &fakeNoteSvc{}
	h := New(svc, &fixedTagger{}, u.Host)

	req := httptest.NewRequest(http.MethodPost, "/upload_notes_url/b1",
		strings.NewReader(`{"url": "`+srv.URL+`/page"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.UploadURL(bookCtx(e, req, rec)))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Len(t, svc.added, 1)
	assert.Contains(t, svc.added[0].Content, "Cell Biology")
	assert.Contains(t, svc.added[0].Content, "Cells are the unit of life.")
}

func TestUploadURL_RequiresURL(t *testing.T) {
	e := echo.New()
	h := New(&fakeNoteSvc{}, &fixedTagger{}, "")

	req := httptest.NewRequest(http.MethodPost, "/upload_notes_url/b1", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h.UploadURL(bookCtx(e, req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPastTest(t *testing.T) {
	e := echo.New()
	svc := &fakeNoteSvc{pastTest: []entities.Note{{ID: "a"}, {ID: "b"}}}
	h := New(svc, &fixedTagger{}, "")

	req, rec := noteUpload(t, "/upload_past_test/b1", "midterm.txt", "1. What is a cell?", nil)
	require.NoError(t, h.PastTest(bookCtx(e, req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"notes_created":2`)
}

func TestList_BadChapter(t *testing.T) {
	e := echo.New()
	h := New(&fakeNoteSvc{}, &fixedTagger{}, "")

	req := httptest.NewRequest(http.MethodGet, "/get_notes/b1?chapter=abc", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.List(bookCtx(e, req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportHeaders(t *testing.T) {
	e := echo.New()
	h := New(&fakeNoteSvc{}, &fixedTagger{}, "")

	req := httptest.NewRequest(http.MethodGet, "/export_notes/b1", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.Export(bookCtx(e, req, rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentDisposition), "notes_b1.xlsx")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestCleanWhitespace(t *testing.T) {
	assert.Equal(t, "a\nb", cleanWhitespace("a  \r\nb"))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, "Title", firstLine("  Title\nrest of text"))
	assert.Len(t, firstLine(strings.Repeat("a", 200)), 120)
}
