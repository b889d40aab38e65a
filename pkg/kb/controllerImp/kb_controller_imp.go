package controllerImp

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"bookstudy/pkg/kb/service"
)

type KBCtrl struct{ s service.KBService }

func New(s service.KBService) *KBCtrl { return &KBCtrl{s: s} }

// Search exposes the retriever over GET for inspection:
// /search/:book_id?q=...&n=5&chapter=2
func (h *KBCtrl) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "q required"})
	}
	n := 5
	if v := c.QueryParam("n"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "n must be a positive integer"})
		}
		n = parsed
	}
	var chapter *int
	if v := c.QueryParam("chapter"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "chapter must be an integer"})
		}
		chapter = &parsed
	}

	chunks, err := h.s.Search(c.Param("book_id"), q, n, chapter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, chunks)
}
