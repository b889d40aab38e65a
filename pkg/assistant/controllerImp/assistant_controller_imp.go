package controllerImp

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"bookstudy/entities"
	"bookstudy/pkg/assistant/service"
	"bookstudy/pkg/assistant/serviceImp"
)

type chapterLoader interface {
	ChapterByNumber(bookID string, chapterNumber int) (*entities.Chapter, error)
}

type AssistantCtrl struct {
	s     service.AssistantService
	books chapterLoader
}

func New(s service.AssistantService, books chapterLoader) *AssistantCtrl {
	return &AssistantCtrl{s: s, books: books}
}

// Ask handles POST /ask_question/:book_id with form field "question".
func (h *AssistantCtrl) Ask(c echo.Context) error {
	bookID := c.Param("book_id")
	question := strings.TrimSpace(c.FormValue("question"))
	if question == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "question is required"})
	}

	answer, err := h.s.AnswerQuestion(bookID, question)
	if err != nil {
		log.Printf("[assistant] answer failed for book %s: %v", bookID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"answer": answer})
}

// Quiz handles POST /generate_quiz/:book_id/:chapter_number with optional
// query params difficulty (easy|medium|hard, default medium) and
// num_questions (default 5).
func (h *AssistantCtrl) Quiz(c echo.Context) error {
	bookID := c.Param("book_id")
	chapterNumber, err := strconv.Atoi(c.Param("chapter_number"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "chapter_number must be an integer"})
	}
	difficulty := c.QueryParam("difficulty")
	if difficulty == "" {
		difficulty = "medium"
	}
	if difficulty != "easy" && difficulty != "medium" && difficulty != "hard" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "difficulty must be easy, medium or hard"})
	}
	n := 5
	if v := c.QueryParam("num_questions"); v != "" {
		if n, err = strconv.Atoi(v); err != nil || n <= 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "num_questions must be a positive integer"})
		}
	}

	ch, err := h.books.ChapterByNumber(bookID, chapterNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "chapter not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	questions, err := h.s.GenerateQuiz(ch, difficulty, n)
	if err != nil {
		log.Printf("[assistant] quiz failed for book %s chapter %d: %v", bookID, chapterNumber, err)
		status := http.StatusInternalServerError
		if errors.Is(err, serviceImp.ErrMalformedModelOutput) {
			status = http.StatusBadGateway
		}
		return c.JSON(status, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]any{"quiz": questions})
}

// Plan handles POST /smart_study_plan/:book_id with form fields exam_date
// and study_hours_per_day.
func (h *AssistantCtrl) Plan(c echo.Context) error {
	bookID := c.Param("book_id")
	examDate := strings.TrimSpace(c.FormValue("exam_date"))
	if examDate == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "exam_date is required"})
	}
	hours, err := strconv.Atoi(c.FormValue("study_hours_per_day"))
	if err != nil || hours <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "study_hours_per_day must be a positive integer"})
	}

	plan, err := h.s.StudyPlan(bookID, examDate, hours)
	if err != nil {
		log.Printf("[assistant] study plan failed for book %s: %v", bookID, err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"study_plan": plan})
}
