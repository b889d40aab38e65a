package router

import (
	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	bookCtrl interface {
		Upload(echo.Context) error
		Chapters(echo.Context) error
	},
	noteCtrl interface {
		Upload(echo.Context) error
		UploadURL(echo.Context) error
		PastTest(echo.Context) error
		List(echo.Context) error
		Export(echo.Context) error
	},
	assistantCtrl interface {
		Ask(echo.Context) error
		Quiz(echo.Context) error
		Plan(echo.Context) error
	},
	kbCtrl interface{ Search(echo.Context) error },
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	e.POST("/upload_book", bookCtrl.Upload)
	e.GET("/books/:book_id/chapters", bookCtrl.Chapters)

	e.POST("/upload_notes/:book_id", noteCtrl.Upload)
	e.POST("/upload_notes_url/:book_id", noteCtrl.UploadURL)
	e.POST("/upload_past_test/:book_id", noteCtrl.PastTest)
	e.GET("/get_notes/:book_id", noteCtrl.List)
	e.GET("/export_notes/:book_id", noteCtrl.Export)

	e.POST("/generate_quiz/:book_id/:chapter_number", assistantCtrl.Quiz)
	e.POST("/ask_question/:book_id", assistantCtrl.Ask)
	e.POST("/smart_study_plan/:book_id", assistantCtrl.Plan)

	e.GET("/search/:book_id", kbCtrl.Search)

	return e
}
