package controller

import "github.com/labstack/echo/v4"

type NoteController interface {
	Upload(c echo.Context) error
	UploadURL(c echo.Context) error
	PastTest(c echo.Context) error
	List(c echo.Context) error
	Export(c echo.Context) error
}
