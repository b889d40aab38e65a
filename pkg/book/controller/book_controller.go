package controller

import "github.com/labstack/echo/v4"

type BookController interface {
	Upload(c echo.Context) error
	Chapters(c echo.Context) error
}
