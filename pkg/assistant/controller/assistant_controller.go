package controller

import "github.com/labstack/echo/v4"

type AssistantController interface {
	Ask(c echo.Context) error
	Quiz(c echo.Context) error
	Plan(c echo.Context) error
}
