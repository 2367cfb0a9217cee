package controller

import "github.com/labstack/echo/v4"

type QAController interface {
	Run(c echo.Context) error     // one-shot: process a document URL and answer all questions
	Process(c echo.Context) error // decoupled: persist the index for a document URL
	Query(c echo.Context) error   // decoupled: answer questions against the persisted index
}
