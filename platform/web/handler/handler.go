// Package handler adapts result-returning handlers to gin.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Result is what every api handler returns. A nil Body writes the status with an empty body
type Result struct {
	Status int
	Body   any
}

// HTML is a Body rendered as text/html instead of JSON
type HTML string

// Error is the JSON error body
type Error struct {
	Error string `json:"error" example:"unknown endpoint"`
}

// Func is an api handler
type Func func(ctx *gin.Context) Result

// Wrapper turns a Func into a gin.HandlerFunc, rendering its Result
func Wrapper(f Func) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		Write(ctx, f(ctx))
	}
}

// Write renders r into the response
func Write(ctx *gin.Context, r Result) {
	switch body := r.Body.(type) {
	case nil:
		ctx.Status(r.Status)
	case HTML:
		ctx.Data(r.Status, "text/html; charset=utf-8", []byte(body))
	default:
		ctx.JSON(r.Status, body)
	}
}

// BadRequest is a 400 with a JSON error body
func BadRequest(msg string) Result {
	return Result{Status: http.StatusBadRequest, Body: Error{Error: msg}}
}
