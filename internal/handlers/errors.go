package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"biztime/internal/database"
	"biztime/internal/logging"
)

// AppError is an error that knows its HTTP status.
type AppError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NotFound(msg string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: msg}
}

func BadRequest(msg string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: msg}
}

func Conflict(msg string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: msg}
}

type errorResponse struct {
	Error   any    `json:"error"`
	Message string `json:"message"`
}

// Responder writes JSON bodies and is the one place request errors are
// turned into responses and logged.
type Responder struct {
	Logger *slog.Logger
}

func (rs Responder) JSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// Error writes err as {"error": ..., "message": ...}. Database errors carry
// the driver error object, anything unrecognised becomes a 500.
func (rs Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	body := errorResponse{
		Error:   &AppError{Status: status, Message: http.StatusText(status)},
		Message: http.StatusText(status),
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		status = appErr.Status
		body = errorResponse{Error: appErr, Message: appErr.Message}
	} else if pgErr, ok := database.AsPgError(err); ok {
		body = errorResponse{Error: pgErr, Message: pgErr.Message}
	}

	rs.log(r, status, err)
	rs.JSON(w, r, status, body)
}

func (rs Responder) log(r *http.Request, status int, err error) {
	if rs.Logger == nil {
		return
	}
	level := slog.LevelWarn
	if status >= http.StatusInternalServerError {
		level = slog.LevelError
	}
	rs.Logger.LogAttrs(r.Context(), level, "request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.String("request_id", logging.RequestID(r.Context())),
		slog.Any("error", err),
	)
}
