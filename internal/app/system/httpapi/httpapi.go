// internal/app/system/httpapi/httpapi.go

// Package httpapi provides the canonical JSON envelope for API responses.
//
// Every endpoint responds with the same outer shape:
//
//	{ "data": ..., "meta": {...} }   on success
//	{ "message": "..." }             on failure
//
// List endpoints put the row slice in data and pagination in meta; single
// object endpoints put the object in data with meta null. Handlers should
// never write JSON directly — going through this package keeps the envelope
// consistent across features, which client normalizers depend on.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// maxBodyBytes caps JSON request bodies. Multipart uploads have their own
// limit in the resources feature.
const maxBodyBytes = 1 << 20 // 1 MiB

// Envelope is the outer response wrapper.
type Envelope struct {
	Data any `json:"data"`
	Meta any `json:"meta"`
}

// errorBody is the failure response shape. Clients look for "message".
type errorBody struct {
	Message string `json:"message"`
}

// WriteData writes a success envelope with the given payload and null meta.
func WriteData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, Envelope{Data: data, Meta: nil})
}

// WriteList writes a success envelope with rows in data and pagination meta.
func WriteList(w http.ResponseWriter, data any, meta any) {
	writeJSON(w, http.StatusOK, Envelope{Data: data, Meta: meta})
}

// WriteError writes a failure body with the given message.
func WriteError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorBody{Message: message})
}

// WriteNoContent writes an empty 204 response.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Decode reads a JSON request body into v with a size cap.
// Unknown fields are tolerated; the backend, unlike its clients, does not
// need to be lenient about shape, but it should not break older frontends
// that send extra keys.
func Decode(r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	return nil
}

// ErrorLogger logs handler failures and writes the client-facing message.
// It keeps internal error detail out of responses while preserving it in logs.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger creates an ErrorLogger wrapping the given zap logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// BadRequest logs err at warn level and writes a 400 with message.
func (e *ErrorLogger) BadRequest(w http.ResponseWriter, message string, err error) {
	e.log.Warn("bad request", zap.String("message", message), zap.Error(err))
	WriteError(w, http.StatusBadRequest, message)
}

// ServerError logs err at error level and writes a 500 with message.
func (e *ErrorLogger) ServerError(w http.ResponseWriter, message string, err error) {
	e.log.Error("server error", zap.String("message", message), zap.Error(err))
	WriteError(w, http.StatusInternalServerError, message)
}

// NotFound writes a 404 when a document lookup came back empty.
// Mongo's ErrNoDocuments is the usual trigger.
func NotFound(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusNotFound, message)
}

// Conflict writes a 409 for duplicate-key and state-transition failures,
// echoing the store sentinel's message (they are written to be user-facing).
func Conflict(w http.ResponseWriter, err error) {
	WriteError(w, http.StatusConflict, err.Error())
}

// IsNoDocuments reports whether err is Mongo's "no documents" lookup miss.
func IsNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
