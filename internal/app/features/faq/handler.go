// internal/app/features/faq/handler.go
package faq

import (
	"net/http"
	"strconv"

	faqstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/faqs"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the FAQ board.
type Handler struct {
	DB    *mongo.Database
	Log   *zap.Logger
	Store *faqstore.Store

	errs *httpapi.ErrorLogger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Log:   logger,
		Store: faqstore.New(db),
		errs:  httpapi.NewErrorLogger(logger),
	}
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
