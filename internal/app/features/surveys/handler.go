// internal/app/features/surveys/handler.go
package surveys

import (
	"net/http"
	"strconv"

	surveystore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/surveys"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for surveys and responses.
type Handler struct {
	DB        *mongo.Database
	Log       *zap.Logger
	Store     *surveystore.Store
	Responses *surveystore.ResponseStore

	errs *httpapi.ErrorLogger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:        db,
		Log:       logger,
		Store:     surveystore.New(db),
		Responses: surveystore.NewResponses(db),
		errs:      httpapi.NewErrorLogger(logger),
	}
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
