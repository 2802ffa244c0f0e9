// internal/app/features/resources/handler.go
package resources

import (
	"net/http"
	"strconv"

	resourcestore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/resources"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/filestore"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// maxUploadBytes caps a whole multipart upload (all files together).
const maxUploadBytes = 64 << 20 // 64 MiB

// Handler is the feature-level entry point for shared study resources.
type Handler struct {
	DB    *mongo.Database
	Log   *zap.Logger
	Store *resourcestore.Store
	Files filestore.Store

	errs *httpapi.ErrorLogger
}

func NewHandler(db *mongo.Database, files filestore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Log:   logger,
		Store: resourcestore.New(db),
		Files: files,
		errs:  httpapi.NewErrorLogger(logger),
	}
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
