// internal/app/features/departments/handler.go
package departments

import (
	"net/http"
	"strconv"

	departmentstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/departments"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for departments and their majors.
type Handler struct {
	DB     *mongo.Database
	Log    *zap.Logger
	Store  *departmentstore.Store
	Majors *departmentstore.MajorStore

	errs *httpapi.ErrorLogger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:     db,
		Log:    logger,
		Store:  departmentstore.New(db),
		Majors: departmentstore.NewMajors(db),
		errs:   httpapi.NewErrorLogger(logger),
	}
}

func idParam(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, key), 10, 64)
}
