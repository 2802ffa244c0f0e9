// internal/app/features/grades/handler.go
package grades

import (
	"net/http"
	"strconv"

	gradestore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/grades"
	offeringstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/offerings"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for grading and transcripts.
type Handler struct {
	DB          *mongo.Database
	Log         *zap.Logger
	Store       *gradestore.Store
	Offerings   *offeringstore.Store
	Enrollments *offeringstore.EnrollmentStore

	errs *httpapi.ErrorLogger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:          db,
		Log:         logger,
		Store:       gradestore.New(db),
		Offerings:   offeringstore.New(db),
		Enrollments: offeringstore.NewEnrollments(db),
		errs:        httpapi.NewErrorLogger(logger),
	}
}

func idParam(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, key), 10, 64)
}
