// internal/app/features/offerings/handler.go
package offerings

import (
	"net/http"
	"strconv"

	accountstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/accounts"
	departmentstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/departments"
	offeringstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/offerings"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for offerings and enrollments.
type Handler struct {
	DB          *mongo.Database
	Log         *zap.Logger
	Store       *offeringstore.Store
	Enrollments *offeringstore.EnrollmentStore
	Accounts    *accountstore.Store
	Departments *departmentstore.Store

	errs *httpapi.ErrorLogger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:          db,
		Log:         logger,
		Store:       offeringstore.New(db),
		Enrollments: offeringstore.NewEnrollments(db),
		Accounts:    accountstore.New(db),
		Departments: departmentstore.New(db),
		errs:        httpapi.NewErrorLogger(logger),
	}
}

func idParam(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, key), 10, 64)
}
