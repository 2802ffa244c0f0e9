// internal/app/features/mentoring/handler.go
package mentoring

import (
	"net/http"
	"strconv"

	accountstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/accounts"
	mentoringstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/mentoring"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for mentoring matches.
type Handler struct {
	DB       *mongo.Database
	Log      *zap.Logger
	Store    *mentoringstore.Store
	Accounts *accountstore.Store

	errs *httpapi.ErrorLogger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Log:      logger,
		Store:    mentoringstore.New(db),
		Accounts: accountstore.New(db),
		errs:     httpapi.NewErrorLogger(logger),
	}
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
