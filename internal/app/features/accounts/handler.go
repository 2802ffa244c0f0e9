// internal/app/features/accounts/handler.go
package accounts

import (
	"net/http"
	"strconv"

	accountstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/accounts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for account administration.
type Handler struct {
	DB    *mongo.Database
	Log   *zap.Logger
	Store *accountstore.Store

	errs *httpapi.ErrorLogger
}

// NewHandler constructs an Accounts handler bound to a DB and logger.
func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Log:   logger,
		Store: accountstore.New(db),
		errs:  httpapi.NewErrorLogger(logger),
	}
}

// idParam parses the numeric {id} route parameter.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
