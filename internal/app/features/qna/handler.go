// internal/app/features/qna/handler.go
package qna

import (
	"net/http"
	"strconv"

	qnastore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/qna"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the Q&A board.
type Handler struct {
	DB    *mongo.Database
	Log   *zap.Logger
	Store *qnastore.Store

	errs *httpapi.ErrorLogger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Log:   logger,
		Store: qnastore.New(db),
		errs:  httpapi.NewErrorLogger(logger),
	}
}

func idParam(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, key), 10, 64)
}

// canModify reports whether the user owns the content or is an admin.
// Ownership is the board's core rule: authors manage their own posts and
// answers; admins moderate everything.
func canModify(u *auth.SessionUser, authorID int64) bool {
	return u.Role == models.RoleAdmin || u.AccountID == authorID
}
