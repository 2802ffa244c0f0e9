package login

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	accountstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/accounts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/ratelimit"
)

// Handler holds the dependencies for password sign-in and sign-out.
type Handler struct {
	DB       *mongo.Database
	Log      *zap.Logger
	Accounts *accountstore.Store
	Sessions *auth.SessionManager
	Tokens   *auth.TokenIssuer
	Limiter  *ratelimit.LoginLimiter

	errs *httpapi.ErrorLogger
}

// NewHandler constructs a login Handler.
func NewHandler(db *mongo.Database, sm *auth.SessionManager, tokens *auth.TokenIssuer, limiter *ratelimit.LoginLimiter, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Log:      logger,
		Accounts: accountstore.New(db),
		Sessions: sm,
		Tokens:   tokens,
		Limiter:  limiter,
		errs:     httpapi.NewErrorLogger(logger),
	}
}
