// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	accountsfeature "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/features/accounts"
	authgooglefeature "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/features/authgoogle"
	departmentsfeature "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/features/departments"
	faqfeature "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/features/faq"
	gradesfeature "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/features/grades"
	healthfeature "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/features/health"
	loginfeature "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/features/login"
	mentoringfeature "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/features/mentoring"
	offeringsfeature "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/features/offerings"
	qnafeature "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/features/qna"
	resourcesfeature "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/features/resources"
	spacesfeature "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/features/spaces"
	surveysfeature "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/features/surveys"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/filestore"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/ratelimit"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. All API routes live under /api; uploaded
// files are served from the storage URL prefix; /health is for load
// balancers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tokens, err := auth.NewTokenIssuer(appCfg.TokenSecret, appCfg.TokenExpiry, "lms")
	if err != nil {
		logger.Error("token issuer init failed", zap.Error(err))
		return nil, err
	}

	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, tokens, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	files, err := filestore.NewLocal(appCfg.StorageLocalPath, appCfg.StorageURLPrefix)
	if err != nil {
		logger.Error("file store init failed", zap.Error(err))
		return nil, err
	}

	loginLimiter := ratelimit.NewLoginLimiter(ratelimit.Config{
		IPLimit:     appCfg.LoginIPLimit,
		IPWindow:    appCfg.LoginIPWindow,
		LoginLimit:  appCfg.LoginIDLimit,
		LoginWindow: appCfg.LoginIDWindow,
	})

	db := deps.LMSMongoDatabase

	r := chi.NewRouter()

	// Loads the SessionUser into context from the session cookie or a
	// bearer token, making auth.CurrentUser(r) work everywhere.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators.
	r.Mount("/health", healthfeature.Routes(healthfeature.NewHandler(deps.LMSMongoClient, logger)))

	// Uploaded resource files, with pre-compressed file support.
	r.Handle(appCfg.StorageURLPrefix+"/*", fileserver.Handler(appCfg.StorageURLPrefix, appCfg.StorageLocalPath))

	r.Route("/api", func(api chi.Router) {
		api.Mount("/auth", loginfeature.Routes(
			loginfeature.NewHandler(db, sessionMgr, tokens, loginLimiter, logger), sessionMgr))

		if appCfg.GoogleClientID != "" {
			api.Mount("/auth/google", authgooglefeature.Routes(
				authgooglefeature.NewHandler(db, sessionMgr, appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL, logger)))
		}

		api.Mount("/accounts", accountsfeature.Routes(accountsfeature.NewHandler(db, logger), sessionMgr))
		api.Mount("/departments", departmentsfeature.Routes(departmentsfeature.NewHandler(db, logger), sessionMgr))
		api.Mount("/offerings", offeringsfeature.Routes(offeringsfeature.NewHandler(db, logger), sessionMgr))
		api.Mount("/grades", gradesfeature.Routes(gradesfeature.NewHandler(db, logger), sessionMgr))
		api.Mount("/surveys", surveysfeature.Routes(surveysfeature.NewHandler(db, logger), sessionMgr))
		api.Mount("/mentoring", mentoringfeature.Routes(mentoringfeature.NewHandler(db, logger), sessionMgr))
		api.Mount("/faqs", faqfeature.Routes(faqfeature.NewHandler(db, logger), sessionMgr))
		api.Mount("/qna", qnafeature.Routes(qnafeature.NewHandler(db, logger), sessionMgr))
		api.Mount("/resources", resourcesfeature.Routes(resourcesfeature.NewHandler(db, files, logger), sessionMgr))
		api.Mount("/spaces", spacesfeature.Routes(spacesfeature.NewHandler(db, logger), sessionMgr))
	})

	return r, nil
}
