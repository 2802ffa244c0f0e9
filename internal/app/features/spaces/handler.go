// internal/app/features/spaces/handler.go
package spaces

import (
	"net/http"
	"strconv"

	spacestore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/spaces"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for spaces and reservations.
type Handler struct {
	DB           *mongo.Database
	Log          *zap.Logger
	Store        *spacestore.Store
	Reservations *spacestore.ReservationStore

	errs *httpapi.ErrorLogger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:           db,
		Log:          logger,
		Store:        spacestore.New(db),
		Reservations: spacestore.NewReservations(db),
		errs:         httpapi.NewErrorLogger(logger),
	}
}

func idParam(r *http.Request, key string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, key), 10, 64)
}
