// internal/app/features/offerings/enrollments.go
package offerings

import (
	"context"
	"errors"
	"net/http"

	accountstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/accounts"
	offeringstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/offerings"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/paging"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// HandleEnroll serves POST /api/offerings/{id}/enrollments.
//
// The seat is reserved on the offering first; if the enrollment insert then
// fails (usually a duplicate), the seat is released again.
func (h *Handler) HandleEnroll(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	offeringID, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid offering id")
		return
	}

	var req enrollRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	studentID := u.AccountID
	if req.StudentID != 0 && (u.Role == models.RoleAdmin || u.Role == models.RoleStaff) {
		studentID = req.StudentID
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	student, err := h.Accounts.GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, accountstore.ErrNotFound) {
			httpapi.NotFound(w, "student account not found")
			return
		}
		h.errs.ServerError(w, "failed to load student", err)
		return
	}
	if student.Role != models.RoleStudent {
		httpapi.WriteError(w, http.StatusConflict, "only students can be enrolled")
		return
	}
	if !student.IsActive() {
		httpapi.WriteError(w, http.StatusConflict, "student account is suspended")
		return
	}

	if err := h.Store.ReserveSeat(ctx, offeringID); err != nil {
		switch {
		case errors.Is(err, offeringstore.ErrNotFound):
			httpapi.NotFound(w, "offering not found")
		case errors.Is(err, offeringstore.ErrFull):
			httpapi.Conflict(w, err)
		default:
			h.errs.ServerError(w, "failed to reserve seat", err)
		}
		return
	}

	enr, err := h.Enrollments.Create(ctx, models.Enrollment{
		OfferingID:  offeringID,
		StudentID:   student.AccountID,
		StudentName: student.FullName,
	})
	if err != nil {
		if relErr := h.Store.ReleaseSeat(ctx, offeringID); relErr != nil {
			h.Log.Error("release seat after failed enrollment",
				zap.Int64("offering_id", offeringID), zap.Error(relErr))
		}
		if errors.Is(err, offeringstore.ErrDuplicateEnrollment) {
			httpapi.Conflict(w, err)
			return
		}
		h.errs.ServerError(w, "failed to enroll student", err)
		return
	}

	httpapi.WriteData(w, http.StatusCreated, enr)
}

// HandleDrop serves POST /api/offerings/{id}/enrollments/{enrollmentID}/drop.
// Students may drop only their own enrollment.
func (h *Handler) HandleDrop(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	offeringID, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid offering id")
		return
	}
	enrollmentID, err := idParam(r, "enrollmentID")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid enrollment id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	enr, err := h.Enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		if errors.Is(err, offeringstore.ErrEnrollmentNotFound) {
			httpapi.NotFound(w, "enrollment not found")
			return
		}
		h.errs.ServerError(w, "failed to load enrollment", err)
		return
	}
	if enr.OfferingID != offeringID {
		httpapi.NotFound(w, "enrollment not found")
		return
	}
	if u.Role == models.RoleStudent && enr.StudentID != u.AccountID {
		httpapi.WriteError(w, http.StatusForbidden, "cannot drop another student's enrollment")
		return
	}

	if err := h.Enrollments.Drop(ctx, enrollmentID); err != nil {
		if errors.Is(err, offeringstore.ErrEnrollmentNotFound) {
			httpapi.Conflict(w, errors.New("enrollment already dropped"))
			return
		}
		h.errs.ServerError(w, "failed to drop enrollment", err)
		return
	}

	if err := h.Store.ReleaseSeat(ctx, offeringID); err != nil {
		h.Log.Error("release seat after drop",
			zap.Int64("offering_id", offeringID), zap.Error(err))
	}

	enr, err = h.Enrollments.GetByID(ctx, enrollmentID)
	if err != nil {
		h.errs.ServerError(w, "failed to reload enrollment", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, enr)
}

// HandleListEnrollments serves GET /api/offerings/{id}/enrollments for staff.
func (h *Handler) HandleListEnrollments(w http.ResponseWriter, r *http.Request) {
	offeringID, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid offering id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)
	filter := bson.M{"offering_id": offeringID}

	total, err := h.Enrollments.Count(ctx, filter)
	if err != nil {
		h.errs.ServerError(w, "failed to count enrollments", err)
		return
	}

	enrs, err := h.Enrollments.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "enrollment_id", Value: 1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit()))
	if err != nil {
		h.errs.ServerError(w, "failed to list enrollments", err)
		return
	}

	httpapi.WriteList(w, enrs, paging.NewMeta(p, total, "id,asc"))
}
