// internal/app/features/grades/assign.go
package grades

import (
	"context"
	"errors"
	"net/http"
	"strings"

	offeringstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/offerings"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
)

// HandleAssign serves PUT /api/grades/enrollments/{enrollmentID}. Assigning
// a grade twice overwrites the earlier one.
func (h *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	enrollmentID, err := idParam(r, "enrollmentID")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid enrollment id")
		return
	}

	var req assignRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}
	req.Grade = strings.ToUpper(strings.TrimSpace(req.Grade))
	if !models.IsValidGrade(req.Grade) {
		httpapi.WriteError(w, http.StatusBadRequest, "grade must be one of A+, A, B+, B, C+, C, D, F")
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
	if enr.Status != models.EnrollmentEnrolled {
		httpapi.WriteError(w, http.StatusConflict, "cannot grade a dropped enrollment")
		return
	}

	off, err := h.Offerings.GetByID(ctx, enr.OfferingID)
	if err != nil {
		h.errs.ServerError(w, "failed to load offering", err)
		return
	}

	entry, err := h.Store.Upsert(ctx, models.GradeEntry{
		EnrollmentID: enr.EnrollmentID,
		OfferingID:   off.OfferingID,
		StudentID:    enr.StudentID,
		CourseCode:   off.CourseCode,
		Term:         off.Term,
		Credits:      off.Credits,
		Grade:        req.Grade,
		GradedByID:   u.AccountID,
	})
	if err != nil {
		h.errs.ServerError(w, "failed to record grade", err)
		return
	}

	httpapi.WriteData(w, http.StatusOK, entry)
}

// HandleRemove serves DELETE /api/grades/enrollments/{enrollmentID}.
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	enrollmentID, err := idParam(r, "enrollmentID")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid enrollment id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Store.Delete(ctx, enrollmentID)
	if err != nil {
		h.errs.ServerError(w, "failed to remove grade", err)
		return
	}
	if deleted == 0 {
		httpapi.NotFound(w, "grade not found")
		return
	}

	httpapi.WriteNoContent(w)
}
