// internal/app/features/grades/transcript.go
package grades

import (
	"context"
	"math"
	"net/http"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
)

// buildTranscript computes a credit-weighted GPA over a student's grades.
func buildTranscript(studentID int64, entries []models.GradeEntry) transcript {
	tr := transcript{StudentID: studentID, Entries: entries}
	if tr.Entries == nil {
		tr.Entries = []models.GradeEntry{}
	}

	var points float64
	for _, e := range entries {
		tr.TotalCredits += e.Credits
		points += models.GradePoints(e.Grade) * float64(e.Credits)
	}
	if tr.TotalCredits > 0 {
		// Two decimal places, matching how registrars report GPA.
		tr.GPA = math.Round(points/float64(tr.TotalCredits)*100) / 100
	}
	return tr
}

// HandleMyTranscript serves GET /api/grades/me.
func (h *Handler) HandleMyTranscript(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	entries, err := h.Store.ListByStudent(ctx, u.AccountID)
	if err != nil {
		h.errs.ServerError(w, "failed to load grades", err)
		return
	}

	httpapi.WriteData(w, http.StatusOK, buildTranscript(u.AccountID, entries))
}

// HandleTranscript serves GET /api/grades/students/{studentID} for staff.
func (h *Handler) HandleTranscript(w http.ResponseWriter, r *http.Request) {
	studentID, err := idParam(r, "studentID")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid student id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	entries, err := h.Store.ListByStudent(ctx, studentID)
	if err != nil {
		h.errs.ServerError(w, "failed to load grades", err)
		return
	}

	httpapi.WriteData(w, http.StatusOK, buildTranscript(studentID, entries))
}
