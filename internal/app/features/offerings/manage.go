// internal/app/features/offerings/manage.go
package offerings

import (
	"context"
	"errors"
	"net/http"

	departmentstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/departments"
	offeringstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/offerings"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/normalize"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// HandleCreate serves POST /api/offerings.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	req.CourseCode = normalize.Code(req.CourseCode)
	req.Title = normalize.Name(req.Title)
	req.Term = normalize.Code(req.Term)
	switch {
	case req.CourseCode == "":
		httpapi.WriteError(w, http.StatusBadRequest, "courseCode is required")
		return
	case req.Title == "":
		httpapi.WriteError(w, http.StatusBadRequest, "title is required")
		return
	case req.Term == "":
		httpapi.WriteError(w, http.StatusBadRequest, "term is required")
		return
	case req.Capacity < 1:
		httpapi.WriteError(w, http.StatusBadRequest, "capacity must be at least 1")
		return
	case req.Credits < 1:
		httpapi.WriteError(w, http.StatusBadRequest, "credits must be at least 1")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if req.DepartmentID != 0 {
		if _, err := h.Departments.GetByID(ctx, req.DepartmentID); err != nil {
			if errors.Is(err, departmentstore.ErrNotFound) {
				httpapi.NotFound(w, "department not found")
				return
			}
			h.errs.ServerError(w, "failed to load department", err)
			return
		}
	}

	off, err := h.Store.Create(ctx, models.Offering{
		CourseCode:   req.CourseCode,
		Title:        req.Title,
		Term:         req.Term,
		Credits:      req.Credits,
		DepartmentID: req.DepartmentID,
		Instructor:   normalize.Name(req.Instructor),
		Capacity:     req.Capacity,
	})
	if err != nil {
		if errors.Is(err, offeringstore.ErrDuplicateOffering) {
			httpapi.Conflict(w, err)
			return
		}
		h.errs.ServerError(w, "failed to create offering", err)
		return
	}

	httpapi.WriteData(w, http.StatusCreated, off)
}

// HandleUpdate serves PATCH /api/offerings/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid offering id")
		return
	}

	var req updateRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// Capacity may not drop below the current enrollment.
	if req.Capacity > 0 {
		off, err := h.Store.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, offeringstore.ErrNotFound) {
				httpapi.NotFound(w, "offering not found")
				return
			}
			h.errs.ServerError(w, "failed to load offering", err)
			return
		}
		if req.Capacity < off.Enrolled {
			httpapi.WriteError(w, http.StatusConflict, "capacity cannot be below current enrollment")
			return
		}
	}

	err = h.Store.Update(ctx, id, models.Offering{
		Title:      normalize.Name(req.Title),
		Instructor: normalize.Name(req.Instructor),
		Credits:    req.Credits,
		Capacity:   req.Capacity,
	})
	if err != nil {
		if errors.Is(err, offeringstore.ErrNotFound) {
			httpapi.NotFound(w, "offering not found")
			return
		}
		h.errs.ServerError(w, "failed to update offering", err)
		return
	}

	off, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to reload offering", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, off)
}

// HandleStatus serves PATCH /api/offerings/{id}/status.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid offering id")
		return
	}

	var req statusRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	status := normalize.Status(req.Status)
	if status != models.StatusActive && status != models.StatusInactive {
		httpapi.WriteError(w, http.StatusBadRequest, "status must be ACTIVE or INACTIVE")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, offeringstore.ErrNotFound) {
			httpapi.NotFound(w, "offering not found")
			return
		}
		h.errs.ServerError(w, "failed to update offering status", err)
		return
	}

	off, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to reload offering", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, off)
}

// HandleDelete serves DELETE /api/offerings/{id}. Offerings with active
// enrollments cannot be deleted.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid offering id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	enrolled, err := h.Enrollments.Count(ctx, bson.M{
		"offering_id": id,
		"status":      models.EnrollmentEnrolled,
	})
	if err != nil {
		h.errs.ServerError(w, "failed to check enrollments", err)
		return
	}
	if enrolled > 0 {
		httpapi.WriteError(w, http.StatusConflict, "offering still has enrolled students")
		return
	}

	deleted, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to delete offering", err)
		return
	}
	if deleted == 0 {
		httpapi.NotFound(w, "offering not found")
		return
	}

	httpapi.WriteNoContent(w)
}
