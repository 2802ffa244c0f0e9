// internal/app/features/departments/majors.go
package departments

import (
	"context"
	"errors"
	"net/http"

	departmentstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/departments"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/normalize"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
)

// HandleCreateMajor serves POST /api/departments/{id}/majors.
func (h *Handler) HandleCreateMajor(w http.ResponseWriter, r *http.Request) {
	deptID, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid department id")
		return
	}

	var req majorRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}
	req.Name = normalize.Name(req.Name)
	if req.Name == "" {
		httpapi.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	// The parent department must exist and be active.
	dept, err := h.Store.GetByID(ctx, deptID)
	if err != nil {
		if errors.Is(err, departmentstore.ErrNotFound) {
			httpapi.NotFound(w, "department not found")
			return
		}
		h.errs.ServerError(w, "failed to load department", err)
		return
	}
	if dept.Status != models.StatusActive {
		httpapi.WriteError(w, http.StatusConflict, "department is inactive")
		return
	}

	major, err := h.Majors.Create(ctx, models.Major{
		DepartmentID: deptID,
		Name:         req.Name,
	})
	if err != nil {
		if errors.Is(err, departmentstore.ErrDuplicateMajor) {
			httpapi.Conflict(w, err)
			return
		}
		h.errs.ServerError(w, "failed to create major", err)
		return
	}

	httpapi.WriteData(w, http.StatusCreated, major)
}

// HandleUpdateMajor serves PATCH /api/departments/{id}/majors/{majorID}.
func (h *Handler) HandleUpdateMajor(w http.ResponseWriter, r *http.Request) {
	majorID, err := idParam(r, "majorID")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid major id")
		return
	}

	var req majorRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Majors.Update(ctx, majorID, models.Major{Name: normalize.Name(req.Name)})
	if err != nil {
		switch {
		case errors.Is(err, departmentstore.ErrMajorNotFound):
			httpapi.NotFound(w, "major not found")
		case errors.Is(err, departmentstore.ErrDuplicateMajor):
			httpapi.Conflict(w, err)
		default:
			h.errs.ServerError(w, "failed to update major", err)
		}
		return
	}

	major, err := h.Majors.GetByID(ctx, majorID)
	if err != nil {
		h.errs.ServerError(w, "failed to reload major", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, major)
}

// HandleMajorStatus serves PATCH /api/departments/{id}/majors/{majorID}/status.
func (h *Handler) HandleMajorStatus(w http.ResponseWriter, r *http.Request) {
	majorID, err := idParam(r, "majorID")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid major id")
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

	if err := h.Majors.UpdateStatus(ctx, majorID, status); err != nil {
		if errors.Is(err, departmentstore.ErrMajorNotFound) {
			httpapi.NotFound(w, "major not found")
			return
		}
		h.errs.ServerError(w, "failed to update major status", err)
		return
	}

	major, err := h.Majors.GetByID(ctx, majorID)
	if err != nil {
		h.errs.ServerError(w, "failed to reload major", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, major)
}

// HandleDeleteMajor serves DELETE /api/departments/{id}/majors/{majorID}.
func (h *Handler) HandleDeleteMajor(w http.ResponseWriter, r *http.Request) {
	majorID, err := idParam(r, "majorID")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid major id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Majors.Delete(ctx, majorID)
	if err != nil {
		h.errs.ServerError(w, "failed to delete major", err)
		return
	}
	if deleted == 0 {
		httpapi.NotFound(w, "major not found")
		return
	}

	httpapi.WriteNoContent(w)
}
