// internal/app/features/departments/manage.go
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

// HandleGet serves GET /api/departments/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid department id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	dept, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, departmentstore.ErrNotFound) {
			httpapi.NotFound(w, "department not found")
			return
		}
		h.errs.ServerError(w, "failed to load department", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, dept)
}

// HandleCreate serves POST /api/departments.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req departmentRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	req.Name = normalize.Name(req.Name)
	req.Code = normalize.Code(req.Code)
	if req.Name == "" {
		httpapi.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Code == "" {
		httpapi.WriteError(w, http.StatusBadRequest, "code is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	dept, err := h.Store.Create(ctx, models.Department{Name: req.Name, Code: req.Code})
	if err != nil {
		if errors.Is(err, departmentstore.ErrDuplicateDepartment) {
			httpapi.Conflict(w, err)
			return
		}
		h.errs.ServerError(w, "failed to create department", err)
		return
	}

	httpapi.WriteData(w, http.StatusCreated, dept)
}

// HandleUpdate serves PATCH /api/departments/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid department id")
		return
	}

	var req departmentRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Store.Update(ctx, id, models.Department{
		Name: normalize.Name(req.Name),
		Code: normalize.Code(req.Code),
	})
	if err != nil {
		switch {
		case errors.Is(err, departmentstore.ErrNotFound):
			httpapi.NotFound(w, "department not found")
		case errors.Is(err, departmentstore.ErrDuplicateDepartment):
			httpapi.Conflict(w, err)
		default:
			h.errs.ServerError(w, "failed to update department", err)
		}
		return
	}

	dept, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to reload department", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, dept)
}

// HandleStatus serves PATCH /api/departments/{id}/status.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid department id")
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
		if errors.Is(err, departmentstore.ErrNotFound) {
			httpapi.NotFound(w, "department not found")
			return
		}
		h.errs.ServerError(w, "failed to update department status", err)
		return
	}

	dept, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to reload department", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, dept)
}

// HandleDelete serves DELETE /api/departments/{id}. Departments that still
// have majors cannot be deleted.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid department id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	majors, err := h.Majors.CountByDepartment(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to check majors", err)
		return
	}
	if majors > 0 {
		httpapi.WriteError(w, http.StatusConflict, "department still has majors")
		return
	}

	deleted, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to delete department", err)
		return
	}
	if deleted == 0 {
		httpapi.NotFound(w, "department not found")
		return
	}

	httpapi.WriteNoContent(w)
}
