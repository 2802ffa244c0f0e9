// internal/app/features/resources/manage.go
package resources

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	resourcestore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/resources"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/htmlsanitize"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/paging"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/search"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// createRequest is the JSON part named "request" in the multipart body.
type createRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// HandleList serves GET /api/resources.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)

	filter := bson.M{}
	if category := strings.TrimSpace(query.Get(r, "category")); category != "" {
		filter["category"] = category
	}
	if p.Keyword != "" {
		filter["title_ci"] = search.Prefix(p.Keyword)
	}

	total, err := h.Store.Count(ctx, filter)
	if err != nil {
		h.errs.ServerError(w, "failed to count resources", err)
		return
	}

	list, err := h.Store.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "resource_id", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit()))
	if err != nil {
		h.errs.ServerError(w, "failed to list resources", err)
		return
	}

	for i := range list {
		list[i] = withURLs(h.Files, list[i])
	}
	httpapi.WriteList(w, list, paging.NewMeta(p, total, "id,desc"))
}

// HandleGet serves GET /api/resources/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid resource id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resourcestore.ErrNotFound) {
			httpapi.NotFound(w, "resource not found")
			return
		}
		h.errs.ServerError(w, "failed to load resource", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, withURLs(h.Files, res))
}

// HandleCreate serves POST /api/resources. The body is multipart/form-data
// with a JSON part named "request" and zero or more "files" parts.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.errs.BadRequest(w, "invalid multipart body", err)
		return
	}

	var req createRequest
	if err := json.Unmarshal([]byte(r.FormValue("request")), &req); err != nil {
		h.errs.BadRequest(w, "invalid request part", err)
		return
	}
	req.Title = htmlsanitize.Text(req.Title)
	if req.Title == "" {
		httpapi.WriteError(w, http.StatusBadRequest, "title is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	var stored []models.ResourceFile
	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File["files"] {
			f, err := storeUpload(ctx, h.Files, fh)
			if err != nil {
				h.cleanupFiles(stored)
				h.errs.ServerError(w, "failed to store upload", err)
				return
			}
			stored = append(stored, f)
		}
	}

	res, err := h.Store.Create(ctx, models.Resource{
		Title:        req.Title,
		Description:  htmlsanitize.Text(req.Description),
		Category:     htmlsanitize.Text(req.Category),
		Files:        stored,
		UploaderID:   u.AccountID,
		UploaderName: u.Name,
	})
	if err != nil {
		h.cleanupFiles(stored)
		h.errs.ServerError(w, "failed to create resource", err)
		return
	}

	httpapi.WriteData(w, http.StatusCreated, withURLs(h.Files, res))
}

// HandleUpdate serves PATCH /api/resources/{id} (metadata only; files are
// managed through create/delete).
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid resource id")
		return
	}

	var req createRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Store.Update(ctx, id, models.Resource{
		Title:       htmlsanitize.Text(req.Title),
		Description: htmlsanitize.Text(req.Description),
		Category:    htmlsanitize.Text(req.Category),
	})
	if err != nil {
		if errors.Is(err, resourcestore.ErrNotFound) {
			httpapi.NotFound(w, "resource not found")
			return
		}
		h.errs.ServerError(w, "failed to update resource", err)
		return
	}

	res, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to reload resource", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, withURLs(h.Files, res))
}

// HandleDelete serves DELETE /api/resources/{id}, removing stored files too.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid resource id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	res, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resourcestore.ErrNotFound) {
			httpapi.NotFound(w, "resource not found")
			return
		}
		h.errs.ServerError(w, "failed to load resource", err)
		return
	}

	if _, err := h.Store.Delete(ctx, id); err != nil {
		h.errs.ServerError(w, "failed to delete resource", err)
		return
	}
	h.cleanupFiles(res.Files)

	httpapi.WriteNoContent(w)
}

// HandleDownload serves GET /api/resources/{id}/files/{fileName}, streaming
// the stored attachment.
func (h *Handler) HandleDownload(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid resource id")
		return
	}
	fileName := strings.TrimSpace(chi.URLParam(r, "fileName"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	res, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resourcestore.ErrNotFound) {
			httpapi.NotFound(w, "resource not found")
			return
		}
		h.errs.ServerError(w, "failed to load resource", err)
		return
	}

	for _, f := range res.Files {
		if f.FileName != fileName {
			continue
		}
		src, err := h.Files.Open(f.Path)
		if err != nil {
			h.errs.ServerError(w, "failed to open file", err)
			return
		}
		defer src.Close()

		if f.ContentType != "" {
			w.Header().Set("Content-Type", f.ContentType)
		}
		w.Header().Set("Content-Disposition", `attachment; filename="`+f.FileName+`"`)
		if _, err := io.Copy(w, src); err != nil {
			h.Log.Warn("stream resource file", zap.String("path", f.Path), zap.Error(err))
		}
		return
	}

	httpapi.NotFound(w, "file not found")
}

// cleanupFiles best-effort deletes stored attachments after a failure or
// resource removal.
func (h *Handler) cleanupFiles(files []models.ResourceFile) {
	for _, f := range files {
		if err := h.Files.Delete(f.Path); err != nil {
			h.Log.Warn("delete stored file", zap.String("path", f.Path), zap.Error(err))
		}
	}
}
