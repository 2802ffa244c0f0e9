// internal/app/features/faq/faq.go
package faq

import (
	"context"
	"errors"
	"net/http"
	"strings"

	faqstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/faqs"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/htmlsanitize"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/paging"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/search"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// faqRequest covers both create and update payloads.
type faqRequest struct {
	Category string `json:"category"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// HandleList serves GET /api/faqs with an optional category filter.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)

	filter := bson.M{}
	if category := strings.TrimSpace(query.Get(r, "category")); category != "" {
		filter["category"] = category
	}
	if p.Keyword != "" {
		filter["question_ci"] = search.Prefix(p.Keyword)
	}

	total, err := h.Store.Count(ctx, filter)
	if err != nil {
		h.errs.ServerError(w, "failed to count faq items", err)
		return
	}

	items, err := h.Store.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "faq_id", Value: 1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit()))
	if err != nil {
		h.errs.ServerError(w, "failed to list faq items", err)
		return
	}

	httpapi.WriteList(w, items, paging.NewMeta(p, total, "id,asc"))
}

// HandleGet serves GET /api/faqs/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid faq id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	item, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, faqstore.ErrNotFound) {
			httpapi.NotFound(w, "faq item not found")
			return
		}
		h.errs.ServerError(w, "failed to load faq item", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, item)
}

// HandleCreate serves POST /api/faqs. The answer may carry rich formatting,
// sanitized before storage.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req faqRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	req.Question = htmlsanitize.Text(req.Question)
	if req.Question == "" {
		httpapi.WriteError(w, http.StatusBadRequest, "question is required")
		return
	}
	answer := htmlsanitize.Sanitize(req.Answer)
	if answer == "" {
		httpapi.WriteError(w, http.StatusBadRequest, "answer is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	item, err := h.Store.Create(ctx, models.FaqItem{
		Category:   htmlsanitize.Text(req.Category),
		Question:   req.Question,
		AnswerHTML: answer,
	})
	if err != nil {
		h.errs.ServerError(w, "failed to create faq item", err)
		return
	}

	httpapi.WriteData(w, http.StatusCreated, item)
}

// HandleUpdate serves PATCH /api/faqs/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid faq id")
		return
	}

	var req faqRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Store.Update(ctx, id, models.FaqItem{
		Category:   htmlsanitize.Text(req.Category),
		Question:   htmlsanitize.Text(req.Question),
		AnswerHTML: htmlsanitize.Sanitize(req.Answer),
	})
	if err != nil {
		if errors.Is(err, faqstore.ErrNotFound) {
			httpapi.NotFound(w, "faq item not found")
			return
		}
		h.errs.ServerError(w, "failed to update faq item", err)
		return
	}

	item, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to reload faq item", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, item)
}

// HandleDelete serves DELETE /api/faqs/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid faq id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to delete faq item", err)
		return
	}
	if deleted == 0 {
		httpapi.NotFound(w, "faq item not found")
		return
	}

	httpapi.WriteNoContent(w)
}
