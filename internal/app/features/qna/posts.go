// internal/app/features/qna/posts.go
package qna

import (
	"context"
	"errors"
	"net/http"

	qnastore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/qna"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/htmlsanitize"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/paging"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/search"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// postRequest covers create and update payloads.
type postRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// postWithAnswers is the GET /{id} payload.
type postWithAnswers struct {
	models.QnaPost
	Answers []models.QnaAnswer `json:"answers"`
}

// HandleList serves GET /api/qna/posts.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)

	filter := bson.M{}
	if p.Keyword != "" {
		filter["title_ci"] = search.Prefix(p.Keyword)
	}

	total, err := h.Store.CountPosts(ctx, filter)
	if err != nil {
		h.errs.ServerError(w, "failed to count posts", err)
		return
	}

	posts, err := h.Store.FindPosts(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "post_id", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit()))
	if err != nil {
		h.errs.ServerError(w, "failed to list posts", err)
		return
	}

	httpapi.WriteList(w, posts, paging.NewMeta(p, total, "id,desc"))
}

// HandleGet serves GET /api/qna/posts/{id}, including the answer thread.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	post, err := h.Store.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, qnastore.ErrPostNotFound) {
			httpapi.NotFound(w, "post not found")
			return
		}
		h.errs.ServerError(w, "failed to load post", err)
		return
	}

	answers, err := h.Store.ListAnswers(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to load answers", err)
		return
	}
	if answers == nil {
		answers = []models.QnaAnswer{}
	}

	httpapi.WriteData(w, http.StatusOK, postWithAnswers{QnaPost: post, Answers: answers})
}

// HandleCreate serves POST /api/qna/posts.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	var req postRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	title := htmlsanitize.Text(req.Title)
	body := htmlsanitize.Sanitize(req.Body)
	if title == "" {
		httpapi.WriteError(w, http.StatusBadRequest, "title is required")
		return
	}
	if body == "" {
		httpapi.WriteError(w, http.StatusBadRequest, "body is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	post, err := h.Store.CreatePost(ctx, models.QnaPost{
		Title:      title,
		BodyHTML:   body,
		AuthorID:   u.AccountID,
		AuthorName: u.Name,
	})
	if err != nil {
		h.errs.ServerError(w, "failed to create post", err)
		return
	}

	httpapi.WriteData(w, http.StatusCreated, post)
}

// HandleUpdate serves PATCH /api/qna/posts/{id}. Author-or-admin only.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var req postRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	post, err := h.Store.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, qnastore.ErrPostNotFound) {
			httpapi.NotFound(w, "post not found")
			return
		}
		h.errs.ServerError(w, "failed to load post", err)
		return
	}
	if !canModify(u, post.AuthorID) {
		httpapi.WriteError(w, http.StatusForbidden, "only the author may edit this post")
		return
	}

	err = h.Store.UpdatePost(ctx, id, models.QnaPost{
		Title:    htmlsanitize.Text(req.Title),
		BodyHTML: htmlsanitize.Sanitize(req.Body),
	})
	if err != nil {
		h.errs.ServerError(w, "failed to update post", err)
		return
	}

	post, err = h.Store.GetPost(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to reload post", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, post)
}

// HandleDelete serves DELETE /api/qna/posts/{id}. Author-or-admin only.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	id, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	post, err := h.Store.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, qnastore.ErrPostNotFound) {
			httpapi.NotFound(w, "post not found")
			return
		}
		h.errs.ServerError(w, "failed to load post", err)
		return
	}
	if !canModify(u, post.AuthorID) {
		httpapi.WriteError(w, http.StatusForbidden, "only the author may delete this post")
		return
	}

	if _, err := h.Store.DeletePost(ctx, id); err != nil {
		h.errs.ServerError(w, "failed to delete post", err)
		return
	}

	httpapi.WriteNoContent(w)
}
