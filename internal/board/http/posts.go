package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/driftlab/driftboard/internal/board/service"
	"github.com/driftlab/driftboard/internal/board/store"
	"github.com/driftlab/driftboard/pkg/boardsdk"
	"github.com/driftlab/driftboard/pkg/httpx"
	"github.com/driftlab/driftboard/pkg/slogx"
)

// defaultPageSize applies when the limit query parameter is absent.
const defaultPageSize = 50

type PostsHandler struct {
	PostService *service.PostService
}

// HandleList godoc
//
//	@Summary		List Posts Endpoint
//	@Description	Return one page of posts newest-first. The limit is capped at
//	@Description	50; cursor is the createdAt of the last seen post in
//	@Description	milliseconds since epoch and restricts results to strictly
//	@Description	older posts.
//	@Tags			Posts
//	@Produce		json
//	@Param			limit	query		int						false	"page size, capped at 50"
//	@Param			cursor	query		string					false	"createdAt of the last seen post, ms since epoch"
//	@Success		200		{object}	boardsdk.PostsResponse	"posts, hasMore"
//	@Failure		400		{object}	boardsdk.ErrorResponse	"error"
//	@Failure		500		{object}	boardsdk.ErrorResponse	"error"
//	@Router			/v1/posts [get].
func (h *PostsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	limit := defaultPageSize
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{Error: "invalid limit"})
			return
		}
		limit = parsed
	}

	var before time.Time
	if raw := r.URL.Query().Get("cursor"); raw != "" {
		millis, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{Error: "invalid cursor"})
			return
		}
		before = time.UnixMilli(millis)
	}

	posts, hasMore, err := h.PostService.List(ctx, limit, before)
	if err != nil {
		log.Error("failed to list posts", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{Error: "internal server error"})
		return
	}

	out := make([]boardsdk.Post, 0, len(posts))
	for _, p := range posts {
		out = append(out, *toSDKPost(p))
	}
	httpx.WriteJSON(w, http.StatusOK, boardsdk.PostsResponse{Posts: out, HasMore: hasMore})
}

// HandleGet godoc
//
//	@Summary		Get Post Endpoint
//	@Description	Return a single post by id, or post null when absent.
//	@Tags			Posts
//	@Produce		json
//	@Param			id	path		int						true	"post id"
//	@Success		200	{object}	boardsdk.PostResponse	"post (possibly null)"
//	@Failure		400	{object}	boardsdk.ErrorResponse	"error"
//	@Failure		500	{object}	boardsdk.ErrorResponse	"error"
//	@Router			/v1/posts/{id} [get].
func (h *PostsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{Error: "invalid post id"})
		return
	}

	post, err := h.PostService.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httpx.WriteJSON(w, http.StatusOK, boardsdk.PostResponse{})
			return
		}
		log.Error("failed to load post", "post_id", id, "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{Error: "internal server error"})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.PostResponse{Post: toSDKPost(post)})
}

// HandleCreate godoc
//
//	@Summary		Create Post Endpoint
//	@Description	Create a post owned by the logged-in user.
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Param			body	body		boardsdk.CreatePostRequest	true	"title, text"
//	@Success		200		{object}	boardsdk.PostResponse		"post"
//	@Failure		400		{object}	boardsdk.ErrorResponse		"error"
//	@Failure		401		{object}	boardsdk.ErrorResponse		"error"
//	@Failure		500		{object}	boardsdk.ErrorResponse		"error"
//	@Router			/v1/posts [post].
func (h *PostsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, boardsdk.ErrorResponse{Error: "not authenticated"})
		return
	}

	var req boardsdk.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{Error: "invalid request body"})
		return
	}

	post, err := h.PostService.Create(ctx, userID, req.Title, req.Text)
	if err != nil {
		log.Error("failed to create post", "user_id", userID, "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{Error: "internal server error"})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.PostResponse{Post: toSDKPost(post)})
}

// HandleUpdate godoc
//
//	@Summary		Update Post Endpoint
//	@Description	Change the title of a post the logged-in user owns. Returns
//	@Description	post null when the post does not exist.
//	@Tags			Posts
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"post id"
//	@Param			body	body		boardsdk.UpdatePostRequest	true	"title"
//	@Success		200		{object}	boardsdk.PostResponse		"post (possibly null)"
//	@Failure		400		{object}	boardsdk.ErrorResponse		"error"
//	@Failure		401		{object}	boardsdk.ErrorResponse		"error"
//	@Failure		403		{object}	boardsdk.ErrorResponse		"error"
//	@Failure		500		{object}	boardsdk.ErrorResponse		"error"
//	@Router			/v1/posts/{id} [patch].
func (h *PostsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, boardsdk.ErrorResponse{Error: "not authenticated"})
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{Error: "invalid post id"})
		return
	}

	var req boardsdk.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{Error: "invalid request body"})
		return
	}

	post, err := h.PostService.UpdateTitle(ctx, userID, id, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			httpx.WriteJSON(w, http.StatusOK, boardsdk.PostResponse{})
		case errors.Is(err, service.ErrNotPostOwner):
			httpx.WriteJSON(w, http.StatusForbidden, boardsdk.ErrorResponse{Error: "not post owner"})
		default:
			log.Error("failed to update post", "post_id", id, "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{Error: "internal server error"})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.PostResponse{Post: toSDKPost(post)})
}

// HandleDelete godoc
//
//	@Summary		Delete Post Endpoint
//	@Description	Delete a post the logged-in user owns. Deleting an absent
//	@Description	post still succeeds.
//	@Tags			Posts
//	@Produce		json
//	@Param			id	path		int							true	"post id"
//	@Success		200	{object}	boardsdk.SuccessResponse	"success"
//	@Failure		400	{object}	boardsdk.ErrorResponse		"error"
//	@Failure		401	{object}	boardsdk.ErrorResponse		"error"
//	@Failure		403	{object}	boardsdk.ErrorResponse		"error"
//	@Failure		500	{object}	boardsdk.ErrorResponse		"error"
//	@Router			/v1/posts/{id} [delete].
func (h *PostsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusUnauthorized, boardsdk.ErrorResponse{Error: "not authenticated"})
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{Error: "invalid post id"})
		return
	}

	if err := h.PostService.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, service.ErrNotPostOwner) {
			httpx.WriteJSON(w, http.StatusForbidden, boardsdk.ErrorResponse{Error: "not post owner"})
			return
		}
		log.Error("failed to delete post", "post_id", id, "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{Error: "internal server error"})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.SuccessResponse{Success: true})
}
