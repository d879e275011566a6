package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/driftlab/driftboard/internal/board/service"
	"github.com/driftlab/driftboard/internal/board/session"
	"github.com/driftlab/driftboard/internal/board/store"
	"github.com/driftlab/driftboard/pkg/boardsdk"
	"github.com/driftlab/driftboard/pkg/httpx"
	"github.com/driftlab/driftboard/pkg/slogx"
)

type AuthHandler struct {
	AuthService *service.AuthService
	Sessions    *session.Manager
}

// HandleRegister godoc
//
//	@Summary		Register Endpoint
//	@Description	Create a new account and log it in. Validation and conflict
//	@Description	failures come back as field errors with HTTP 200.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		boardsdk.RegisterRequest	true	"email, username, password"
//	@Success		200		{object}	boardsdk.UserResponse		"user or errors"
//	@Failure		400		{object}	boardsdk.ErrorResponse		"error"
//	@Failure		500		{object}	boardsdk.ErrorResponse		"error"
//	@Router			/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req boardsdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{Error: "invalid request body"})
		return
	}

	user, fieldErrs, err := h.AuthService.Register(ctx, req.Email, req.Username, req.Password)
	if err != nil {
		log.Error("failed to register user", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{Error: "internal server error"})
		return
	}
	if len(fieldErrs) > 0 {
		httpx.WriteJSON(w, http.StatusOK, boardsdk.UserResponse{Errors: toSDKFieldErrors(fieldErrs)})
		return
	}

	// A created account that failed to log in is a UX gap, not a failure.
	if err := h.Sessions.Establish(w, r, user.ID); err != nil {
		log.Error("failed to establish session after register", "user_id", user.ID, "err", err)
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.UserResponse{User: toSDKUser(user)})
}

// HandleLogin godoc
//
//	@Summary		Login Endpoint
//	@Description	Authenticate by username or email plus password. Failures
//	@Description	come back as field errors with HTTP 200.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		boardsdk.LoginRequest	true	"usernameOrEmail, password"
//	@Success		200		{object}	boardsdk.UserResponse	"user or errors"
//	@Failure		400		{object}	boardsdk.ErrorResponse	"error"
//	@Failure		500		{object}	boardsdk.ErrorResponse	"error"
//	@Router			/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req boardsdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{Error: "invalid request body"})
		return
	}

	user, fieldErrs, err := h.AuthService.Login(ctx, req.UsernameOrEmail, req.Password)
	if err != nil {
		log.Error("failed to log in user", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{Error: "internal server error"})
		return
	}
	if len(fieldErrs) > 0 {
		httpx.WriteJSON(w, http.StatusOK, boardsdk.UserResponse{Errors: toSDKFieldErrors(fieldErrs)})
		return
	}

	if err := h.Sessions.Establish(w, r, user.ID); err != nil {
		log.Error("failed to establish session after login", "user_id", user.ID, "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{Error: "internal server error"})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.UserResponse{User: toSDKUser(user)})
}

// HandleLogout godoc
//
//	@Summary		Logout Endpoint
//	@Description	Destroy the current session. The cookie is cleared even when
//	@Description	the server-side session record cannot be removed; in that
//	@Description	case success is false.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	boardsdk.SuccessResponse	"success"
//	@Router			/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	success := true
	if err := h.Sessions.Destroy(w, r); err != nil {
		log.Error("failed to destroy session", "err", err)
		success = false
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.SuccessResponse{Success: success})
}

// HandleMe godoc
//
//	@Summary		Current User Endpoint
//	@Description	Return the logged-in user, or user null when no session is
//	@Description	bound or the account no longer exists.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	boardsdk.UserResponse	"user (possibly null)"
//	@Failure		500	{object}	boardsdk.ErrorResponse	"error"
//	@Router			/v1/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		httpx.WriteJSON(w, http.StatusOK, boardsdk.UserResponse{})
		return
	}

	user, err := h.AuthService.CurrentUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Account deleted since the session was issued.
			httpx.WriteJSON(w, http.StatusOK, boardsdk.UserResponse{})
			return
		}
		log.Error("failed to load current user", "user_id", userID, "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{Error: "internal server error"})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.UserResponse{User: toSDKUser(user)})
}
