package http

import (
	"encoding/json"
	"net/http"

	"github.com/driftlab/driftboard/internal/board/service"
	"github.com/driftlab/driftboard/internal/board/session"
	"github.com/driftlab/driftboard/pkg/boardsdk"
	"github.com/driftlab/driftboard/pkg/httpx"
	"github.com/driftlab/driftboard/pkg/slogx"
)

type PasswordHandler struct {
	PasswordResetService *service.PasswordResetService
	Sessions             *session.Manager
}

// HandleForgot godoc
//
//	@Summary		Forgot Password Endpoint
//	@Description	Request a password-reset email. Always reports success so the
//	@Description	response does not reveal whether the address is registered.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		boardsdk.ForgotPasswordRequest	true	"email"
//	@Success		200		{object}	boardsdk.SuccessResponse		"success"
//	@Failure		400		{object}	boardsdk.ErrorResponse			"error"
//	@Failure		500		{object}	boardsdk.ErrorResponse			"error"
//	@Router			/v1/auth/forgot-password [post].
func (h *PasswordHandler) HandleForgot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req boardsdk.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{Error: "invalid request body"})
		return
	}

	if err := h.PasswordResetService.Request(ctx, req.Email); err != nil {
		log.Error("failed to issue password reset", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{Error: "internal server error"})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.SuccessResponse{Success: true})
}

// HandleChange godoc
//
//	@Summary		Change Password Endpoint
//	@Description	Exchange an emailed reset token for a new password and log
//	@Description	the user in. Token and validation failures come back as
//	@Description	field errors with HTTP 200.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		boardsdk.ChangePasswordRequest	true	"token, newPassword"
//	@Success		200		{object}	boardsdk.UserResponse			"user or errors"
//	@Failure		400		{object}	boardsdk.ErrorResponse			"error"
//	@Failure		500		{object}	boardsdk.ErrorResponse			"error"
//	@Router			/v1/auth/change-password [post].
func (h *PasswordHandler) HandleChange(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req boardsdk.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, boardsdk.ErrorResponse{Error: "invalid request body"})
		return
	}

	user, fieldErrs, err := h.PasswordResetService.Complete(ctx, req.Token, req.NewPassword)
	if err != nil {
		log.Error("failed to change password", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, boardsdk.ErrorResponse{Error: "internal server error"})
		return
	}
	if len(fieldErrs) > 0 {
		httpx.WriteJSON(w, http.StatusOK, boardsdk.UserResponse{Errors: toSDKFieldErrors(fieldErrs)})
		return
	}

	// Changing the password logs the user in.
	if err := h.Sessions.Establish(w, r, user.ID); err != nil {
		log.Error("failed to establish session after password change", "user_id", user.ID, "err", err)
	}

	httpx.WriteJSON(w, http.StatusOK, boardsdk.UserResponse{User: toSDKUser(user)})
}
