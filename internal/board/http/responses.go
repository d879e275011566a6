package http

import (
	"github.com/driftlab/driftboard/internal/board/domain"
	"github.com/driftlab/driftboard/pkg/boardsdk"
)

func toSDKUser(u domain.User) *boardsdk.User {
	return &boardsdk.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toSDKPost(p domain.Post) *boardsdk.Post {
	return &boardsdk.Post{
		ID:          p.ID,
		Title:       p.Title,
		Text:        p.Text,
		TextSnippet: p.TextSnippet(),
		CreatorID:   p.CreatorID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toSDKFieldErrors(fieldErrs []domain.FieldError) []boardsdk.FieldError {
	out := make([]boardsdk.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, boardsdk.FieldError{Field: fe.Field, Message: fe.Message})
	}
	return out
}
