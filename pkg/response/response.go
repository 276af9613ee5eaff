package response

import "github.com/gajurelkshitiz/bsrealtyllc-backend/internal/domain/user"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TokenResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    user.UserView `json:"user"`
}

type ProfileResponse struct {
	User user.UserView `json:"user"`
}

// ListResponse is the page envelope shared by every admin listing.
type ListResponse struct {
	Data       any   `json:"data"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
}
