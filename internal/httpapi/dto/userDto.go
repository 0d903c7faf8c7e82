package dto

import "newshub/internal/httpapi/models"

// UserResponse for returning user information
type UserResponse struct {
	Username  string  `json:"username"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

func UserFromModel(u models.User) UserResponse {
	return UserResponse{
		Username:  u.Username,
		Name:      u.Name,
		AvatarURL: u.AvatarURL,
	}
}
