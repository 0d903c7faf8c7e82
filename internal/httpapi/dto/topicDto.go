package dto

import "newshub/internal/httpapi/models"

// TopicResponse for returning topic information
type TopicResponse struct {
	Slug        string  `json:"slug"`
	Description string  `json:"description"`
	ImgURL      *string `json:"img_url,omitempty"`
}

func TopicFromModel(t models.Topic) TopicResponse {
	return TopicResponse{
		Slug:        t.Slug,
		Description: t.Description,
		ImgURL:      t.ImgURL,
	}
}
