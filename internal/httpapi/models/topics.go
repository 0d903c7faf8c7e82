package models

type Topic struct {
	Slug        string  `json:"slug" gorm:"primaryKey"`
	Description string  `json:"description" gorm:"not null"`
	ImgURL      *string `json:"img_url,omitempty" gorm:"column:img_url;size:1000"`
}

func (Topic) TableName() string {
	return "topics"
}
