package models

import "time"

type Article struct {
	ArticleID     int64     `json:"article_id" gorm:"primaryKey;autoIncrement"`
	Title         string    `json:"title" gorm:"not null"`
	Topic         string    `json:"topic" gorm:"not null"`
	Author        string    `json:"author" gorm:"not null"`
	Body          string    `json:"body" gorm:"type:text;not null"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	Votes         int       `json:"votes" gorm:"default:0"`
	ArticleImgURL *string   `json:"article_img_url,omitempty" gorm:"column:article_img_url;size:1000"`

	// CommentCount is an aggregate over the comments table, selected by the
	// article queries and never written back.
	CommentCount int `json:"comment_count" gorm:"->;-:migration"`
}

func (Article) TableName() string {
	return "articles"
}
