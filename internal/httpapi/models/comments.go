package models

import "time"

type Comment struct {
	CommentID int64     `json:"comment_id" gorm:"primaryKey;autoIncrement"`
	ArticleID int64     `json:"article_id" gorm:"not null;index"`
	Body      string    `json:"body" gorm:"type:text;not null"`
	Votes     int       `json:"votes" gorm:"default:0"`
	Author    string    `json:"author" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Associations
	Article Article `json:"-" gorm:"foreignKey:ArticleID;references:ArticleID"`
	User    User    `json:"-" gorm:"foreignKey:Author;references:Username"`
}

func (Comment) TableName() string {
	return "comments"
}
