package models

type User struct {
	Username  string  `json:"username" gorm:"primaryKey"`
	Name      string  `json:"name" gorm:"not null"`
	AvatarURL *string `json:"avatar_url,omitempty" gorm:"column:avatar_url;size:1000"`
}

func (User) TableName() string {
	return "users"
}
