package models

// Comment represents a comment left by a user on a post
type Comment struct {
	ID     int32  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID int32  `json:"user_id" gorm:"not null;index"`
	PostID int32  `json:"post_id" gorm:"not null;index"`
	Title  string `json:"title" gorm:"type:varchar;not null"`
	Body   string `json:"body" gorm:"type:text;not null"`

	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Post *Post `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string { return "comments" }

// NewComment defines the insertable columns of a comment
type NewComment struct {
	UserID int32  `json:"user_id" validate:"required"`
	PostID int32  `json:"post_id" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Body   string `json:"body"`
}
