package models

// Post represents a blog post owned by a single user
type Post struct {
	ID     int32  `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID int32  `json:"user_id" gorm:"not null;index"`
	Title  string `json:"title" gorm:"type:varchar;not null"`
	Body   string `json:"body" gorm:"type:text;not null"`

	// Only used to declare the foreign key
	User *User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (Post) TableName() string { return "posts" }

// NewPost defines the insertable columns of a post
type NewPost struct {
	UserID int32  `json:"user_id" validate:"required"`
	Title  string `json:"title" validate:"required"`
	Body   string `json:"body"`
}
