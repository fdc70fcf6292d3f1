package models

// User is a row of the users relation
type User struct {
	ID    int32  `json:"id" gorm:"primaryKey;autoIncrement"`
	Email string `json:"email" gorm:"type:varchar;not null"`
}

func (User) TableName() string { return "users" }

// NewUser is the insertable form of User; the id is generated by the database
type NewUser struct {
	Email string `json:"email" validate:"required,email"`
}
