package models

// Follower is a directed edge meaning FollowerID follows FolloweeID.
// The composite primary key makes each pair unique.
type Follower struct {
	FollowerID int32 `json:"follower_id" gorm:"primaryKey;autoIncrement:false"`
	FolloweeID int32 `json:"followee_id" gorm:"primaryKey;autoIncrement:false;index"`

	Follower *User `json:"-" gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE"`
	Followee *User `json:"-" gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE"`
}

func (Follower) TableName() string { return "followers" }
