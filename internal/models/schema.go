package models

// All lists every relation in dependency order, ready for AutoMigrate
func All() []interface{} {
	return []interface{}{
		&User{},
		&Post{},
		&Comment{},
		&Follower{},
	}
}
