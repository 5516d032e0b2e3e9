package model

// Profile holds optional presentation data for a user. A user may have any
// number of profiles; readers surface only the first.
type Profile struct {
	ID             int64   `json:"id" gorm:"primaryKey;autoIncrement"`
	ProfilePicture *string `json:"profile_picture" gorm:"size:1024"`
	UserID         int64   `json:"user_id" gorm:"not null;index"`

	// Relations
	User *User `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT"`
}

// TableName pins the table name used by the store.
func (Profile) TableName() string {
	return "profile"
}

// All returns every model in creation order, users before profiles.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Profile{},
	}
}
