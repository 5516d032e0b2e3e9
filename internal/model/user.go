package model

// User is a registered person. Rows are written once by registration and
// never updated afterwards.
type User struct {
	ID       int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	FullName string `json:"full_name" gorm:"column:full_name;size:255;not null"`
	Email    string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password string `json:"-" gorm:"size:255;not null"` // stored as submitted
	Phone    string `json:"phone" gorm:"size:64;not null;index"`
}

// TableName pins the table name used by the store.
func (User) TableName() string {
	return "users"
}
