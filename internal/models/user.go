package models

// User is one of the two fixed participants. Users are reference data:
// they are ensured at startup and never deleted.
type User struct {
	Base
	Role Role   `gorm:"type:varchar(16);uniqueIndex;not null" json:"role"`
	Name string `gorm:"not null" json:"name"`
}
