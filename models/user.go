package models

import "time"

const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// ValidRole reports whether role is one of the two recognized roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	FullName  *string   `json:"full_name" gorm:"size:100"`
	Email     *string   `json:"email" gorm:"size:100;uniqueIndex"`
	Password  string    `json:"-" gorm:"size:255"`
	Role      string    `json:"role" gorm:"size:20;default:'User'"`
	CreatedAt time.Time `json:"created_at"`

	// The constraint tags live here, on the has-many side, because gorm
	// resolves duplicate relation declarations in favor of this side.
	// Deleting a user cascades their articles but is blocked while any
	// bookmark or read-history row still references them.
	Articles      []Article     `json:"-" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	Bookmarks     []Bookmark    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
	ReadHistories []ReadHistory `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}
