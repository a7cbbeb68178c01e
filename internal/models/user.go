package models

type Role string

const (
	RoleInstructor Role = "instructor"
	RoleClient     Role = "client"
)

// Valid reports whether r is one of the recognized roles. Roles are a closed
// set; anything else is rejected at signup.
func (r Role) Valid() bool {
	return r == RoleInstructor || r == RoleClient
}

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null" json:"role"`
}
