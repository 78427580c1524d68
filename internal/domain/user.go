package domain

import "time"

type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleTeacher UserRole = "teacher"
	UserRoleStaff   UserRole = "staff"
)

// User is an authenticated account. StaffID links the account to the staff
// profile it manages; admins may have no profile.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Password  string    `json:"-"` // bcrypt hash
	Role      UserRole  `json:"role"`
	StaffID   string    `json:"staff_id,omitempty" gorm:"index"`
	Status    string    `json:"status"` // Active, Inactive, Blocked
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
