package domain

import (
	"time"

	"gorm.io/datatypes"
)

type StaffProfile struct {
	ID         string                       `json:"id" gorm:"primaryKey"`
	Name       string                       `json:"name"`
	Role       string                       `json:"role"`
	EmployeeID string                       `json:"employee_id" gorm:"index"`
	Department string                       `json:"department"`
	Subjects   datatypes.JSONSlice[string]  `json:"subjects"`
	Email      string                       `json:"email" gorm:"uniqueIndex"`
	Phone      string                       `json:"phone"`
	JoinDate   string                       `json:"join_date"`
	Avatar     string                       `json:"avatar,omitempty"`
	CreatedAt  time.Time                    `json:"created_at"`
	UpdatedAt  time.Time                    `json:"updated_at"`
}

// StaffProfileUpdate carries a partial update; nil fields are left untouched.
type StaffProfileUpdate struct {
	Name       *string  `json:"name"`
	Role       *string  `json:"role"`
	EmployeeID *string  `json:"employee_id"`
	Department *string  `json:"department"`
	Subjects   []string `json:"subjects"`
	Email      *string  `json:"email"`
	Phone      *string  `json:"phone"`
	JoinDate   *string  `json:"join_date"`
	Avatar     *string  `json:"avatar"`
}
