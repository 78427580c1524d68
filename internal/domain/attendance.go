package domain

import (
	"time"

	"gorm.io/datatypes"
)

type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "present"
	AttendanceStatusAbsent  AttendanceStatus = "absent"
	AttendanceStatusLate    AttendanceStatus = "late"
)

type Student struct {
	ID     string           `json:"id"`
	Name   string           `json:"name"`
	Status AttendanceStatus `json:"status"`
}

// AttendanceRecord stores one class roll call. The total/present/absent/late
// counters are derived from the student list and recalculated on every write.
type AttendanceRecord struct {
	ID            string                       `json:"id" gorm:"primaryKey"`
	ClassName     string                       `json:"class_name"`
	Date          string                       `json:"date" gorm:"index"`
	TotalStudents int                          `json:"total_students"`
	Present       int                          `json:"present"`
	Absent        int                          `json:"absent"`
	Late          int                          `json:"late"`
	Students      datatypes.JSONSlice[Student] `json:"students"`
	StaffID       string                       `json:"staff_id" gorm:"index"`
	CreatedAt     time.Time                    `json:"created_at"`
	UpdatedAt     time.Time                    `json:"updated_at"`
}

type AttendanceRecordUpdate struct {
	ClassName *string   `json:"class_name"`
	Date      *string   `json:"date"`
	Students  []Student `json:"students"`
}

type AttendanceStats struct {
	TotalRecords         int     `json:"total_records"`
	TotalStudentsTracked int     `json:"total_students_tracked"`
	TotalPresent         int     `json:"total_present"`
	TotalAbsent          int     `json:"total_absent"`
	TotalLate            int     `json:"total_late"`
	AttendanceRate       float64 `json:"attendance_rate"`
}
