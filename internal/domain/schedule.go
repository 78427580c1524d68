package domain

import "time"

type ScheduleStatus string

const (
	ScheduleStatusScheduled          ScheduleStatus = "scheduled"
	ScheduleStatusSubstitutionNeeded ScheduleStatus = "substitution_needed"
	ScheduleStatusCancelled          ScheduleStatus = "cancelled"
	ScheduleStatusCompleted          ScheduleStatus = "completed"
)

// Schedule is a single class slot on a staff member's weekly timetable.
// The JSON key "class" is kept for compatibility with the web client.
type Schedule struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	Time      string         `json:"time"`
	Subject   string         `json:"subject"`
	ClassName string         `json:"class" gorm:"column:class_name"`
	Room      string         `json:"room"`
	Day       string         `json:"day" gorm:"index"`
	Status    ScheduleStatus `json:"status"`
	StaffID   string         `json:"staff_id" gorm:"index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type ScheduleUpdate struct {
	Time      *string         `json:"time"`
	Subject   *string         `json:"subject"`
	ClassName *string         `json:"class"`
	Room      *string         `json:"room"`
	Day       *string         `json:"day"`
	Status    *ScheduleStatus `json:"status"`
}

// ScheduleStats summarizes a staff member's timetable by status.
type ScheduleStats struct {
	Total              int `json:"total"`
	Scheduled          int `json:"scheduled"`
	SubstitutionNeeded int `json:"substitution_needed"`
	Cancelled          int `json:"cancelled"`
	Completed          int `json:"completed"`
}
