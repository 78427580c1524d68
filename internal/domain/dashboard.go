package domain

import "time"

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Task struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Task      string    `json:"task"`
	Priority  Priority  `json:"priority"`
	DueDate   string    `json:"due_date" gorm:"index"`
	StaffID   string    `json:"staff_id" gorm:"index"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// Activity is one line of the audit-style feed shown on the dashboard
// ("Created voice transcription (42s)", "Processed voice to template ...").
type Activity struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Activity  string    `json:"activity"`
	StaffID   string    `json:"staff_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
}

type Announcement struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// DashboardData is the aggregate view for a staff member's landing page.
type DashboardData struct {
	TodaySchedule    []Schedule     `json:"today_schedule"`
	UpcomingTasks    []Task         `json:"upcoming_tasks"`
	RecentActivities []Activity     `json:"recent_activities"`
	Announcements    []Announcement `json:"announcements"`
	Stats            map[string]int `json:"stats"`
}
