package queue

// Subjects for events published by the services. Fan-out consumers
// (the websocket hub, background workers) subscribe to these.
const (
	SubjectVoiceProcessed      = "staffhub.voice.processed"
	SubjectActivityLogged      = "staffhub.activity.logged"
	SubjectAnnouncementCreated = "staffhub.announcement.created"
	SubjectScheduleUpdated     = "staffhub.schedule.updated"
)

// MessageQueue defines the interface for a message queue adapter
type MessageQueue interface {
	Publish(subject string, data []byte) error
	Subscribe(subject string, handler func(data []byte) error) error
	Healthy() bool
	Close() error
}
