package events

import "time"

const AttendanceImportedTopic = "hr.attendance.import.v1"

type AttendanceImportedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	MonthYear  string    `json:"month_year"`
	Successful int       `json:"successful"`
	Failed     int       `json:"failed"`
	OccurredAt time.Time `json:"occurred_at"`
}
