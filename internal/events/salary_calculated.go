package events

import "time"

const SalaryCalculatedTopic = "hr.salary.calculation.v1"

type SalaryCalculatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	MonthYear  string    `json:"month_year"`
	Successful int       `json:"successful"`
	Failed     int       `json:"failed"`
	OccurredAt time.Time `json:"occurred_at"`
}
