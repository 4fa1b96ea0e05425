package store

import "gorm.io/gorm"

// Login event outcomes.
const (
	OutcomeInitiated = "initiated"
	OutcomeSuccess   = "success"
	OutcomeFailure   = "failure"
	OutcomeError     = "error"
)

// LoginEvent records one login initiation or submission outcome.
type LoginEvent struct {
	gorm.Model

	EventID string `gorm:"uniqueIndex"`
	Method  string `gorm:"index"`
	Outcome string `gorm:"index"`
	Subject string `gorm:"index"`
	Detail  string
	Remote  string
}

func NewLoginEvent(eventID, method, outcome string) *LoginEvent {
	return &LoginEvent{
		EventID: eventID,
		Method:  method,
		Outcome: outcome,
	}
}
