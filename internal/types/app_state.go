package types

import "time"

// AppState is the persisted dashboard state shown in the header.
type AppState struct {
	Intention     string    `json:"intention"`
	IntentionDate string    `json:"intention_date,omitempty"`
	Prayed        bool      `json:"prayed"`
	PrayedAt      time.Time `json:"prayed_at,omitempty"`
}
