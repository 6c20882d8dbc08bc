package entity

import "time"

// Preference is a single persisted key/value setting.
type Preference struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// NewPreference creates a preference stamped with the current time.
func NewPreference(key, value string) *Preference {
	return &Preference{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
}
