package models

import (
	"encoding/json"
	"time"
)

// LocationOnline is the sentinel location value for events without a venue.
const LocationOnline = "Онлайн"

type Event struct {
	EventID           int64     `json:"event_id" validate:"required"`
	Title             string    `json:"title" validate:"required"`
	Organizer         string    `json:"organizer" validate:"required"`
	RecommendedSkills []string  `json:"recommended_skills" validate:"dive,skill"`
	DateTime          time.Time `json:"datetime" validate:"required"`
	DurationMinutes   int       `json:"duration_minutes" validate:"required,min=1"`
	Location          string    `json:"location" validate:"required"`
	MaxParticipants   int       `json:"max_participants" validate:"required,min=1"`
	Category          string    `json:"category" validate:"required"`
	Level             string    `json:"level,omitempty"`
}

// IsOnline reports whether the event carries the online location sentinel.
func (e *Event) IsOnline() bool {
	return e.Location == LocationOnline
}

// University is one entry of the university reference table: the city the
// institution is located in plus its specialization tags.
type University struct {
	City            string   `json:"city,omitempty"`
	Specializations []string `json:"specialization,omitempty"`
}

// UnmarshalJSON accepts both the object form {"city": ..., "specialization": [...]}
// and the legacy bare-array form where the value is just the specialization list.
func (u *University) UnmarshalJSON(data []byte) error {
	var specs []string
	if err := json.Unmarshal(data, &specs); err == nil {
		u.Specializations = specs
		return nil
	}

	type universityAlias University
	var alias universityAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*u = University(alias)
	return nil
}

// UniversityTable maps an institution name to its reference entry.
type UniversityTable map[string]University
