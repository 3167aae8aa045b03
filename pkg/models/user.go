package models

// Attendance is a user's historical relationship to one event. Rating is
// required even when the event was not attended; non-attendance ratings carry
// no positive signal for the aggregators.
type Attendance struct {
	EventID  int64 `json:"event_id" validate:"required"`
	Attended bool  `json:"attended"`
	Rating   int   `json:"rating" validate:"required,min=1,max=5"`
}

// UserProfile is owned by the request and immutable within one scoring call.
type UserProfile struct {
	UserID            int64        `json:"user_id" validate:"required"`
	InterestingSkills []string     `json:"interesting_skills" validate:"dive,skill"`
	EducationPlace    string       `json:"education_place,omitempty"`
	VisitedEvents     []Attendance `json:"visited_events" validate:"dive"`
}

// Visited reports whether the user has any attendance record for the event,
// regardless of the attended flag. Such events are ineligible for ranking.
func (p *UserProfile) Visited(eventID int64) bool {
	for _, att := range p.VisitedEvents {
		if att.EventID == eventID {
			return true
		}
	}
	return false
}
