package models

type RecommendationRequest struct {
	UserProfile      UserProfile     `json:"user_profile" validate:"required"`
	Events           []Event         `json:"events" validate:"dive"`
	Universities     UniversityTable `json:"universities,omitempty"`
	NRecommendations int             `json:"n_recommendations" validate:"min=1,max=100"`
}

// Recommendation is an event paired with the estimated probability that the
// requesting user will find it worthwhile.
type Recommendation struct {
	Event
	InterestProbability float64 `json:"interest_probability"`
}

type RecommendationResponse struct {
	UserID               int64            `json:"user_id"`
	RecommendationsCount int              `json:"recommendations_count"`
	Recommendations      []Recommendation `json:"recommendations"`
}

// FieldError is one structured validation failure: where it happened, what
// went wrong and the offending value.
type FieldError struct {
	Loc   []string    `json:"loc"`
	Msg   string      `json:"msg"`
	Type  string      `json:"type"`
	Input interface{} `json:"input,omitempty"`
}

type ValidationErrorResponse struct {
	Detail []FieldError `json:"detail"`
}
