package model

import "time"

type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
	SessionAbandoned SessionStatus = "abandoned"
)

// Session is one AI-guided conversation with an employee. EmployeeRef is nil
// when the session is fully anonymous. The analytics pipeline never mutates
// sessions; EndedAt/FinalMood/Status are appended once on completion.
type Session struct {
	ID                 string        `json:"id" bson:"_id,omitempty"`
	SurveyID           string        `json:"surveyId" bson:"surveyId"`
	EmployeeRef        *string       `json:"employeeRef,omitempty" bson:"employeeRef,omitempty"`
	InitialMood        *float64      `json:"initialMood,omitempty" bson:"initialMood,omitempty"`
	FinalMood          *float64      `json:"finalMood,omitempty" bson:"finalMood,omitempty"`
	StartedAt          time.Time     `json:"startedAt" bson:"startedAt"`
	EndedAt            *time.Time    `json:"endedAt,omitempty" bson:"endedAt,omitempty"`
	Status             SessionStatus `json:"status" bson:"status"`
	AnonymizationLevel string        `json:"anonymizationLevel" bson:"anonymizationLevel"`
	Group              *string       `json:"group,omitempty" bson:"group,omitempty"`
}

// GroupName returns the department (or other grouping) for culture profiling,
// mapping missing groups to "Unknown".
func (s *Session) GroupName() string {
	if s.Group == nil || *s.Group == "" {
		return "Unknown"
	}
	return *s.Group
}
