package service

// Broadcaster pushes events to connected dashboards (avoids import cycle
// with the ws package).
type Broadcaster interface {
	BroadcastToSurvey(surveyID string, msgType string, payload interface{})
}
