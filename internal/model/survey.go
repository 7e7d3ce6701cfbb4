package model

import "time"

// Theme is a top-level feedback category responses are assigned to, either
// declared at collection time or inferred by the conversation AI.
type Theme struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// Survey is the container for a feedback round: its themes plus the sessions
// and responses collected under it.
type Survey struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Themes      []Theme   `json:"themes" bson:"themes"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt"`
}
