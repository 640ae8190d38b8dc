package model

import "time"

type Draft struct {
	Summary    string   `json:"summary"`
	JobSummary string   `json:"jobSummary"`
	Bullets    []string `json:"bullets"`
	Skills     []string `json:"skills"`
}

type GenerateDraftRes struct {
	OK           bool   `json:"ok"`
	InputPreview string `json:"inputPreview"`
	Draft        Draft  `json:"draft"`
}

// SavedDraft is a client-local snapshot of a generated draft.
type SavedDraft struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Draft     Draft     `json:"draft"`
	CreatedAt time.Time `json:"createdAt"`
}
