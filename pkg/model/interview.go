package model

type InterviewQuestion struct {
	No    int    `json:"no"`
	Label string `json:"label"`
}
