package models

// Task is a daily learning task. LearningTime is in minutes and must be
// non-negative; Date is a calendar day in YYYY-MM-DD form. Category is
// optional.
type Task struct {
	ID           int64  `json:"id,omitempty"`
	Title        string `json:"title"`
	LearningTime int    `json:"learningTime"`
	Date         string `json:"date"`
	Category     string `json:"category,omitempty"`
}
