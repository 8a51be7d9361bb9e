package models

// Subject is a study subject owning a collection of files.
type Subject struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
