package models

// Job represents a job position employees are hired for
type Job struct {
	ID    int64  `json:"id"`
	Title string `json:"job"`
}
