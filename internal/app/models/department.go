package models

// Department represents an organizational department employees are hired into
type Department struct {
	ID   int64  `json:"id"`
	Name string `json:"department"`
}
