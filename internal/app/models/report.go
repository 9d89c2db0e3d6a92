package models

// QuarterHires is one row of the hires-by-quarter aggregation.
type QuarterHires struct {
	Department string `json:"department"`
	Job        string `json:"job"`
	Q1         int    `json:"q1"`
	Q2         int    `json:"q2"`
	Q3         int    `json:"q3"`
	Q4         int    `json:"q4"`
}

// DepartmentHires is one row of the per-department hiring count aggregation.
type DepartmentHires struct {
	ID         int64  `json:"id"`
	Department string `json:"department"`
	Hired      int    `json:"hired"`
}
