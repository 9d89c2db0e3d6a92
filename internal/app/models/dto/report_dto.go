package dto

// HiresByQuarterResponse is one row of the hires-by-quarter report,
// counting employees hired per calendar quarter for a department and job.
type HiresByQuarterResponse struct {
	Department string `json:"department" example:"Engineering"`
	Job        string `json:"job" example:"Engineer"`
	Q1         int    `json:"q1" example:"3"`
	Q2         int    `json:"q2" example:"0"`
	Q3         int    `json:"q3" example:"1"`
	Q4         int    `json:"q4" example:"0"`
}

// DepartmentHiresResponse is one row of the above-mean hiring report
type DepartmentHiresResponse struct {
	ID         int64  `json:"id" example:"7"`
	Department string `json:"department" example:"Engineering"`
	Hired      int    `json:"hired" example:"45"`
}
