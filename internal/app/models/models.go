package models

// UploadModel selects which CSV layout an upload carries
type UploadModel string

const (
	UploadModelDepartments UploadModel = "departments"
	UploadModelJobs        UploadModel = "jobs"
	UploadModelEmployees   UploadModel = "employees"
)

// ParseUploadModel maps a path parameter to a known upload model.
func ParseUploadModel(s string) (UploadModel, bool) {
	switch UploadModel(s) {
	case UploadModelDepartments, UploadModelJobs, UploadModelEmployees:
		return UploadModel(s), true
	default:
		return "", false
	}
}

// String returns the wire name of the model.
func (m UploadModel) String() string {
	return string(m)
}

// ColumnCount returns the number of CSV columns the model's layout expects.
func (m UploadModel) ColumnCount() int {
	switch m {
	case UploadModelEmployees:
		return 5
	default:
		return 2
	}
}
