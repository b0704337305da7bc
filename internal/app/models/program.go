package models

// ProgramGroup clusters related programs under a broad subject code such as "1.2"
type ProgramGroup struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Program is a course of study a student can be admitted to
type Program struct {
	ID             int64          `json:"id"`
	Code           string         `json:"code"`
	OldCode        string         `json:"old_code,omitempty"`
	Name           string         `json:"name"`
	ProgramName    string         `json:"program_name"`
	GroupID        *int64         `json:"group_id,omitempty"`
	DepartmentID   *int64         `json:"department_id,omitempty"`
	EducationLevel EducationLevel `json:"education_level"`
	IsActive       bool           `json:"is_active"`

	// Relations (populated when needed)
	Group      *ProgramGroup `json:"program_group,omitempty"`
	Department *Department   `json:"department,omitempty"`
}
