package dto

import "github.com/yigit/studentregistry/internal/app/models"

// DepartmentResponse represents basic department information
type DepartmentResponse struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Факультет математики"`
	Code string `json:"code,omitempty" example:"FM"`
}

// ProgramGroupResponse represents a program group
type ProgramGroupResponse struct {
	ID   int64  `json:"id" example:"1"`
	Code string `json:"code" example:"1.2"`
	Name string `json:"name" example:"Математика и механика"`
}

// ProgramResponse represents a program together with its department
type ProgramResponse struct {
	ID             int64                 `json:"id" example:"10"`
	Code           string                `json:"code" example:"01.03.02"`
	OldCode        string                `json:"old_code,omitempty"`
	Name           string                `json:"name" example:"Прикладная математика"`
	ProgramName    string                `json:"program_name"`
	EducationLevel string                `json:"education_level" example:"undergraduate" enums:"undergraduate,graduate,postgraduate"`
	IsActive       bool                  `json:"is_active"`
	Department     *DepartmentResponse   `json:"department"`
	ProgramGroup   *ProgramGroupResponse `json:"program_group"`
}

// FromDepartment converts a models.Department
func FromDepartment(d *models.Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID, Name: d.Name, Code: d.Code}
}

// FromDepartments converts a department list, never returning nil
func FromDepartments(departments []*models.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, FromDepartment(d))
	}
	return out
}

// FromProgram converts a models.Program
func FromProgram(p *models.Program) ProgramResponse {
	resp := ProgramResponse{
		ID:             p.ID,
		Code:           p.Code,
		OldCode:        p.OldCode,
		Name:           p.Name,
		ProgramName:    p.ProgramName,
		EducationLevel: string(p.EducationLevel),
		IsActive:       p.IsActive,
	}
	if p.DepartmentID != nil {
		resp.Department = &DepartmentResponse{ID: *p.DepartmentID}
		if p.Department != nil {
			resp.Department.Name = p.Department.Name
			resp.Department.Code = p.Department.Code
		}
	}
	if p.GroupID != nil {
		resp.ProgramGroup = &ProgramGroupResponse{ID: *p.GroupID}
		if p.Group != nil {
			resp.ProgramGroup.Code = p.Group.Code
			resp.ProgramGroup.Name = p.Group.Name
		}
	}
	return resp
}

// FromPrograms converts a program list, never returning nil
func FromPrograms(programs []*models.Program) []ProgramResponse {
	out := make([]ProgramResponse, 0, len(programs))
	for _, p := range programs {
		out = append(out, FromProgram(p))
	}
	return out
}
