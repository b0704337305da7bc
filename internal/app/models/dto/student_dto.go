package dto

import (
	"github.com/yigit/studentregistry/internal/app/models"
	"github.com/yigit/studentregistry/internal/pkg/helpers"
)

// RefResponse is the nested {id, name} shape used for related departments and programs
type RefResponse struct {
	ID   int64  `json:"id" example:"3"`
	Name string `json:"name" example:"Прикладная математика"`
	Code string `json:"code,omitempty" example:"01.03.02"`
}

// TransferResponse is one transfer history entry
type TransferResponse struct {
	Date          string `json:"date" example:"2022-09-01"`
	FromProgramID *int64 `json:"from_program_id"`
	ToProgramID   *int64 `json:"to_program_id"`
}

// StudentResponse is the public representation of a student
type StudentResponse struct {
	ID          int64  `json:"id" example:"1"`
	LastName    string `json:"last_name" example:"Иванов"`
	FirstName   string `json:"first_name" example:"Иван"`
	MiddleName  string `json:"middle_name" example:"Иванович"`
	Citizenship string `json:"citizenship" example:"РФ"`
	Course      *int   `json:"course"`
	Status      string `json:"status" example:"active" enums:"active,academic,graduated,expelled"`

	CurrentDepartment *RefResponse `json:"current_department"`
	CurrentProgram    *RefResponse `json:"current_program"`
	InitialDepartment *RefResponse `json:"initial_department"`
	InitialProgram    *RefResponse `json:"initial_program"`

	EnrollmentDate string `json:"enrollment_date" example:"2021-09-01"`
	EducationType  string `json:"education_type" example:"budget" enums:"budget,contract"`
	AdmissionBasis string `json:"admission_basis" example:"general" enums:"general,target,quota"`

	ExpulsionDate      *string `json:"expulsion_date"`
	ExpulsionReason    *string `json:"expulsion_reason" enums:"own_desire,transfer,academic_failure,other"`
	GraduationDate     *string `json:"graduation_date"`
	AcademicLeaveStart *string `json:"academic_leave_start"`
	AcademicLeaveEnd   *string `json:"academic_leave_end"`

	TransferHistory []TransferResponse `json:"transfer_history"`
}

// CreateStudentRequest is the body of POST /students. Dates use YYYY-MM-DD.
type CreateStudentRequest struct {
	LastName    string `json:"last_name" binding:"required,max=50"`
	FirstName   string `json:"first_name" binding:"required,max=50"`
	MiddleName  string `json:"middle_name" binding:"max=50"`
	Citizenship string `json:"citizenship" binding:"required,max=50"`
	Course      *int   `json:"course" binding:"omitempty,min=1,max=6"`

	Status string `json:"status" binding:"omitempty,oneof=active academic graduated expelled"`

	CurrentDepartmentID *int64 `json:"current_department_id" binding:"omitempty,gt=0"`
	CurrentProgramID    *int64 `json:"current_program_id" binding:"omitempty,gt=0"`
	InitialDepartmentID *int64 `json:"initial_department_id" binding:"omitempty,gt=0"`
	InitialProgramID    *int64 `json:"initial_program_id" binding:"omitempty,gt=0"`

	EnrollmentDate string `json:"enrollment_date" binding:"required,datetime=2006-01-02"`
	EducationType  string `json:"education_type" binding:"omitempty,oneof=budget contract"`
	AdmissionBasis string `json:"admission_basis" binding:"omitempty,oneof=general target quota"`

	ExpulsionDate      string `json:"expulsion_date" binding:"omitempty,datetime=2006-01-02"`
	ExpulsionReason    string `json:"expulsion_reason" binding:"omitempty,oneof=own_desire transfer academic_failure other"`
	GraduationDate     string `json:"graduation_date" binding:"omitempty,datetime=2006-01-02"`
	AcademicLeaveStart string `json:"academic_leave_start" binding:"omitempty,datetime=2006-01-02"`
	AcademicLeaveEnd   string `json:"academic_leave_end" binding:"omitempty,datetime=2006-01-02"`
	// TransferDate dates the move when current_program differs from initial_program
	TransferDate string `json:"transfer_date" binding:"omitempty,datetime=2006-01-02"`
}

func departmentRef(id *int64, d *models.Department) *RefResponse {
	if id == nil {
		return nil
	}
	ref := &RefResponse{ID: *id}
	if d != nil {
		ref.Name = d.Name
		ref.Code = d.Code
	}
	return ref
}

func programRef(id *int64, p *models.Program) *RefResponse {
	if id == nil {
		return nil
	}
	ref := &RefResponse{ID: *id}
	if p != nil {
		ref.Name = p.Name
		ref.Code = p.Code
	}
	return ref
}

// FromStudent converts a models.Student to a StudentResponse
func FromStudent(s *models.Student) StudentResponse {
	if s == nil {
		return StudentResponse{}
	}

	resp := StudentResponse{
		ID:                 s.ID,
		LastName:           s.LastName,
		FirstName:          s.FirstName,
		MiddleName:         s.MiddleName,
		Citizenship:        s.Citizenship,
		Course:             s.Course,
		Status:             string(s.Status),
		CurrentDepartment:  departmentRef(s.CurrentDepartmentID, s.CurrentDepartment),
		CurrentProgram:     programRef(s.CurrentProgramID, s.CurrentProgram),
		InitialDepartment:  departmentRef(s.InitialDepartmentID, s.InitialDepartment),
		InitialProgram:     programRef(s.InitialProgramID, s.InitialProgram),
		EnrollmentDate:     helpers.FormatDate(s.EnrollmentDate),
		EducationType:      string(s.EducationType),
		AdmissionBasis:     string(s.AdmissionBasis),
		ExpulsionDate:      helpers.FormatDatePtr(s.ExpulsionDate),
		GraduationDate:     helpers.FormatDatePtr(s.GraduationDate),
		AcademicLeaveStart: helpers.FormatDatePtr(s.AcademicLeaveStart),
		AcademicLeaveEnd:   helpers.FormatDatePtr(s.AcademicLeaveEnd),
		TransferHistory:    make([]TransferResponse, 0, len(s.TransferHistory)),
	}
	if s.ExpulsionReason != "" {
		reason := string(s.ExpulsionReason)
		resp.ExpulsionReason = &reason
	}
	for _, tr := range s.TransferHistory {
		resp.TransferHistory = append(resp.TransferHistory, TransferResponse{
			Date:          helpers.FormatDate(tr.Date),
			FromProgramID: tr.FromProgramID,
			ToProgramID:   tr.ToProgramID,
		})
	}
	return resp
}

// FromStudents converts a slice of students, never returning nil
func FromStudents(students []*models.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, FromStudent(s))
	}
	return out
}

// EnrollmentStatsResponse is returned by GET /enrollment-stats
type EnrollmentStatsResponse struct {
	Date     string            `json:"date" example:"2021-09-01"`
	Count    int               `json:"count" example:"2"`
	Students []StudentResponse `json:"students"`
}
