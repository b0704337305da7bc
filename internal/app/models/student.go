package models

import (
	"fmt"
	"time"

	"github.com/yigit/studentregistry/internal/pkg/apperrors"
)

// TransferRecord is one entry of a student's program reassignment log
type TransferRecord struct {
	Date          time.Time `json:"date"`
	FromProgramID *int64    `json:"from_program_id"`
	ToProgramID   *int64    `json:"to_program_id"`
}

// Student defines the student model based on the 'students' table.
// Status-specific fields are only set while the student is in the matching status.
type Student struct {
	ID          int64  `json:"id"`
	LastName    string `json:"last_name"`
	FirstName   string `json:"first_name"`
	MiddleName  string `json:"middle_name"`
	Citizenship string `json:"citizenship"`
	Course      *int   `json:"course,omitempty"`

	Status StudentStatus `json:"status"`

	CurrentDepartmentID *int64 `json:"current_department_id"`
	CurrentProgramID    *int64 `json:"current_program_id"`
	InitialDepartmentID *int64 `json:"initial_department_id"`
	InitialProgramID    *int64 `json:"initial_program_id"`

	EnrollmentDate time.Time      `json:"enrollment_date"`
	EducationType  EducationType  `json:"education_type"`
	AdmissionBasis AdmissionBasis `json:"admission_basis"`

	ExpulsionDate      *time.Time      `json:"expulsion_date,omitempty"`
	ExpulsionReason    ExpulsionReason `json:"expulsion_reason,omitempty"`
	GraduationDate     *time.Time      `json:"graduation_date,omitempty"`
	AcademicLeaveStart *time.Time      `json:"academic_leave_start,omitempty"`
	AcademicLeaveEnd   *time.Time      `json:"academic_leave_end,omitempty"`

	TransferHistory []TransferRecord `json:"transfer_history"`

	// Relations (populated by repositories)
	CurrentDepartment *Department `json:"-"`
	CurrentProgram    *Program    `json:"-"`
	InitialDepartment *Department `json:"-"`
	InitialProgram    *Program    `json:"-"`
}

func transitionError(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", apperrors.ErrInvalidStatusTransition, fmt.Sprintf(format, args...))
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func datePtr(t time.Time) *time.Time {
	return &t
}

// Expel moves an active or on-leave student to the expelled status
func (s *Student) Expel(date time.Time, reason ExpulsionReason) error {
	if s.Status != StatusActive && s.Status != StatusAcademic {
		return transitionError("cannot expel a student with status %q", s.Status)
	}
	if !reason.Valid() {
		return transitionError("unknown expulsion reason %q", reason)
	}
	if date.Before(s.EnrollmentDate) {
		return transitionError("expulsion date precedes enrollment date")
	}

	s.Status = StatusExpelled
	s.ExpulsionDate = datePtr(date)
	s.ExpulsionReason = reason
	s.AcademicLeaveStart = nil
	s.AcademicLeaveEnd = nil
	return nil
}

// Graduate marks an active student as graduated
func (s *Student) Graduate(date time.Time) error {
	if s.Status != StatusActive {
		return transitionError("only active students can graduate, got %q", s.Status)
	}
	if date.Before(s.EnrollmentDate) {
		return transitionError("graduation date precedes enrollment date")
	}

	s.Status = StatusGraduated
	s.GraduationDate = datePtr(date)
	return nil
}

// StartAcademicLeave sends an active student on academic leave
func (s *Student) StartAcademicLeave(start, end time.Time) error {
	if s.Status != StatusActive {
		return transitionError("only active students can take academic leave, got %q", s.Status)
	}
	if end.Before(start) {
		return transitionError("academic leave ends before it starts")
	}

	s.Status = StatusAcademic
	s.AcademicLeaveStart = datePtr(start)
	s.AcademicLeaveEnd = datePtr(end)
	return nil
}

// EndAcademicLeave returns a student from academic leave to active
func (s *Student) EndAcademicLeave() error {
	if s.Status != StatusAcademic {
		return transitionError("student is not on academic leave")
	}

	s.Status = StatusActive
	s.AcademicLeaveStart = nil
	s.AcademicLeaveEnd = nil
	return nil
}

// Transfer reassigns the student's current department and program and appends
// the move to the transfer history. Moving back to the initial program is refused
// because the history must stay empty while current equals initial.
func (s *Student) Transfer(date time.Time, departmentID, programID *int64) error {
	if s.Status != StatusActive && s.Status != StatusAcademic {
		return transitionError("cannot transfer a student with status %q", s.Status)
	}
	if programID == nil {
		return transitionError("target program is required")
	}
	if sameID(s.CurrentProgramID, programID) {
		return transitionError("student is already enrolled in program %d", *programID)
	}
	if sameID(s.InitialProgramID, programID) {
		return transitionError("cannot transfer back to the initial program")
	}
	if date.Before(s.EnrollmentDate) {
		return transitionError("transfer date precedes enrollment date")
	}

	s.TransferHistory = append(s.TransferHistory, TransferRecord{
		Date:          date,
		FromProgramID: s.CurrentProgramID,
		ToProgramID:   programID,
	})
	s.CurrentDepartmentID = departmentID
	s.CurrentProgramID = programID
	return nil
}

// Validate checks the status-dependent field invariants
func (s *Student) Validate() error {
	inconsistent := func(msg string) error {
		return fmt.Errorf("%w: %s", apperrors.ErrStudentFieldsInconsistent, msg)
	}

	if !s.Status.Valid() {
		return inconsistent(fmt.Sprintf("unknown status %q", s.Status))
	}
	if (s.ExpulsionReason != "") != (s.Status == StatusExpelled) {
		return inconsistent("expulsion reason must be set exactly when the student is expelled")
	}
	if s.ExpulsionDate != nil && s.Status != StatusExpelled {
		return inconsistent("expulsion date is only allowed for expelled students")
	}
	if s.GraduationDate != nil && s.Status != StatusGraduated {
		return inconsistent("graduation date is only allowed for graduated students")
	}
	if (s.AcademicLeaveStart != nil || s.AcademicLeaveEnd != nil) && s.Status != StatusAcademic {
		return inconsistent("academic leave dates are only allowed for students on academic leave")
	}
	if len(s.TransferHistory) > 0 && sameID(s.CurrentProgramID, s.InitialProgramID) {
		return inconsistent("transfer history requires the current program to differ from the initial one")
	}
	return nil
}
