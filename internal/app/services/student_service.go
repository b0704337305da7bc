package services

import (
	"context"
	"fmt"
	"time"

	"github.com/yigit/studentregistry/internal/app/filter"
	"github.com/yigit/studentregistry/internal/app/models"
	"github.com/yigit/studentregistry/internal/app/models/dto"
	"github.com/yigit/studentregistry/internal/app/repositories"
	"github.com/yigit/studentregistry/internal/pkg/apperrors"
	"github.com/yigit/studentregistry/internal/pkg/helpers"
	"github.com/yigit/studentregistry/internal/pkg/logger"
)

// StudentService handles student listing, creation and enrollment stats
type StudentService struct {
	studentRepo    repositories.StudentRepository
	departmentRepo repositories.DepartmentRepository
	programRepo    repositories.ProgramRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(
	studentRepo repositories.StudentRepository,
	departmentRepo repositories.DepartmentRepository,
	programRepo repositories.ProgramRepository,
) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		departmentRepo: departmentRepo,
		programRepo:    programRepo,
	}
}

// ListStudents returns the students matching params in name order
func (s *StudentService) ListStudents(ctx context.Context, params filter.Params) ([]*models.Student, error) {
	students, err := s.studentRepo.List(ctx, filter.BuildStudentQuery(params))
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	return students, nil
}

// StudentsEnrolledOn returns the students whose enrollment date is day
func (s *StudentService) StudentsEnrolledOn(ctx context.Context, day time.Time) ([]*models.Student, error) {
	params := filter.Params{filter.ParamEnrollmentDate: helpers.FormatDate(day)}
	return s.ListStudents(ctx, params)
}

// CreateStudent validates req, materialises the status specific fields through the
// model transitions and persists the student with its transfer history.
func (s *StudentService) CreateStudent(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	enrolled, err := requiredDate("enrollment_date", req.EnrollmentDate)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		LastName:            req.LastName,
		FirstName:           req.FirstName,
		MiddleName:          req.MiddleName,
		Citizenship:         req.Citizenship,
		Course:              req.Course,
		Status:              models.StatusActive,
		EnrollmentDate:      enrolled,
		EducationType:       models.EducationBudget,
		AdmissionBasis:      models.AdmissionGeneral,
		CurrentDepartmentID: req.CurrentDepartmentID,
		CurrentProgramID:    req.CurrentProgramID,
		InitialDepartmentID: req.InitialDepartmentID,
		InitialProgramID:    req.InitialProgramID,
		TransferHistory:     []models.TransferRecord{},
	}
	if req.EducationType != "" {
		student.EducationType = models.EducationType(req.EducationType)
	}
	if req.AdmissionBasis != "" {
		student.AdmissionBasis = models.AdmissionBasis(req.AdmissionBasis)
	}
	if !student.EducationType.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown education type %q", req.EducationType))
	}
	if !student.AdmissionBasis.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown admission basis %q", req.AdmissionBasis))
	}

	if student.CurrentDepartmentID == nil {
		student.CurrentDepartmentID = student.InitialDepartmentID
	}
	if student.CurrentProgramID == nil {
		student.CurrentProgramID = student.InitialProgramID
	}
	if student.InitialDepartmentID == nil {
		student.InitialDepartmentID = student.CurrentDepartmentID
	}
	if student.InitialProgramID == nil {
		student.InitialProgramID = student.CurrentProgramID
	}

	if err := s.resolveReferences(ctx, student); err != nil {
		return nil, err
	}

	// the record starts in the initial program; a differing current program is a transfer
	current := struct{ department, program *int64 }{student.CurrentDepartmentID, student.CurrentProgramID}
	student.CurrentDepartmentID = student.InitialDepartmentID
	student.CurrentProgramID = student.InitialProgramID
	if !sameProgram(current.program, student.InitialProgramID) {
		transferDate := enrolled
		if req.TransferDate != "" {
			if transferDate, err = requiredDate("transfer_date", req.TransferDate); err != nil {
				return nil, err
			}
		}
		if err := student.Transfer(transferDate, current.department, current.program); err != nil {
			return nil, err
		}
	}
	student.CurrentDepartmentID = current.department

	if err := applyStatus(student, req); err != nil {
		return nil, err
	}
	if err := student.Validate(); err != nil {
		return nil, err
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().
		Int64("student_id", student.ID).
		Str("status", string(student.Status)).
		Int("transfers", len(student.TransferHistory)).
		Msg("Student created")

	return student, nil
}

// resolveReferences checks that every referenced department and program exists and
// attaches them to the student for the response.
func (s *StudentService) resolveReferences(ctx context.Context, student *models.Student) error {
	var err error
	if student.CurrentDepartment, err = s.department(ctx, student.CurrentDepartmentID); err != nil {
		return err
	}
	if student.InitialDepartment, err = s.department(ctx, student.InitialDepartmentID); err != nil {
		return err
	}
	if student.CurrentProgram, err = s.program(ctx, student.CurrentProgramID); err != nil {
		return err
	}
	if student.InitialProgram, err = s.program(ctx, student.InitialProgramID); err != nil {
		return err
	}
	return nil
}

func (s *StudentService) department(ctx context.Context, id *int64) (*models.Department, error) {
	if id == nil {
		return nil, nil
	}
	d, err := s.departmentRepo.GetByID(ctx, *id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrDepartmentNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrDepartmentNotFound, fmt.Sprintf("department %d does not exist", *id))
		}
		return nil, fmt.Errorf("error checking department: %w", err)
	}
	return d, nil
}

func (s *StudentService) program(ctx context.Context, id *int64) (*models.Program, error) {
	if id == nil {
		return nil, nil
	}
	p, err := s.programRepo.GetByID(ctx, *id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrProgramNotFound) {
			return nil, apperrors.NewCustomError(apperrors.ErrProgramNotFound, fmt.Sprintf("program %d does not exist", *id))
		}
		return nil, fmt.Errorf("error checking program: %w", err)
	}
	return p, nil
}

// applyStatus moves the freshly built active student into the requested status
func applyStatus(student *models.Student, req *dto.CreateStudentRequest) error {
	switch models.StudentStatus(req.Status) {
	case "", models.StatusActive:
		if req.ExpulsionReason != "" || req.ExpulsionDate != "" || req.GraduationDate != "" ||
			req.AcademicLeaveStart != "" || req.AcademicLeaveEnd != "" {
			return apperrors.NewValidationError("status specific fields require the matching status")
		}
		return nil

	case models.StatusExpelled:
		date, err := requiredDate("expulsion_date", req.ExpulsionDate)
		if err != nil {
			return err
		}
		if req.ExpulsionReason == "" {
			return apperrors.NewValidationError("expulsion_reason is required for expelled students")
		}
		return student.Expel(date, models.ExpulsionReason(req.ExpulsionReason))

	case models.StatusGraduated:
		date, err := requiredDate("graduation_date", req.GraduationDate)
		if err != nil {
			return err
		}
		return student.Graduate(date)

	case models.StatusAcademic:
		start, err := requiredDate("academic_leave_start", req.AcademicLeaveStart)
		if err != nil {
			return err
		}
		end, err := requiredDate("academic_leave_end", req.AcademicLeaveEnd)
		if err != nil {
			return err
		}
		return student.StartAcademicLeave(start, end)
	}

	return apperrors.NewValidationError(fmt.Sprintf("unknown status %q", req.Status))
}

func requiredDate(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, apperrors.NewValidationError(field + " is required")
	}
	d, err := helpers.ParseDate(raw)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(field + " must use the YYYY-MM-DD format")
	}
	return d, nil
}

func sameProgram(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
