package repositories

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/studentregistry/internal/app/filter"
	"github.com/yigit/studentregistry/internal/app/models"
	"github.com/yigit/studentregistry/internal/db"
	"github.com/yigit/studentregistry/internal/pkg/apperrors"
	"github.com/yigit/studentregistry/internal/pkg/dberrors"
	"github.com/yigit/studentregistry/internal/pkg/logger"
)

// PostgresStudentRepository handles student database operations
type PostgresStudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostgresStudentRepository creates a new student repository
func NewPostgresStudentRepository(db *pgxpool.Pool) *PostgresStudentRepository {
	return &PostgresStudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// selectStudentQuery joins the four catalog references so a listed student carries
// readable department and program names.
func (r *PostgresStudentRepository) selectStudentQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"s.id", "s.last_name", "s.first_name", "COALESCE(s.middle_name, '')", "s.citizenship", "s.course", "s.status",
		"s.current_department_id", "s.current_program_id", "s.initial_department_id", "s.initial_program_id",
		"s.enrollment_date", "s.education_type", "s.admission_basis",
		"s.expulsion_date", "s.expulsion_reason", "s.graduation_date", "s.academic_leave_start", "s.academic_leave_end",
		"cd.name", "cd.code", "cp.name", "cp.code", "idp.name", "idp.code", "ip.name", "ip.code",
	).
		From("students s").
		LeftJoin("departments cd ON cd.id = s.current_department_id").
		LeftJoin("programs cp ON cp.id = s.current_program_id").
		LeftJoin("departments idp ON idp.id = s.initial_department_id").
		LeftJoin("programs ip ON ip.id = s.initial_program_id")
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var (
		student         models.Student
		course          *int32
		status          string
		educationType   string
		admissionBasis  string
		expulsionReason *string
		// names and codes of the joined current/initial department and program
		cdName, cdCode, cpName, cpCode *string
		idName, idCode, ipName, ipCode *string
	)

	err := row.Scan(
		&student.ID,
		&student.LastName,
		&student.FirstName,
		&student.MiddleName,
		&student.Citizenship,
		&course,
		&status,
		&student.CurrentDepartmentID,
		&student.CurrentProgramID,
		&student.InitialDepartmentID,
		&student.InitialProgramID,
		&student.EnrollmentDate,
		&educationType,
		&admissionBasis,
		&student.ExpulsionDate,
		&expulsionReason,
		&student.GraduationDate,
		&student.AcademicLeaveStart,
		&student.AcademicLeaveEnd,
		&cdName, &cdCode, &cpName, &cpCode,
		&idName, &idCode, &ipName, &ipCode,
	)
	if err != nil {
		return nil, err
	}

	if course != nil {
		c := int(*course)
		student.Course = &c
	}
	student.Status = models.StudentStatus(status)
	student.EducationType = models.EducationType(educationType)
	student.AdmissionBasis = models.AdmissionBasis(admissionBasis)
	if expulsionReason != nil {
		student.ExpulsionReason = models.ExpulsionReason(*expulsionReason)
	}

	student.CurrentDepartment = departmentRef(student.CurrentDepartmentID, cdName, cdCode)
	student.CurrentProgram = programRef(student.CurrentProgramID, cpName, cpCode)
	student.InitialDepartment = departmentRef(student.InitialDepartmentID, idName, idCode)
	student.InitialProgram = programRef(student.InitialProgramID, ipName, ipCode)
	student.TransferHistory = []models.TransferRecord{}

	return &student, nil
}

func departmentRef(id *int64, name, code *string) *models.Department {
	if id == nil || name == nil {
		return nil
	}
	return &models.Department{ID: *id, Name: *name, Code: deref(code)}
}

func programRef(id *int64, name, code *string) *models.Program {
	if id == nil || name == nil {
		return nil
	}
	return &models.Program{ID: *id, Name: *name, Code: deref(code)}
}

// List returns the students matching q.Where in q.OrderBy order
func (r *PostgresStudentRepository) List(ctx context.Context, q filter.Query) ([]*models.Student, error) {
	builder := r.selectStudentQuery()
	if !filter.IsAll(q.Where) {
		builder = builder.Where(q.Where)
	}
	if len(q.OrderBy) > 0 {
		builder = builder.OrderBy(q.OrderBy...)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student query: %w", err)
	}
	logger.Debug().Str("sql", sql).Int("args", len(args)).Msg("Listing students")

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	byID := make(map[int64]*models.Student)
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student: %w", err)
		}
		students = append(students, student)
		byID[student.ID] = student
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating students: %w", err)
	}

	if len(students) == 0 {
		return students, nil
	}
	if err := r.loadTransfers(ctx, byID); err != nil {
		return nil, err
	}

	return students, nil
}

// loadTransfers attaches the transfer history of every student in byID with one query
func (r *PostgresStudentRepository) loadTransfers(ctx context.Context, byID map[int64]*models.Student) error {
	ids := make([]int64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	sql, args, err := r.sb.Select("student_id", "transfer_date", "from_program_id", "to_program_id").
		From("student_transfers").
		Where(squirrel.Eq{"student_id": ids}).
		OrderBy("student_id", "transfer_date", "id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build transfer query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error loading transfer history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			studentID int64
			record    models.TransferRecord
		)
		if err := rows.Scan(&studentID, &record.Date, &record.FromProgramID, &record.ToProgramID); err != nil {
			return fmt.Errorf("error scanning transfer record: %w", err)
		}
		if student, ok := byID[studentID]; ok {
			student.TransferHistory = append(student.TransferHistory, record)
		}
	}

	return rows.Err()
}

// Create inserts the student and its transfer history in one transaction and sets student.ID
func (r *PostgresStudentRepository) Create(ctx context.Context, student *models.Student) error {
	var reason *string
	if student.ExpulsionReason != "" {
		v := string(student.ExpulsionReason)
		reason = &v
	}
	var middleName *string
	if student.MiddleName != "" {
		middleName = &student.MiddleName
	}

	sql, args, err := r.sb.Insert("students").
		Columns(
			"last_name", "first_name", "middle_name", "citizenship", "course", "status",
			"current_department_id", "current_program_id", "initial_department_id", "initial_program_id",
			"enrollment_date", "education_type", "admission_basis",
			"expulsion_date", "expulsion_reason", "graduation_date", "academic_leave_start", "academic_leave_end",
		).
		Values(
			student.LastName, student.FirstName, middleName, student.Citizenship, student.Course, string(student.Status),
			student.CurrentDepartmentID, student.CurrentProgramID, student.InitialDepartmentID, student.InitialProgramID,
			student.EnrollmentDate, string(student.EducationType), string(student.AdmissionBasis),
			student.ExpulsionDate, reason, student.GraduationDate, student.AcademicLeaveStart, student.AcademicLeaveEnd,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build student insert: %w", err)
	}

	err = db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, sql, args...).Scan(&student.ID); err != nil {
			return err
		}
		if len(student.TransferHistory) == 0 {
			return nil
		}

		insert := r.sb.Insert("student_transfers").
			Columns("student_id", "transfer_date", "from_program_id", "to_program_id")
		for _, t := range student.TransferHistory {
			insert = insert.Values(student.ID, t.Date, t.FromProgramID, t.ToProgramID)
		}
		transferSQL, transferArgs, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build transfer insert: %w", err)
		}
		_, err = tx.Exec(ctx, transferSQL, transferArgs...)
		return err
	})
	if err != nil {
		return translateStudentWriteError(err)
	}

	return nil
}

func translateStudentWriteError(err error) error {
	if constraint, ok := dberrors.IsForeignKeyViolation(err); ok {
		switch {
		case strings.Contains(constraint, "department"):
			return apperrors.ErrDepartmentNotFound
		case strings.Contains(constraint, "program"):
			return apperrors.ErrProgramNotFound
		}
	}
	if dberrors.IsCheckViolation(err) {
		return fmt.Errorf("%w: %v", apperrors.ErrStudentFieldsInconsistent, err)
	}
	return fmt.Errorf("error creating student: %w", err)
}
