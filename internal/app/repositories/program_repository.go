package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/studentregistry/internal/app/filter"
	"github.com/yigit/studentregistry/internal/app/models"
	"github.com/yigit/studentregistry/internal/pkg/apperrors"
)

// PostgresProgramRepository handles database operations for programs
type PostgresProgramRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostgresProgramRepository creates a new program repository
func NewPostgresProgramRepository(db *pgxpool.Pool) *PostgresProgramRepository {
	return &PostgresProgramRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *PostgresProgramRepository) selectQuery() squirrel.SelectBuilder {
	return r.sb.Select(
		"p.id", "p.code", "COALESCE(p.old_code, '')", "p.name", "COALESCE(p.program_name, '')",
		"p.group_id", "p.department_id", "p.education_level", "p.is_active",
		"g.code", "g.name", "d.name", "d.code",
	).
		From("programs p").
		LeftJoin("program_groups g ON g.id = p.group_id").
		LeftJoin("departments d ON d.id = p.department_id")
}

func scanProgram(row pgx.Row) (*models.Program, error) {
	var (
		program                  models.Program
		level                    string
		groupCode, groupName     *string
		departmentName, deptCode *string
	)

	err := row.Scan(
		&program.ID,
		&program.Code,
		&program.OldCode,
		&program.Name,
		&program.ProgramName,
		&program.GroupID,
		&program.DepartmentID,
		&level,
		&program.IsActive,
		&groupCode,
		&groupName,
		&departmentName,
		&deptCode,
	)
	if err != nil {
		return nil, err
	}

	program.EducationLevel = models.EducationLevel(level)
	if program.GroupID != nil && groupCode != nil {
		program.Group = &models.ProgramGroup{ID: *program.GroupID, Code: *groupCode, Name: deref(groupName)}
	}
	if program.DepartmentID != nil && departmentName != nil {
		program.Department = &models.Department{ID: *program.DepartmentID, Name: *departmentName, Code: deref(deptCode)}
	}

	return &program, nil
}

// GetByID retrieves a program by ID
func (r *PostgresProgramRepository) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	sql, args, err := r.selectQuery().Where(squirrel.Eq{"p.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build program query: %w", err)
	}

	program, err := scanProgram(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProgramNotFound
		}
		return nil, fmt.Errorf("error retrieving program: %w", err)
	}

	return program, nil
}

// List retrieves the programs matching f ordered by code
func (r *PostgresProgramRepository) List(ctx context.Context, f filter.ProgramFilter) ([]*models.Program, error) {
	programs := make([]*models.Program, 0)
	if f.MatchesNothing() {
		return programs, nil
	}

	sql, args, err := r.selectQuery().Where(f.Sqlizer()).OrderBy("p.code", "p.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build program query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing programs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		program, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning program: %w", err)
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating programs: %w", err)
	}

	return programs, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
