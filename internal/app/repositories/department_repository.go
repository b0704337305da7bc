package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/studentregistry/internal/app/models"
	"github.com/yigit/studentregistry/internal/pkg/apperrors"
)

// PostgresDepartmentRepository handles database operations for departments
type PostgresDepartmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPostgresDepartmentRepository creates a new department repository
func NewPostgresDepartmentRepository(db *pgxpool.Pool) *PostgresDepartmentRepository {
	return &PostgresDepartmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *PostgresDepartmentRepository) selectQuery() squirrel.SelectBuilder {
	return r.sb.Select("d.id", "d.name", "COALESCE(d.code, '')").From("departments d")
}

// GetByID retrieves a department by ID
func (r *PostgresDepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	sql, args, err := r.selectQuery().Where(squirrel.Eq{"d.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build department query: %w", err)
	}

	var department models.Department
	err = r.db.QueryRow(ctx, sql, args...).Scan(&department.ID, &department.Name, &department.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("error retrieving department: %w", err)
	}

	return &department, nil
}

// GetAll retrieves all departments ordered by id
func (r *PostgresDepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	sql, args, err := r.selectQuery().OrderBy("d.id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build department query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing departments: %w", err)
	}
	defer rows.Close()

	departments := make([]*models.Department, 0)
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(&department.ID, &department.Name, &department.Code); err != nil {
			return nil, fmt.Errorf("error scanning department: %w", err)
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating departments: %w", err)
	}

	return departments, nil
}
