package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yigit/studentregistry/internal/app/filter"
	"github.com/yigit/studentregistry/internal/app/models"
)

// StudentRepository stores students and answers filtered list queries
type StudentRepository interface {
	List(ctx context.Context, q filter.Query) ([]*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
}

// DepartmentRepository reads departments
type DepartmentRepository interface {
	GetAll(ctx context.Context) ([]*models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
}

// ProgramRepository reads programs
type ProgramRepository interface {
	List(ctx context.Context, f filter.ProgramFilter) ([]*models.Program, error)
	GetByID(ctx context.Context, id int64) (*models.Program, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    StudentRepository
	DepartmentRepository DepartmentRepository
	ProgramRepository    ProgramRepository
}

// NewRepositories initializes the PostgreSQL backed repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewPostgresStudentRepository(db),
		DepartmentRepository: NewPostgresDepartmentRepository(db),
		ProgramRepository:    NewPostgresProgramRepository(db),
	}
}
