// Package memory keeps the registry in process memory. The student list evaluates the
// same filter predicates the PostgreSQL repositories render to SQL.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/yigit/studentregistry/internal/app/filter"
	"github.com/yigit/studentregistry/internal/app/models"
	"github.com/yigit/studentregistry/internal/app/repositories"
	"github.com/yigit/studentregistry/internal/pkg/apperrors"
)

// Store holds departments, program groups, programs and students
type Store struct {
	mu          sync.RWMutex
	departments map[int64]models.Department
	groups      map[int64]models.ProgramGroup
	programs    map[int64]models.Program
	students    []models.Student
	nextID      int64
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		departments: make(map[int64]models.Department),
		groups:      make(map[int64]models.ProgramGroup),
		programs:    make(map[int64]models.Program),
		nextID:      1,
	}
}

// Repositories exposes the store through the repository interfaces
func (s *Store) Repositories() *repositories.Repositories {
	return &repositories.Repositories{
		StudentRepository:    &StudentRepository{store: s},
		DepartmentRepository: &DepartmentRepository{store: s},
		ProgramRepository:    &ProgramRepository{store: s},
	}
}

// PutDepartment inserts or replaces a department
func (s *Store) PutDepartment(d models.Department) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.departments[d.ID] = d
}

// PutProgramGroup inserts or replaces a program group
func (s *Store) PutProgramGroup(g models.ProgramGroup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.groups[g.ID] = g
}

// PutProgram inserts or replaces a program. Relation pointers are ignored and
// resolved from the stored catalog on read.
func (s *Store) PutProgram(p models.Program) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.Group, p.Department = nil, nil
	s.programs[p.ID] = p
}

// department returns a copy of the department with id; callers hold s.mu.
func (s *Store) department(id *int64) *models.Department {
	if id == nil {
		return nil
	}
	d, ok := s.departments[*id]
	if !ok {
		return nil
	}
	return &d
}

// program returns a copy of the program with its relations resolved; callers hold s.mu.
func (s *Store) program(id *int64) *models.Program {
	if id == nil {
		return nil
	}
	p, ok := s.programs[*id]
	if !ok {
		return nil
	}
	p.Department = s.department(p.DepartmentID)
	if p.GroupID != nil {
		if g, ok := s.groups[*p.GroupID]; ok {
			p.Group = &g
		}
	}
	return &p
}

// StudentRepository is the in-memory student repository
type StudentRepository struct {
	store *Store
}

// List evaluates q against a snapshot of the stored students
func (r *StudentRepository) List(ctx context.Context, q filter.Query) ([]*models.Student, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.store.mu.RLock()
	snapshot := make([]*models.Student, 0, len(r.store.students))
	for _, stored := range r.store.students {
		student := stored
		student.TransferHistory = append([]models.TransferRecord{}, stored.TransferHistory...)
		student.CurrentDepartment = r.store.department(student.CurrentDepartmentID)
		student.CurrentProgram = r.store.program(student.CurrentProgramID)
		student.InitialDepartment = r.store.department(student.InitialDepartmentID)
		student.InitialProgram = r.store.program(student.InitialProgramID)
		snapshot = append(snapshot, &student)
	}
	r.store.mu.RUnlock()

	return q.Apply(snapshot), nil
}

// Create stores a copy of student after checking its catalog references, then sets student.ID
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, id := range []*int64{student.CurrentDepartmentID, student.InitialDepartmentID} {
		if id != nil && r.store.department(id) == nil {
			return apperrors.ErrDepartmentNotFound
		}
	}
	for _, id := range []*int64{student.CurrentProgramID, student.InitialProgramID} {
		if id != nil && r.store.program(id) == nil {
			return apperrors.ErrProgramNotFound
		}
	}

	student.ID = r.store.nextID
	r.store.nextID++

	stored := *student
	stored.TransferHistory = append([]models.TransferRecord{}, student.TransferHistory...)
	stored.CurrentDepartment, stored.CurrentProgram = nil, nil
	stored.InitialDepartment, stored.InitialProgram = nil, nil
	r.store.students = append(r.store.students, stored)

	return nil
}

// DepartmentRepository is the in-memory department repository
type DepartmentRepository struct {
	store *Store
}

// GetAll returns every department ordered by id
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	departments := make([]*models.Department, 0, len(r.store.departments))
	for _, d := range r.store.departments {
		d := d
		departments = append(departments, &d)
	}
	sort.Slice(departments, func(i, j int) bool { return departments[i].ID < departments[j].ID })

	return departments, nil
}

// GetByID returns the department with id
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if d := r.store.department(&id); d != nil {
		return d, nil
	}
	return nil, apperrors.ErrDepartmentNotFound
}

// ProgramRepository is the in-memory program repository
type ProgramRepository struct {
	store *Store
}

// List returns the programs matching f ordered by code
func (r *ProgramRepository) List(ctx context.Context, f filter.ProgramFilter) ([]*models.Program, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	programs := make([]*models.Program, 0)
	for id := range r.store.programs {
		id := id
		p := r.store.program(&id)
		if f.Match(p) {
			programs = append(programs, p)
		}
	}
	sort.Slice(programs, func(i, j int) bool {
		if programs[i].Code != programs[j].Code {
			return programs[i].Code < programs[j].Code
		}
		return programs[i].ID < programs[j].ID
	})

	return programs, nil
}

// GetByID returns the program with id
func (r *ProgramRepository) GetByID(ctx context.Context, id int64) (*models.Program, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if p := r.store.program(&id); p != nil {
		return p, nil
	}
	return nil, apperrors.ErrProgramNotFound
}
