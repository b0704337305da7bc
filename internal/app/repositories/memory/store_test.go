package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentregistry/internal/app/filter"
	"github.com/yigit/studentregistry/internal/app/models"
	"github.com/yigit/studentregistry/internal/pkg/apperrors"
	"github.com/yigit/studentregistry/internal/pkg/helpers"
)

func id(v int64) *int64 { return &v }

func seededStore() *Store {
	s := NewStore()
	s.PutDepartment(models.Department{ID: 1, Name: "Кафедра математики", Code: "MATH"})
	s.PutDepartment(models.Department{ID: 2, Name: "Кафедра физики", Code: "PHYS"})
	s.PutProgramGroup(models.ProgramGroup{ID: 1, Code: "1.1", Name: "Математика и механика"})
	s.PutProgram(models.Program{ID: 10, Code: "01.03.01", Name: "Математика", GroupID: id(1), DepartmentID: id(1), IsActive: true})
	s.PutProgram(models.Program{ID: 20, Code: "03.03.02", Name: "Физика", DepartmentID: id(2), IsActive: true})
	s.PutProgram(models.Program{ID: 30, Code: "01.03.02", Name: "Прикладная математика", IsActive: true})
	return s
}

func newStudent(last, first string, dept, program int64, enrolled string) *models.Student {
	d, _ := time.Parse(helpers.DateLayout, enrolled)
	return &models.Student{
		LastName: last, FirstName: first, Citizenship: "РФ",
		Status:              models.StatusActive,
		CurrentDepartmentID: id(dept), CurrentProgramID: id(program),
		InitialDepartmentID: id(dept), InitialProgramID: id(program),
		EnrollmentDate: d,
		EducationType:  models.EducationBudget,
		AdmissionBasis: models.AdmissionGeneral,
	}
}

func TestStudentRepository_CreateAssignsIDsAndListResolvesRelations(t *testing.T) {
	repos := seededStore().Repositories()
	ctx := context.Background()

	first := newStudent("Петров", "Пётр", 1, 10, "2021-09-01")
	second := newStudent("Антонов", "Антон", 2, 20, "2022-09-01")
	require.NoError(t, repos.StudentRepository.Create(ctx, first))
	require.NoError(t, repos.StudentRepository.Create(ctx, second))
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	got, err := repos.StudentRepository.List(ctx, filter.NewStudentQuery(nil))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Антонов", got[0].LastName)
	require.NotNil(t, got[0].CurrentDepartment)
	assert.Equal(t, "Кафедра физики", got[0].CurrentDepartment.Name)
	require.NotNil(t, got[1].CurrentProgram)
	assert.Equal(t, "01.03.01", got[1].CurrentProgram.Code)
}

func TestStudentRepository_ListAppliesPredicate(t *testing.T) {
	repos := seededStore().Repositories()
	ctx := context.Background()
	require.NoError(t, repos.StudentRepository.Create(ctx, newStudent("Петров", "Пётр", 1, 10, "2021-09-01")))
	require.NoError(t, repos.StudentRepository.Create(ctx, newStudent("Антонов", "Антон", 2, 20, "2022-09-01")))

	q := filter.BuildStudentQuery(filter.Params{filter.ParamCurrentDepartments: "1"})
	got, err := repos.StudentRepository.List(ctx, q)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Петров", got[0].LastName)
}

func TestStudentRepository_ListReturnsCopies(t *testing.T) {
	repos := seededStore().Repositories()
	ctx := context.Background()
	require.NoError(t, repos.StudentRepository.Create(ctx, newStudent("Петров", "Пётр", 1, 10, "2021-09-01")))

	got, err := repos.StudentRepository.List(ctx, filter.NewStudentQuery(nil))
	require.NoError(t, err)
	got[0].LastName = "Changed"

	again, err := repos.StudentRepository.List(ctx, filter.NewStudentQuery(nil))
	require.NoError(t, err)
	assert.Equal(t, "Петров", again[0].LastName)
}

func TestStudentRepository_CreateRejectsUnknownReferences(t *testing.T) {
	repos := seededStore().Repositories()
	ctx := context.Background()

	err := repos.StudentRepository.Create(ctx, newStudent("Петров", "Пётр", 99, 10, "2021-09-01"))
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)

	err = repos.StudentRepository.Create(ctx, newStudent("Петров", "Пётр", 1, 99, "2021-09-01"))
	assert.ErrorIs(t, err, apperrors.ErrProgramNotFound)

	got, err := repos.StudentRepository.List(ctx, filter.NewStudentQuery(nil))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDepartmentRepository(t *testing.T) {
	repos := seededStore().Repositories()
	ctx := context.Background()

	all, err := repos.DepartmentRepository.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, int64(1), all[0].ID)
	assert.Equal(t, int64(2), all[1].ID)

	_, err = repos.DepartmentRepository.GetByID(ctx, 42)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

func TestProgramRepository_List(t *testing.T) {
	repos := seededStore().Repositories()
	ctx := context.Background()

	tests := []struct {
		name string
		raw  string
		want []int64
	}{
		{"all programs ordered by code", "", []int64{10, 30, 20}},
		{"single department", "1", []int64{10}},
		{"several departments", "2,1", []int64{10, 20}},
		{"unknown department", "7", []int64{}},
		{"non numeric", "abc", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			programs, err := repos.ProgramRepository.List(ctx, filter.ParseProgramFilter(tt.raw))
			require.NoError(t, err)
			got := make([]int64, 0, len(programs))
			for _, p := range programs {
				got = append(got, p.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProgramRepository_GetByIDResolvesRelations(t *testing.T) {
	repos := seededStore().Repositories()

	p, err := repos.ProgramRepository.GetByID(context.Background(), 10)
	require.NoError(t, err)
	require.NotNil(t, p.Department)
	require.NotNil(t, p.Group)
	assert.Equal(t, "1.1", p.Group.Code)

	_, err = repos.ProgramRepository.GetByID(context.Background(), 11)
	assert.ErrorIs(t, err, apperrors.ErrProgramNotFound)
}
