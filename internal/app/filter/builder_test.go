package filter

import (
	"net/url"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentregistry/internal/app/models"
	"github.com/yigit/studentregistry/internal/pkg/helpers"
)

func ptr(v int64) *int64 { return &v }

func date(s string) time.Time {
	d, err := time.Parse(helpers.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func fixture() []*models.Student {
	return []*models.Student{
		{ID: 1, LastName: "Петров", FirstName: "Пётр", Status: models.StatusActive,
			CurrentDepartmentID: ptr(1), CurrentProgramID: ptr(10), EnrollmentDate: date("2020-09-01"),
			EducationType: models.EducationBudget, AdmissionBasis: models.AdmissionGeneral},
		{ID: 2, LastName: "Иванов", FirstName: "Иван", Status: models.StatusExpelled, ExpulsionReason: models.ReasonTransfer,
			CurrentDepartmentID: ptr(1), CurrentProgramID: ptr(10), EnrollmentDate: date("2020-09-01"),
			EducationType: models.EducationContract, AdmissionBasis: models.AdmissionTarget},
		{ID: 3, LastName: "Антонов", FirstName: "Антон", Status: models.StatusExpelled, ExpulsionReason: models.ReasonAcademicFailure,
			CurrentDepartmentID: ptr(2), CurrentProgramID: ptr(20), EnrollmentDate: date("2021-09-01"),
			EducationType: models.EducationBudget, AdmissionBasis: models.AdmissionQuota},
		{ID: 4, LastName: "Иванов", FirstName: "Алексей", Status: models.StatusAcademic,
			CurrentDepartmentID: ptr(2), CurrentProgramID: ptr(20), EnrollmentDate: date("2021-09-01"),
			EducationType: models.EducationBudget, AdmissionBasis: models.AdmissionGeneral},
		{ID: 5, LastName: "Сидорова", FirstName: "Мария", Status: models.StatusGraduated,
			CurrentDepartmentID: ptr(1), CurrentProgramID: ptr(11), EnrollmentDate: date("2019-09-01"),
			EducationType: models.EducationContract, AdmissionBasis: models.AdmissionGeneral},
		{ID: 6, LastName: "Иванов", FirstName: "Алексей", Status: models.StatusActive,
			CurrentDepartmentID: ptr(3), CurrentProgramID: ptr(30), EnrollmentDate: date("2022-09-01"),
			EducationType: models.EducationBudget, AdmissionBasis: models.AdmissionTarget},
		{ID: 7, LastName: "Бойко", FirstName: "Олег", Status: models.StatusActive,
			EnrollmentDate: date("2022-09-01"),
			EducationType: models.EducationBudget, AdmissionBasis: models.AdmissionGeneral},
	}
}

func run(t *testing.T, raw string) []int64 {
	t.Helper()
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)

	got := BuildStudentQuery(ParamsFromValues(values)).Apply(fixture())
	ids := make([]int64, len(got))
	for i, s := range got {
		ids[i] = s.ID
	}
	return ids
}

func TestBuildStudentQuery_NoParamsReturnsEveryoneInNameOrder(t *testing.T) {
	assert.Equal(t, []int64{3, 7, 4, 6, 2, 1, 5}, run(t, ""))
}

func TestBuildStudentQuery_Filters(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []int64
	}{
		{"expelled alone", "statuses=expelled", []int64{3, 2}},
		{"regular statuses", "statuses=active,academic", []int64{7, 4, 6, 1}},
		{"reasons override bare expelled", "statuses=expelled,active&expulsion_reasons=transfer", []int64{7, 6, 2, 1}},
		{"reasons without statuses", "expulsion_reasons=transfer,academic_failure", []int64{3, 2}},
		{"reasons with regular status only", "statuses=graduated&expulsion_reasons=transfer", []int64{2, 5}},
		{"unknown status matches nothing", "statuses=sleeping", []int64{}},
		{"blank list is absent", "statuses=,", []int64{3, 7, 4, 6, 2, 1, 5}},
		{"exact enrollment date", "enrollment_date=2021-09-01", []int64{3, 4}},
		{"malformed enrollment date ignored", "enrollment_date=not-a-date", []int64{3, 7, 4, 6, 2, 1, 5}},
		{"inclusive range", "start_date=2020-09-01&end_date=2021-09-01", []int64{3, 4, 2, 1}},
		{"inverted range is empty", "start_date=2020-01-01&end_date=2019-01-01", []int64{}},
		{"range needs both ends", "start_date=2021-01-01", []int64{3, 7, 4, 6, 2, 1, 5}},
		{"malformed range end ignored", "start_date=2021-01-01&end_date=2021-02-30", []int64{3, 7, 4, 6, 2, 1, 5}},
		{"departments", "current_departments=1,2", []int64{3, 4, 2, 1, 5}},
		{"unknown department", "current_departments=999", []int64{}},
		{"non numeric department", "current_departments=abc", []int64{}},
		{"non numeric token dropped", "current_departments=1,abc", []int64{2, 1, 5}},
		{"programs", "current_programs=20,30", []int64{3, 4, 6}},
		{"education types", "education_types=contract", []int64{2, 5}},
		{"admission bases", "admission_bases=target,quota", []int64{3, 6, 2}},
		{"academic flag", "in_academic=TRUE", []int64{4}},
		{"academic flag off", "in_academic=false", []int64{3, 7, 4, 6, 2, 1, 5}},
		{"padded academic flag is not true", "in_academic=%20true", []int64{3, 7, 4, 6, 2, 1, 5}},
		{"academic flag conjoins with statuses", "statuses=active&in_academic=true", []int64{}},
		{"combined", "statuses=active,expelled&education_types=budget&start_date=2020-01-01&end_date=2022-12-31", []int64{3, 7, 6, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, run(t, tt.query))
		})
	}
}

// statuses and expulsion_reasons form one clause and are dropped together;
// every other parameter is an independent refinement.
func TestBuildStudentQuery_RemovingAKeyNeverNarrows(t *testing.T) {
	full := url.Values{
		ParamStatuses:           {"active,expelled"},
		ParamExpulsionReasons:   {"transfer"},
		ParamEnrollmentDate:     {"2020-09-01"},
		ParamStartDate:          {"2019-01-01"},
		ParamEndDate:            {"2023-01-01"},
		ParamCurrentDepartments: {"1,2"},
		ParamCurrentPrograms:    {"10,20"},
		ParamEducationTypes:     {"budget,contract"},
		ParamAdmissionBases:     {"general,target"},
	}
	base := run(t, full.Encode())
	require.NotEmpty(t, base)

	groups := [][]string{
		{ParamStatuses, ParamExpulsionReasons},
		{ParamEnrollmentDate},
		{ParamStartDate},
		{ParamEndDate},
		{ParamCurrentDepartments},
		{ParamCurrentPrograms},
		{ParamEducationTypes},
		{ParamAdmissionBases},
	}
	for _, group := range groups {
		t.Run(strings.Join(group, "+"), func(t *testing.T) {
			reduced := url.Values{}
			for k, v := range full {
				if !slices.Contains(group, k) {
					reduced[k] = v
				}
			}
			wider := run(t, reduced.Encode())
			assert.Subset(t, wider, base, "dropping %v narrowed the result", group)
		})
	}
}

// Without statuses the reasons clause stands alone, so dropping statuses
// loses the regular-status students.
func TestBuildStudentQuery_DroppingStatusesBesideReasonsNarrows(t *testing.T) {
	withStatuses := run(t, "statuses=active,expelled&expulsion_reasons=transfer")
	reasonsOnly := run(t, "expulsion_reasons=transfer")

	assert.Equal(t, []int64{7, 6, 2, 1}, withStatuses)
	assert.Equal(t, []int64{2}, reasonsOnly)
	assert.NotSubset(t, reasonsOnly, withStatuses)
}

func TestQueryApply_DoesNotMutateInput(t *testing.T) {
	students := fixture()
	_ = BuildStudentQuery(Params{}).Apply(students)
	assert.Equal(t, int64(1), students[0].ID)
	assert.Equal(t, int64(7), students[6].ID)
}

func TestSortStudents_RussianNames(t *testing.T) {
	students := []*models.Student{
		{ID: 1, LastName: "Иванов", FirstName: "Борис"},
		{ID: 2, LastName: "Петров", FirstName: "Антон"},
		{ID: 3, LastName: "Антонов", FirstName: "Яков"},
		{ID: 4, LastName: "Иванов", FirstName: "Антон"},
	}
	SortStudents(students)

	var names []string
	for _, s := range students {
		names = append(names, s.LastName+" "+s.FirstName)
	}
	assert.Equal(t, []string{"Антонов Яков", "Иванов Антон", "Иванов Борис", "Петров Антон"}, names)
}
