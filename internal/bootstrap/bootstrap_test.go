package bootstrap

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/studentregistry/internal/app/models"
	"github.com/yigit/studentregistry/internal/app/repositories/memory"
	"github.com/yigit/studentregistry/internal/pkg/cache"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func id(v int64) *int64 { return &v }

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	store := memory.NewStore()
	store.PutDepartment(models.Department{ID: 1, Name: "Кафедра математики", Code: "MATH"})
	store.PutDepartment(models.Department{ID: 2, Name: "Кафедра физики", Code: "PHYS"})
	store.PutProgramGroup(models.ProgramGroup{ID: 1, Code: "1.1", Name: "Математика и механика"})
	store.PutProgram(models.Program{ID: 10, Code: "01.03.01", Name: "Математика", GroupID: id(1), DepartmentID: id(1), IsActive: true,
		EducationLevel: models.EducationLevel("undergraduate")})
	store.PutProgram(models.Program{ID: 20, Code: "03.03.02", Name: "Физика", DepartmentID: id(2), IsActive: true,
		EducationLevel: models.EducationLevel("undergraduate")})

	deps := BuildDependencies(store.Repositories(), cache.Nop{}, time.Minute, log.Logger)
	return NewRouter(deps)
}

func do(t *testing.T, router *gin.Engine, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeObject(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func student(last, first, enrolled string, extra map[string]interface{}) map[string]interface{} {
	body := map[string]interface{}{
		"last_name":             last,
		"first_name":            first,
		"citizenship":           "РФ",
		"enrollment_date":       enrolled,
		"current_department_id": 1,
		"current_program_id":    10,
	}
	for k, v := range extra {
		body[k] = v
	}
	return body
}

func names(list []map[string]interface{}) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s["last_name"].(string))
	}
	return out
}

func TestStudentsEndpoint_EmptyStoreReturnsEmptyArray(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/api/v1/students", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestStudentsEndpoint_CreateThenFilterByEnrollmentDate(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/v1/students", student("Петров", "Пётр", "2021-09-01", nil))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeObject(t, w)
	assert.Equal(t, "active", created["status"])
	assert.Equal(t, "2021-09-01", created["enrollment_date"])
	assert.Equal(t, "budget", created["education_type"])
	assert.Equal(t, []interface{}{}, created["transfer_history"])
	dept := created["current_department"].(map[string]interface{})
	assert.Equal(t, "Кафедра математики", dept["name"])

	w = do(t, router, http.MethodPost, "/api/v1/students/", student("Антонов", "Антон", "2022-09-01", nil))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, router, http.MethodGet, "/api/v1/students/?enrollment_date=2021-09-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, created["id"], list[0]["id"])

	w = do(t, router, http.MethodGet, "/api/v1/students?enrollment_date=not-a-date", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"Антонов", "Петров"}, names(decodeList(t, w)))
}

func TestStudentsEndpoint_StatusOverrideRule(t *testing.T) {
	router := newTestRouter(t)

	bodies := []map[string]interface{}{
		student("Бойко", "Олег", "2021-09-01", nil),
		student("Власов", "Игорь", "2021-09-01", map[string]interface{}{
			"status": "expelled", "expulsion_date": "2022-01-15", "expulsion_reason": "transfer"}),
		student("Григорьев", "Павел", "2021-09-01", map[string]interface{}{
			"status": "expelled", "expulsion_date": "2022-01-15", "expulsion_reason": "academic_failure"}),
		student("Дмитриев", "Роман", "2021-09-01", map[string]interface{}{
			"status": "academic", "academic_leave_start": "2022-02-01", "academic_leave_end": "2023-02-01"}),
	}
	for _, b := range bodies {
		w := do(t, router, http.MethodPost, "/api/v1/students", b)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"statuses=expelled", []string{"Власов", "Григорьев"}},
		{"statuses=expelled,active&expulsion_reasons=transfer", []string{"Бойко", "Власов"}},
		{"in_academic=true", []string{"Дмитриев"}},
		{"start_date=2020-01-01&end_date=2019-01-01", []string{}},
		{"current_departments=2", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			w := do(t, router, http.MethodGet, "/api/v1/students?"+tt.query, nil)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, names(decodeList(t, w)))
		})
	}
}

func TestStudentsEndpoint_CreateValidation(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name     string
		body     map[string]interface{}
		wantCode string
	}{
		{"missing last name", map[string]interface{}{"first_name": "Иван", "citizenship": "РФ", "enrollment_date": "2021-09-01"}, "VAL_001"},
		{"bad enum", student("Иванов", "Иван", "2021-09-01", map[string]interface{}{"education_type": "free"}), "VAL_001"},
		{"bad date", student("Иванов", "Иван", "01.09.2021", nil), "VAL_001"},
		{"course out of range", student("Иванов", "Иван", "2021-09-01", map[string]interface{}{"course": 7}), "VAL_001"},
		{"unknown department", student("Иванов", "Иван", "2021-09-01", map[string]interface{}{"current_department_id": 99}), "RES_001"},
		{"expelled without date", student("Иванов", "Иван", "2021-09-01", map[string]interface{}{"status": "expelled", "expulsion_reason": "other"}), "VAL_001"},
		{"graduation before enrollment", student("Иванов", "Иван", "2021-09-01", map[string]interface{}{"status": "graduated", "graduation_date": "2020-01-01"}), "VAL_002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, router, http.MethodPost, "/api/v1/students", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

			resp := decodeObject(t, w)
			assert.Equal(t, false, resp["success"])
			detail := resp["error"].(map[string]interface{})
			assert.Equal(t, tt.wantCode, detail["code"])
		})
	}

	w := do(t, router, http.MethodGet, "/api/v1/students", nil)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestStudentsEndpoint_ValidationReportsJSONFieldNames(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodPost, "/api/v1/students", map[string]interface{}{"first_name": "Иван"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	detail := decodeObject(t, w)["error"].(map[string]interface{})
	fields := map[string]bool{}
	for _, e := range detail["details"].([]interface{}) {
		fields[e.(map[string]interface{})["field"].(string)] = true
	}
	assert.True(t, fields["last_name"])
	assert.True(t, fields["citizenship"])
	assert.True(t, fields["enrollment_date"])
}

func TestEnrollmentStatsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	for _, last := range []string{"Петров", "Антонов"} {
		w := do(t, router, http.MethodPost, "/api/v1/students", student(last, "Иван", "2021-09-01", nil))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := do(t, router, http.MethodGet, "/api/v1/enrollment-stats", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Date parameter is required"}`, w.Body.String())

	w = do(t, router, http.MethodGet, "/api/v1/enrollment-stats/?date=2021-13-01", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Invalid date format. Use YYYY-MM-DD"}`, w.Body.String())

	w = do(t, router, http.MethodGet, "/api/v1/enrollment-stats?date=2021-09-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeObject(t, w)
	assert.Equal(t, "2021-09-01", resp["date"])
	assert.Equal(t, float64(2), resp["count"])
	students := resp["students"].([]interface{})
	require.Len(t, students, 2)
	assert.Equal(t, "Антонов", students[0].(map[string]interface{})["last_name"])

	w = do(t, router, http.MethodGet, "/api/v1/enrollment-stats?date=2030-01-01", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"date":"2030-01-01","count":0,"students":[]}`, w.Body.String())
}

func TestCatalogEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/api/v1/departments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	departments := decodeList(t, w)
	require.Len(t, departments, 2)
	assert.Equal(t, "MATH", departments[0]["code"])

	w = do(t, router, http.MethodGet, "/api/v1/programs", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)

	w = do(t, router, http.MethodGet, "/api/v1/programs/?department_id=1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	programs := decodeList(t, w)
	require.Len(t, programs, 1)
	assert.Equal(t, "01.03.01", programs[0]["code"])
	group := programs[0]["program_group"].(map[string]interface{})
	assert.Equal(t, "1.1", group["code"])

	w = do(t, router, http.MethodGet, "/api/v1/programs?department_id=abc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = do(t, router, http.MethodGet, "/api/v1/programs?department_id=1,2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)
}

func TestRequestIDAndHealth(t *testing.T) {
	router := newTestRouter(t)

	w := do(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "pong", rec.Body.String())
	assert.Equal(t, "abc-123", rec.Header().Get("X-Request-ID"))
}
