package filter

import (
	"slices"
	"strconv"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/studentregistry/internal/app/models"
	"github.com/yigit/studentregistry/internal/pkg/helpers"
)

// ProgramFilter restricts the program listing to a set of departments.
type ProgramFilter struct {
	// DepartmentIDs is nil when every program is wanted
	DepartmentIDs []int64
	// Rejected is set when the id list held a non-numeric token; nothing matches then.
	Rejected bool
}

// ParseProgramFilter reads the department_id query value ("", "3" or "1,2,5").
func ParseProgramFilter(raw string) ProgramFilter {
	tokens := helpers.SplitCSV(raw)
	if len(tokens) == 0 {
		return ProgramFilter{}
	}

	ids, invalid := helpers.ParseIDs(tokens)
	if len(invalid) > 0 {
		return ProgramFilter{Rejected: true}
	}
	return ProgramFilter{DepartmentIDs: ids}
}

// MatchesNothing reports whether the filter can be answered without storage.
func (f ProgramFilter) MatchesNothing() bool {
	return f.Rejected
}

// Match reports whether p passes the filter.
func (f ProgramFilter) Match(p *models.Program) bool {
	if f.Rejected {
		return false
	}
	if f.DepartmentIDs == nil {
		return true
	}
	return p.DepartmentID != nil && slices.Contains(f.DepartmentIDs, *p.DepartmentID)
}

// Sqlizer renders the filter against the "p" programs alias.
func (f ProgramFilter) Sqlizer() squirrel.Sqlizer {
	switch {
	case f.Rejected:
		return squirrel.Expr(sqlFalse)
	case f.DepartmentIDs == nil:
		return squirrel.Expr(sqlTrue)
	default:
		return squirrel.Eq{"p.department_id": f.DepartmentIDs}
	}
}

// CacheKey identifies the filter for listing caches.
func (f ProgramFilter) CacheKey() string {
	switch {
	case f.Rejected:
		return "none"
	case f.DepartmentIDs == nil:
		return "all"
	}

	ids := slices.Clone(f.DepartmentIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)
	key := "dept"
	for _, id := range ids {
		key += ":" + strconv.FormatInt(id, 10)
	}
	return key
}
