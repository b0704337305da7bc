package filter

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/yigit/studentregistry/internal/app/models"
)

// StudentOrder is the deterministic list ordering: surname, given name, then id.
var StudentOrder = []string{"s.last_name", "s.first_name", "s.id"}

// Query is a compiled student list request.
type Query struct {
	Where   Predicate
	OrderBy []string
}

// NewStudentQuery wraps where with the default student ordering.
func NewStudentQuery(where Predicate) Query {
	if where == nil {
		where = All()
	}
	return Query{Where: where, OrderBy: StudentOrder}
}

// Apply evaluates the query against a snapshot of students and returns the
// matching records sorted by name. The input slice is left untouched.
func (q Query) Apply(students []*models.Student) []*models.Student {
	where := q.Where
	if where == nil {
		where = All()
	}

	out := make([]*models.Student, 0, len(students))
	for _, s := range students {
		if where.Match(s) {
			out = append(out, s)
		}
	}
	SortStudents(out)
	return out
}

// SortStudents orders students by last name and first name using Russian
// collation, breaking ties by id.
func SortStudents(students []*models.Student) {
	// collators are not safe for concurrent use
	c := collate.New(language.Russian)
	sort.SliceStable(students, func(i, j int) bool {
		a, b := students[i], students[j]
		if r := c.CompareString(a.LastName, b.LastName); r != 0 {
			return r < 0
		}
		if r := c.CompareString(a.FirstName, b.FirstName); r != 0 {
			return r < 0
		}
		return a.ID < b.ID
	})
}
