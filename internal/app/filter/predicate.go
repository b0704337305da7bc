// Package filter turns student list query parameters into a single predicate tree.
// The same tree is evaluated in process by the memory store and rendered to SQL
// (through squirrel) by the PostgreSQL repositories.
package filter

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/yigit/studentregistry/internal/app/models"
	"github.com/yigit/studentregistry/internal/pkg/helpers"
)

const (
	sqlTrue  = "(1=1)"
	sqlFalse = "(1=0)"
)

// Predicate is a boolean condition over a student record.
type Predicate interface {
	squirrel.Sqlizer
	Match(s *models.Student) bool
	String() string
}

// StringField is a text/enum column of the students table
type StringField struct {
	Name   string
	Column string
	get    func(*models.Student) string
}

// IDField is a nullable foreign key column of the students table
type IDField struct {
	Name   string
	Column string
	get    func(*models.Student) *int64
}

// DateField is a calendar date column of the students table
type DateField struct {
	Name   string
	Column string
	get    func(*models.Student) time.Time
}

// Student columns usable in predicates. Columns are qualified with the "s" alias
// the student repository selects from.
var (
	FieldStatus = StringField{"status", "s.status", func(s *models.Student) string {
		return string(s.Status)
	}}
	FieldExpulsionReason = StringField{"expulsion_reason", "s.expulsion_reason", func(s *models.Student) string {
		return string(s.ExpulsionReason)
	}}
	FieldEducationType = StringField{"education_type", "s.education_type", func(s *models.Student) string {
		return string(s.EducationType)
	}}
	FieldAdmissionBasis = StringField{"admission_basis", "s.admission_basis", func(s *models.Student) string {
		return string(s.AdmissionBasis)
	}}
	FieldCurrentDepartment = IDField{"current_department_id", "s.current_department_id", func(s *models.Student) *int64 {
		return s.CurrentDepartmentID
	}}
	FieldCurrentProgram = IDField{"current_program_id", "s.current_program_id", func(s *models.Student) *int64 {
		return s.CurrentProgramID
	}}
	FieldEnrollmentDate = DateField{"enrollment_date", "s.enrollment_date", func(s *models.Student) time.Time {
		return s.EnrollmentDate
	}}
)

// In keeps students whose field value is one of values.
func (f StringField) In(values ...string) Predicate {
	return stringIn{field: f, values: values}
}

// Eq keeps students whose field equals value.
func (f StringField) Eq(value string) Predicate {
	return f.In(value)
}

// In keeps students whose id column is set and listed in ids.
func (f IDField) In(ids ...int64) Predicate {
	return idIn{field: f, ids: ids}
}

// Between keeps students whose date lies in [from, to]. An inverted range matches nothing.
func (f DateField) Between(from, to time.Time) Predicate {
	return dateBetween{field: f, from: helpers.DateOnly(from), to: helpers.DateOnly(to)}
}

// On keeps students whose date is exactly day.
func (f DateField) On(day time.Time) Predicate {
	return f.Between(day, day)
}

type stringIn struct {
	field  StringField
	values []string
}

func (p stringIn) Match(s *models.Student) bool {
	return slices.Contains(p.values, p.field.get(s))
}

func (p stringIn) ToSql() (string, []interface{}, error) {
	if len(p.values) == 0 {
		return sqlFalse, nil, nil
	}
	if len(p.values) == 1 {
		return squirrel.Eq{p.field.Column: p.values[0]}.ToSql()
	}
	return squirrel.Eq{p.field.Column: p.values}.ToSql()
}

func (p stringIn) String() string {
	return fmt.Sprintf("%s IN [%s]", p.field.Name, strings.Join(p.values, ","))
}

type idIn struct {
	field IDField
	ids   []int64
}

func (p idIn) Match(s *models.Student) bool {
	v := p.field.get(s)
	return v != nil && slices.Contains(p.ids, *v)
}

func (p idIn) ToSql() (string, []interface{}, error) {
	if len(p.ids) == 0 {
		return sqlFalse, nil, nil
	}
	if len(p.ids) == 1 {
		return squirrel.Eq{p.field.Column: p.ids[0]}.ToSql()
	}
	return squirrel.Eq{p.field.Column: p.ids}.ToSql()
}

func (p idIn) String() string {
	parts := make([]string, len(p.ids))
	for i, id := range p.ids {
		parts[i] = fmt.Sprint(id)
	}
	return fmt.Sprintf("%s IN [%s]", p.field.Name, strings.Join(parts, ","))
}

type dateBetween struct {
	field    DateField
	from, to time.Time
}

func (p dateBetween) Match(s *models.Student) bool {
	d := helpers.DateOnly(p.field.get(s))
	return !d.Before(p.from) && !d.After(p.to)
}

func (p dateBetween) ToSql() (string, []interface{}, error) {
	if p.from.Equal(p.to) {
		return squirrel.Eq{p.field.Column: p.from}.ToSql()
	}
	return squirrel.And{
		squirrel.GtOrEq{p.field.Column: p.from},
		squirrel.LtOrEq{p.field.Column: p.to},
	}.ToSql()
}

func (p dateBetween) String() string {
	if p.from.Equal(p.to) {
		return fmt.Sprintf("%s = %s", p.field.Name, helpers.FormatDate(p.from))
	}
	return fmt.Sprintf("%s BETWEEN %s AND %s", p.field.Name, helpers.FormatDate(p.from), helpers.FormatDate(p.to))
}

// constant is the match-all / match-nothing predicate
type constant bool

// All matches every student.
func All() Predicate { return constant(true) }

// None matches no student.
func None() Predicate { return constant(false) }

func (c constant) Match(*models.Student) bool { return bool(c) }

func (c constant) ToSql() (string, []interface{}, error) {
	if c {
		return sqlTrue, nil, nil
	}
	return sqlFalse, nil, nil
}

func (c constant) String() string {
	if c {
		return "ALL"
	}
	return "NONE"
}

// IsAll reports whether p places no restriction at all.
func IsAll(p Predicate) bool {
	c, ok := p.(constant)
	return ok && bool(c)
}

type conj struct {
	op    string
	terms []Predicate
}

// And conjoins terms. Match-all terms are dropped; with nothing left the result is All.
func And(terms ...Predicate) Predicate {
	kept := make([]Predicate, 0, len(terms))
	for _, t := range terms {
		if t == nil || IsAll(t) {
			continue
		}
		if nested, ok := t.(conj); ok && nested.op == "AND" {
			kept = append(kept, nested.terms...)
			continue
		}
		kept = append(kept, t)
	}

	switch len(kept) {
	case 0:
		return All()
	case 1:
		return kept[0]
	}
	return conj{op: "AND", terms: kept}
}

// Or disjoins terms. With no terms the result is None.
func Or(terms ...Predicate) Predicate {
	kept := make([]Predicate, 0, len(terms))
	for _, t := range terms {
		if t == nil {
			continue
		}
		if IsAll(t) {
			return All()
		}
		kept = append(kept, t)
	}

	switch len(kept) {
	case 0:
		return None()
	case 1:
		return kept[0]
	}
	return conj{op: "OR", terms: kept}
}

func (c conj) Match(s *models.Student) bool {
	if c.op == "AND" {
		for _, t := range c.terms {
			if !t.Match(s) {
				return false
			}
		}
		return true
	}

	for _, t := range c.terms {
		if t.Match(s) {
			return true
		}
	}
	return false
}

func (c conj) ToSql() (string, []interface{}, error) {
	parts := make([]squirrel.Sqlizer, len(c.terms))
	for i, t := range c.terms {
		parts[i] = t
	}
	if c.op == "AND" {
		return squirrel.And(parts).ToSql()
	}
	return squirrel.Or(parts).ToSql()
}

func (c conj) String() string {
	parts := make([]string, len(c.terms))
	for i, t := range c.terms {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " "+c.op+" ") + ")"
}
