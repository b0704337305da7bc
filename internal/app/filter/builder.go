package filter

import (
	"slices"

	"github.com/yigit/studentregistry/internal/app/models"
	"github.com/yigit/studentregistry/internal/pkg/logger"
)

// paramSpec binds one or more query keys to the predicate they contribute.
// build returns false when the keys are absent or malformed; such parameters
// leave the result untouched.
type paramSpec struct {
	keys  []string
	build func(p Params) (Predicate, bool)
}

// refinements are AND-ed onto the status clause in table order.
var refinements = []paramSpec{
	{
		keys: []string{ParamEnrollmentDate},
		build: func(p Params) (Predicate, bool) {
			d, ok := p.Date(ParamEnrollmentDate)
			if !ok {
				return nil, false
			}
			return FieldEnrollmentDate.On(d), true
		},
	},
	{
		keys: []string{ParamStartDate, ParamEndDate},
		build: func(p Params) (Predicate, bool) {
			from, okFrom := p.Date(ParamStartDate)
			to, okTo := p.Date(ParamEndDate)
			if !okFrom || !okTo {
				return nil, false
			}
			return FieldEnrollmentDate.Between(from, to), true
		},
	},
	{
		keys:  []string{ParamCurrentDepartments},
		build: idMembership(ParamCurrentDepartments, FieldCurrentDepartment),
	},
	{
		keys:  []string{ParamCurrentPrograms},
		build: idMembership(ParamCurrentPrograms, FieldCurrentProgram),
	},
	{
		keys:  []string{ParamEducationTypes},
		build: stringMembership(ParamEducationTypes, FieldEducationType),
	},
	{
		keys:  []string{ParamAdmissionBases},
		build: stringMembership(ParamAdmissionBases, FieldAdmissionBasis),
	},
	{
		keys: []string{ParamInAcademic},
		build: func(p Params) (Predicate, bool) {
			if !p.Flag(ParamInAcademic) {
				return nil, false
			}
			return FieldStatus.Eq(string(models.StatusAcademic)), true
		},
	},
}

func idMembership(key string, field IDField) func(Params) (Predicate, bool) {
	return func(p Params) (Predicate, bool) {
		ids, ok := p.IDs(key)
		if !ok {
			return nil, false
		}
		return field.In(ids...), true
	}
}

func stringMembership(key string, field StringField) func(Params) (Predicate, bool) {
	return func(p Params) (Predicate, bool) {
		values := p.List(key)
		if len(values) == 0 {
			return nil, false
		}
		return field.In(values...), true
	}
}

// statusClause combines statuses and expulsion_reasons. Regular statuses and the
// expelled clause are OR-ed; expulsion_reasons, when given, replaces a bare
// "expelled" entry in statuses instead of adding to it.
func statusClause(p Params) Predicate {
	expelled := string(models.StatusExpelled)

	statuses := p.List(ParamStatuses)
	wantsExpelled := slices.Contains(statuses, expelled)
	regular := slices.DeleteFunc(slices.Clone(statuses), func(s string) bool { return s == expelled })
	reasons := p.List(ParamExpulsionReasons)

	var terms []Predicate
	if len(regular) > 0 {
		terms = append(terms, FieldStatus.In(regular...))
	}
	switch {
	case len(reasons) > 0:
		terms = append(terms, And(FieldStatus.Eq(expelled), FieldExpulsionReason.In(reasons...)))
	case wantsExpelled:
		terms = append(terms, FieldStatus.Eq(expelled))
	}

	if len(terms) == 0 {
		return All()
	}
	return Or(terms...)
}

// BuildStudentQuery translates list parameters into a Query. It never fails:
// unknown keys are ignored and malformed values disable only their own filter.
func BuildStudentQuery(p Params) Query {
	terms := []Predicate{statusClause(p)}
	var applied []string
	for _, spec := range refinements {
		if pred, ok := spec.build(p); ok {
			terms = append(terms, pred)
			applied = append(applied, spec.keys...)
		}
	}

	q := NewStudentQuery(And(terms...))
	logger.Debug().Strs("refinements", applied).Stringer("where", q.Where).Msg("Built student query")
	return q
}
