package filter

import (
	"net/url"
	"strings"
	"time"

	"github.com/yigit/studentregistry/internal/pkg/helpers"
	"github.com/yigit/studentregistry/internal/pkg/logger"
)

// Recognised student list parameters
const (
	ParamStatuses           = "statuses"
	ParamExpulsionReasons   = "expulsion_reasons"
	ParamEnrollmentDate     = "enrollment_date"
	ParamStartDate          = "start_date"
	ParamEndDate            = "end_date"
	ParamCurrentDepartments = "current_departments"
	ParamCurrentPrograms    = "current_programs"
	ParamEducationTypes     = "education_types"
	ParamAdmissionBases     = "admission_bases"
	ParamInAcademic         = "in_academic"
)

// Params holds raw query parameters, one string per key; list values are comma-joined.
type Params map[string]string

// ParamsFromValues keeps the first value of every query key.
func ParamsFromValues(values url.Values) Params {
	return Params(helpers.FirstValues(values))
}

// List returns the non-empty comma separated tokens of key.
func (p Params) List(key string) []string {
	return helpers.SplitCSV(p[key])
}

// Date parses key as YYYY-MM-DD. Missing and malformed values both report false;
// malformed ones are logged since they are dropped silently otherwise.
func (p Params) Date(key string) (time.Time, bool) {
	raw, ok := p[key]
	if !ok || strings.TrimSpace(raw) == "" {
		return time.Time{}, false
	}

	d, err := helpers.ParseDate(raw)
	if err != nil {
		logger.Debug().Str("param", key).Str("value", raw).Msg("Ignoring malformed date parameter")
		return time.Time{}, false
	}
	return d, true
}

// IDs parses the id list under key. Tokens that are not integers cannot match any
// row, so they are dropped; a list made only of such tokens yields an empty slice.
func (p Params) IDs(key string) ([]int64, bool) {
	tokens := p.List(key)
	if len(tokens) == 0 {
		return nil, false
	}

	ids, invalid := helpers.ParseIDs(tokens)
	if len(invalid) > 0 {
		logger.Debug().Str("param", key).Strs("tokens", invalid).Msg("Dropping non-numeric ids")
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, true
}

// Flag reports whether key is literally "true", ignoring case.
func (p Params) Flag(key string) bool {
	return strings.EqualFold(p[key], "true")
}
