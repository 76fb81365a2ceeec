package ui

import (
	"net/url"
	"strconv"
	"strings"

	"hrdash/domain/dashboard"
	"hrdash/domain/employee"
	"hrdash/internal/errors"
)

// Query parameter names shared by the HTML form and the JSON API
const (
	ParamDepartment = "department"
	ParamJobRole    = "job_role"
	ParamAgeMin     = "age_min"
	ParamAgeMax     = "age_max"
	ParamHeatmap    = "heatmap"
)

// ParseSelection overlays query parameters on base. Absent parameters keep
// the base value. A syntactically invalid number or flag returns an
// INVALID_INPUT error together with the selection parsed so far, so HTML
// callers can still render with the remaining values.
func ParseSelection(base dashboard.Selection, query url.Values) (dashboard.Selection, error) {
	sel := base
	var firstErr error
	fail := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	if v, ok := lookup(query, ParamDepartment); ok {
		sel = sel.WithDepartment(v)
	}
	if v, ok := lookup(query, ParamJobRole); ok {
		sel = sel.WithJobRole(v)
	}
	if v, ok := lookup(query, ParamAgeMin); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			fail(errors.InvalidInput("age_min must be an integer, got " + strconv.Quote(v)))
		} else {
			sel.Age.Min = n
		}
	}
	if v, ok := lookup(query, ParamAgeMax); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			fail(errors.InvalidInput("age_max must be an integer, got " + strconv.Quote(v)))
		} else {
			sel.Age.Max = n
		}
	}
	if v, ok := lookup(query, ParamHeatmap); ok {
		show, err := parseFlag(v)
		if err != nil {
			fail(errors.InvalidInput("heatmap must be a boolean, got " + strconv.Quote(v)))
		} else {
			sel = sel.WithHeatmap(show)
		}
	}
	return sel, firstErr
}

// EncodeSelection is the inverse of ParseSelection, used for links
func EncodeSelection(sel dashboard.Selection) url.Values {
	q := url.Values{}
	q.Set(ParamDepartment, sel.Department)
	q.Set(ParamJobRole, sel.JobRole)
	q.Set(ParamAgeMin, strconv.Itoa(sel.Age.Min))
	q.Set(ParamAgeMax, strconv.Itoa(sel.Age.Max))
	if sel.ShowHeatmap {
		q.Set(ParamHeatmap, "true")
	}
	return q
}

// departmentParam returns the requested department, defaulting to All
func departmentParam(query url.Values) string {
	if v, ok := lookup(query, ParamDepartment); ok {
		return v
	}
	return employee.Wildcard
}

func lookup(query url.Values, key string) (string, bool) {
	if _, ok := query[key]; !ok {
		return "", false
	}
	v := strings.TrimSpace(query.Get(key))
	return v, v != ""
}

// parseFlag also accepts "on", which is what an HTML checkbox submits
func parseFlag(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	return strconv.ParseBool(v)
}
