package filter

import (
	"sort"

	"hrdash/domain/dashboard"
	"hrdash/domain/employee"
)

// ============================================================================
// OPTIONS — values offered by the sidebar controls
// ============================================================================
// Options are always derived from the full table, never from a filtered view,
// so narrowing one control cannot hide choices from another.
// ============================================================================

// DepartmentOptions returns the wildcard followed by every observed department.
func DepartmentOptions(table *employee.Table) []string {
	return withWildcard(distinct(table, func(e employee.Employee) (string, bool) {
		return e.Department, true
	}))
}

// AvailableJobRoles returns the sorted distinct job roles for a department.
// The wildcard department yields every job role; an unknown department yields
// an empty, non-nil slice.
func AvailableJobRoles(table *employee.Table, department string) []string {
	return distinct(table, func(e employee.Employee) (string, bool) {
		return e.JobRole, department == employee.Wildcard || e.Department == department
	})
}

// JobRoleOptions returns the wildcard followed by AvailableJobRoles.
func JobRoleOptions(table *employee.Table, department string) []string {
	return withWildcard(AvailableJobRoles(table, department))
}

// IsValidJobRole reports whether role may be selected alongside department.
func IsValidJobRole(table *employee.Table, department, role string) bool {
	if role == employee.Wildcard {
		return true
	}
	for _, r := range AvailableJobRoles(table, department) {
		if r == role {
			return true
		}
	}
	return false
}

// AgeBounds returns the observed minimum and maximum age. An empty table
// yields the zero range.
func AgeBounds(table *employee.Table) dashboard.AgeRange {
	if table.Len() == 0 {
		return dashboard.AgeRange{}
	}
	bounds := dashboard.AgeRange{Min: table.Records[0].Age, Max: table.Records[0].Age}
	for _, e := range table.Records[1:] {
		if e.Age < bounds.Min {
			bounds.Min = e.Age
		}
		if e.Age > bounds.Max {
			bounds.Max = e.Age
		}
	}
	return bounds
}

// DefaultAgeRange clamps the preferred default range into the observed bounds.
// If the two do not overlap the full observed range is used.
func DefaultAgeRange(table *employee.Table, preferred dashboard.AgeRange) dashboard.AgeRange {
	bounds := AgeBounds(table)
	r := dashboard.AgeRange{
		Min: max(preferred.Min, bounds.Min),
		Max: min(preferred.Max, bounds.Max),
	}
	if r.Empty() {
		return bounds
	}
	return r
}

// ============================================================================
// SELECTION
// ============================================================================

// Normalize enforces the cascading rule: a job role that is not offered for
// the selected department resets to the wildcard. Everything else is kept.
func Normalize(table *employee.Table, sel dashboard.Selection) dashboard.Selection {
	if sel.Department == "" {
		sel.Department = employee.Wildcard
	}
	if sel.JobRole == "" || !IsValidJobRole(table, sel.Department, sel.JobRole) {
		sel.JobRole = employee.Wildcard
	}
	return sel
}

// ChangeDepartment returns the selection after the user picks a department.
func ChangeDepartment(table *employee.Table, sel dashboard.Selection, department string) dashboard.Selection {
	return Normalize(table, sel.WithDepartment(department))
}

// ============================================================================
// FILTERING
// ============================================================================

// Predicate decides whether a record belongs to the view.
type Predicate func(employee.Employee) bool

// ByDepartment matches a department; the wildcard matches everything.
func ByDepartment(department string) Predicate {
	return func(e employee.Employee) bool {
		return department == employee.Wildcard || e.Department == department
	}
}

// ByJobRole matches a job role; the wildcard matches everything.
func ByJobRole(role string) Predicate {
	return func(e employee.Employee) bool {
		return role == employee.Wildcard || e.JobRole == role
	}
}

// ByAge matches ages in the inclusive range.
func ByAge(r dashboard.AgeRange) Predicate {
	return func(e employee.Employee) bool {
		return r.Contains(e.Age)
	}
}

// Where returns the records matching every predicate, in input order.
func Where(records []employee.Employee, preds ...Predicate) []employee.Employee {
	out := make([]employee.Employee, 0, len(records))
	for _, e := range records {
		if matchAll(e, preds) {
			out = append(out, e)
		}
	}
	return out
}

// ApplyFilters returns the records matching department, job role and the
// inclusive age range, preserving table order. An inverted range matches
// nothing.
func ApplyFilters(table *employee.Table, department, jobRole string, ageMin, ageMax int) []employee.Employee {
	if table == nil {
		return []employee.Employee{}
	}
	return Where(table.Records,
		ByDepartment(department),
		ByJobRole(jobRole),
		ByAge(dashboard.AgeRange{Min: ageMin, Max: ageMax}),
	)
}

// ApplySelection is ApplyFilters driven by a Selection.
func ApplySelection(table *employee.Table, sel dashboard.Selection) []employee.Employee {
	return ApplyFilters(table, sel.Department, sel.JobRole, sel.Age.Min, sel.Age.Max)
}

func matchAll(e employee.Employee, preds []Predicate) bool {
	for _, p := range preds {
		if !p(e) {
			return false
		}
	}
	return true
}

func distinct(table *employee.Table, key func(employee.Employee) (string, bool)) []string {
	values := []string{}
	if table == nil {
		return values
	}
	seen := make(map[string]bool)
	for _, e := range table.Records {
		v, ok := key(e)
		if !ok || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

func withWildcard(values []string) []string {
	return append([]string{employee.Wildcard}, values...)
}
