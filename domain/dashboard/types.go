package dashboard

import (
	"encoding/json"
	"math"
	"strconv"

	"hrdash/domain/employee"
)

// ============================================================================
// FILTER STATE
// ============================================================================

// AgeRange is an inclusive age interval.
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether age lies in the inclusive range. An inverted range
// contains nothing.
func (r AgeRange) Contains(age int) bool {
	return r.Min <= age && age <= r.Max
}

// Empty reports whether the range is inverted.
func (r AgeRange) Empty() bool {
	return r.Min > r.Max
}

// Selection is the filter state for one render cycle. It is a plain value:
// every interaction produces a new Selection rather than mutating one.
type Selection struct {
	Department  string   `json:"department"`
	JobRole     string   `json:"job_role"`
	Age         AgeRange `json:"age"`
	ShowHeatmap bool     `json:"show_heatmap"`
}

// NewSelection returns an unrestricted selection over the given age range.
func NewSelection(age AgeRange) Selection {
	return Selection{
		Department: employee.Wildcard,
		JobRole:    employee.Wildcard,
		Age:        age,
	}
}

// WithDepartment returns a copy with the department replaced.
func (s Selection) WithDepartment(dept string) Selection {
	s.Department = dept
	return s
}

// WithJobRole returns a copy with the job role replaced.
func (s Selection) WithJobRole(role string) Selection {
	s.JobRole = role
	return s
}

// WithAge returns a copy with the age range replaced.
func (s Selection) WithAge(lo, hi int) Selection {
	s.Age = AgeRange{Min: lo, Max: hi}
	return s
}

// WithHeatmap returns a copy with the heatmap toggle replaced.
func (s Selection) WithHeatmap(show bool) Selection {
	s.ShowHeatmap = show
	return s
}

// Options are the choices offered by the sidebar controls.
type Options struct {
	Departments []string `json:"departments"`
	JobRoles    []string `json:"job_roles"`
	AgeBounds   AgeRange `json:"age_bounds"`
	DefaultAge  AgeRange `json:"default_age"`
}

// ============================================================================
// DERIVED SUMMARIES
// ============================================================================

// NoData labels an aggregate that is undefined on an empty view.
const NoData = "no data"

// Metrics are the summary tiles.
type Metrics struct {
	TotalEmployees  int      `json:"total_employees"`
	MeanIncome      *float64 `json:"mean_income"`
	MeanIncomeLabel string   `json:"mean_income_label"`
}

// CategoryCount is one bar or slice of a distribution chart.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// IncomeAgePoint is one scatter point.
type IncomeAgePoint struct {
	EmpID         string  `json:"emp_id,omitempty"`
	Age           int     `json:"age"`
	MonthlyIncome float64 `json:"monthly_income"`
	Attrition     string  `json:"attrition"`
	JobRole       string  `json:"job_role"`
}

// AgeIncome is the mean income of one age group.
type AgeIncome struct {
	Age        int     `json:"age"`
	MeanIncome float64 `json:"mean_income"`
	Count      int     `json:"count"`
}

// RoleIncome is the mean income of one job-role group.
type RoleIncome struct {
	JobRole    string  `json:"job_role"`
	MeanIncome float64 `json:"mean_income"`
	Count      int     `json:"count"`
}

// Correlation is a Pearson coefficient that may be undefined (NaN).
type Correlation float64

// Defined reports whether the coefficient is a number.
func (c Correlation) Defined() bool {
	return !math.IsNaN(float64(c))
}

func (c Correlation) String() string {
	if !c.Defined() {
		return "n/a"
	}
	return strconv.FormatFloat(float64(c), 'f', 2, 64)
}

// MarshalJSON encodes undefined coefficients as null.
func (c Correlation) MarshalJSON() ([]byte, error) {
	if !c.Defined() || math.IsInf(float64(c), 0) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(c))
}

// CorrelationMatrix is a square matrix over Columns, row-major.
type CorrelationMatrix struct {
	Columns []string        `json:"columns"`
	Values  [][]Correlation `json:"values"`
}

// At returns the coefficient for a column pair.
func (m *CorrelationMatrix) At(row, col string) (Correlation, bool) {
	i, j := -1, -1
	for k, c := range m.Columns {
		if c == row {
			i = k
		}
		if c == col {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return Correlation(math.NaN()), false
	}
	return m.Values[i][j], true
}

// RecordRow is one line of the record table.
type RecordRow struct {
	EmpID         string  `json:"emp_id"`
	Age           int     `json:"age"`
	JobRole       string  `json:"job_role"`
	Department    string  `json:"department"`
	MonthlyIncome float64 `json:"monthly_income"`
	Attrition     string  `json:"attrition"`
}

// ============================================================================
// RENDER OUTPUT
// ============================================================================

// Section names identify independently rendered regions of the dashboard.
const (
	SectionMetrics      = "metrics"
	SectionEducation    = "education_fields"
	SectionScatter      = "income_vs_age"
	SectionIncomeByAge  = "income_by_age"
	SectionHeatmap      = "satisfaction_heatmap"
	SectionRecords      = "records"
	SectionAttrition    = "attrition"
	SectionIncomeByRole = "income_by_role"
)

// SectionWarning reports a section that could not be rendered. Other sections
// are unaffected.
type SectionWarning struct {
	Section string `json:"section"`
	Message string `json:"message"`
}

// Dashboard is the full output of one render cycle.
type Dashboard struct {
	RenderID  string    `json:"render_id"`
	Selection Selection `json:"selection"`
	Options   Options   `json:"options"`
	Metrics   Metrics   `json:"metrics"`

	EducationFields []CategoryCount    `json:"education_fields"`
	IncomeVsAge     []IncomeAgePoint   `json:"income_vs_age"`
	IncomeByAge     []AgeIncome        `json:"income_by_age"`
	Correlation     *CorrelationMatrix `json:"correlation,omitempty"`
	Attrition       []CategoryCount    `json:"attrition"`
	IncomeByJobRole []RoleIncome       `json:"income_by_job_role"`
	Records         []RecordRow        `json:"records"`

	Warnings []SectionWarning `json:"warnings,omitempty"`
}

// Warning returns the warning for a section, if any.
func (d *Dashboard) Warning(section string) (SectionWarning, bool) {
	for _, w := range d.Warnings {
		if w.Section == section {
			return w, true
		}
	}
	return SectionWarning{}, false
}
