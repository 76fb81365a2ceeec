package employee

// Wildcard is the "no restriction" value for categorical filters.
const Wildcard = "All"

// Column names as they appear in the source file header
const (
	ColEmpID                    = "EmpID"
	ColAge                      = "Age"
	ColDepartment               = "Department"
	ColJobRole                  = "JobRole"
	ColMonthlyIncome            = "MonthlyIncome"
	ColAttrition                = "Attrition"
	ColEducationField           = "EducationField"
	ColJobSatisfaction          = "JobSatisfaction"
	ColEnvironmentSatisfaction  = "EnvironmentSatisfaction"
	ColWorkLifeBalance          = "WorkLifeBalance"
	ColRelationshipSatisfaction = "RelationshipSatisfaction"
	ColPerformanceRating        = "PerformanceRating"
)

// RequiredColumns must be present for the dashboard to start at all.
var RequiredColumns = []string{
	ColAge,
	ColDepartment,
	ColJobRole,
	ColMonthlyIncome,
	ColAttrition,
}

// OptionalColumns feed a single dashboard section each; their absence only
// disables that section.
var OptionalColumns = []string{
	ColEmpID,
	ColEducationField,
	ColJobSatisfaction,
	ColEnvironmentSatisfaction,
	ColWorkLifeBalance,
	ColRelationshipSatisfaction,
	ColPerformanceRating,
}

// RatingColumns are the satisfaction/performance ratings in heatmap order.
var RatingColumns = []string{
	ColJobSatisfaction,
	ColEnvironmentSatisfaction,
	ColWorkLifeBalance,
	ColRelationshipSatisfaction,
	ColPerformanceRating,
}

// RecordColumns are the columns shown in the record table.
var RecordColumns = []string{
	ColEmpID,
	ColAge,
	ColJobRole,
	ColDepartment,
	ColMonthlyIncome,
	ColAttrition,
}

// Employee is one row of the source dataset.
type Employee struct {
	EmpID          string  `json:"emp_id"`
	Age            int     `json:"age"`
	Department     string  `json:"department"`
	JobRole        string  `json:"job_role"`
	MonthlyIncome  float64 `json:"monthly_income"`
	Attrition      string  `json:"attrition"`
	EducationField string  `json:"education_field"`

	JobSatisfaction          float64 `json:"job_satisfaction"`
	EnvironmentSatisfaction  float64 `json:"environment_satisfaction"`
	WorkLifeBalance          float64 `json:"work_life_balance"`
	RelationshipSatisfaction float64 `json:"relationship_satisfaction"`
	PerformanceRating        float64 `json:"performance_rating"`
}

// Rating returns the value of a rating column by name.
func (e Employee) Rating(column string) (float64, bool) {
	switch column {
	case ColJobSatisfaction:
		return e.JobSatisfaction, true
	case ColEnvironmentSatisfaction:
		return e.EnvironmentSatisfaction, true
	case ColWorkLifeBalance:
		return e.WorkLifeBalance, true
	case ColRelationshipSatisfaction:
		return e.RelationshipSatisfaction, true
	case ColPerformanceRating:
		return e.PerformanceRating, true
	default:
		return 0, false
	}
}

// Table is the loaded dataset. It is built once at startup and never mutated
// afterwards, so it is safe to share across requests without locking.
type Table struct {
	Source  string
	Records []Employee
	columns map[string]bool
}

// NewTable builds a table from records and the set of columns found in the source.
func NewTable(source string, records []Employee, columns []string) *Table {
	set := make(map[string]bool, len(columns))
	for _, c := range columns {
		set[c] = true
	}
	return &Table{
		Source:  source,
		Records: records,
		columns: set,
	}
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Records)
}

// HasColumn reports whether the source file carried the column.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	return t.columns[name]
}

// HasColumns reports whether every named column is present.
func (t *Table) HasColumns(names ...string) bool {
	for _, n := range names {
		if !t.HasColumn(n) {
			return false
		}
	}
	return true
}

// MissingColumns returns the subset of names not present, in input order.
func (t *Table) MissingColumns(names ...string) []string {
	var missing []string
	for _, n := range names {
		if !t.HasColumn(n) {
			missing = append(missing, n)
		}
	}
	return missing
}
