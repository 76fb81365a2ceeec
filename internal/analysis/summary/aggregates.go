package summary

import (
	"sort"

	"hrdash/domain/dashboard"
	"hrdash/domain/employee"

	"github.com/montanaflynn/stats"
)

// ============================================================================
// AGGREGATES — pure functions of a filtered view
// ============================================================================
// Every function accepts an empty view and returns zero counts, empty slices
// or an explicit "no data" marker instead of failing.
// ============================================================================

// TotalCount returns the number of records in the view.
func TotalCount(view []employee.Employee) int {
	return len(view)
}

// MeanIncome returns the mean monthly income. ok is false on an empty view.
func MeanIncome(view []employee.Employee) (mean float64, ok bool) {
	return meanOf(incomes(view))
}

// Metrics builds the summary tiles.
func Metrics(view []employee.Employee) dashboard.Metrics {
	m := dashboard.Metrics{
		TotalEmployees:  TotalCount(view),
		MeanIncomeLabel: dashboard.NoData,
	}
	if mean, ok := MeanIncome(view); ok {
		m.MeanIncome = &mean
		m.MeanIncomeLabel = FormatCurrency(mean)
	}
	return m
}

// EducationFieldCounts counts records per education field.
func EducationFieldCounts(view []employee.Employee) []dashboard.CategoryCount {
	return countBy(view, func(e employee.Employee) string { return e.EducationField })
}

// AttritionCounts counts records per attrition value. Any number of distinct
// values is accepted.
func AttritionCounts(view []employee.Employee) []dashboard.CategoryCount {
	return countBy(view, func(e employee.Employee) string { return e.Attrition })
}

// IncomeAgePoints projects each record to a scatter point, in view order.
func IncomeAgePoints(view []employee.Employee) []dashboard.IncomeAgePoint {
	points := make([]dashboard.IncomeAgePoint, 0, len(view))
	for _, e := range view {
		points = append(points, dashboard.IncomeAgePoint{
			EmpID:         e.EmpID,
			Age:           e.Age,
			MonthlyIncome: e.MonthlyIncome,
			Attrition:     e.Attrition,
			JobRole:       e.JobRole,
		})
	}
	return points
}

// MeanIncomeByAge groups by age and averages income, ages ascending.
func MeanIncomeByAge(view []employee.Employee) []dashboard.AgeIncome {
	groups := make(map[int][]float64)
	for _, e := range view {
		groups[e.Age] = append(groups[e.Age], e.MonthlyIncome)
	}

	out := make([]dashboard.AgeIncome, 0, len(groups))
	for age, values := range groups {
		mean, _ := meanOf(values)
		out = append(out, dashboard.AgeIncome{Age: age, MeanIncome: mean, Count: len(values)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Age < out[j].Age })
	return out
}

// MeanIncomeByJobRole groups by job role and averages income, roles ascending.
func MeanIncomeByJobRole(view []employee.Employee) []dashboard.RoleIncome {
	groups := make(map[string][]float64)
	for _, e := range view {
		groups[e.JobRole] = append(groups[e.JobRole], e.MonthlyIncome)
	}

	out := make([]dashboard.RoleIncome, 0, len(groups))
	for role, values := range groups {
		mean, _ := meanOf(values)
		out = append(out, dashboard.RoleIncome{JobRole: role, MeanIncome: mean, Count: len(values)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JobRole < out[j].JobRole })
	return out
}

// countBy counts records per key. Categories are ordered by count descending;
// ties keep first-appearance order.
func countBy(view []employee.Employee, key func(employee.Employee) string) []dashboard.CategoryCount {
	index := make(map[string]int)
	out := []dashboard.CategoryCount{}
	for _, e := range view {
		k := key(e)
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, dashboard.CategoryCount{Category: k})
		}
		out[i].Count++
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

func incomes(view []employee.Employee) []float64 {
	values := make([]float64, len(view))
	for i, e := range view {
		values[i] = e.MonthlyIncome
	}
	return values
}

func meanOf(values []float64) (float64, bool) {
	mean, err := stats.Mean(values)
	if err != nil {
		return 0, false
	}
	return mean, true
}
