package summary

import (
	"math"
	"testing"

	"hrdash/domain/dashboard"
	"hrdash/domain/employee"
	"hrdash/internal/filter"
	"hrdash/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeanIncomeByAge_Scenario(t *testing.T) {
	view := testkit.ScenarioRecords()

	got := MeanIncomeByAge(view)
	assert.Equal(t, []dashboard.AgeIncome{
		{Age: 30, MeanIncome: 4000, Count: 2},
		{Age: 45, MeanIncome: 6000, Count: 1},
	}, got)
}

func TestMeanIncomeByJobRole_SortedByRole(t *testing.T) {
	got := MeanIncomeByJobRole(testkit.ScenarioRecords())
	assert.Equal(t, []dashboard.RoleIncome{
		{JobRole: "Manager", MeanIncome: 6000, Count: 1},
		{JobRole: "Rep", MeanIncome: 3000, Count: 1},
		{JobRole: "Scientist", MeanIncome: 5000, Count: 1},
	}, got)
}

func TestMetrics(t *testing.T) {
	m := Metrics(testkit.ScenarioRecords())
	assert.Equal(t, 3, m.TotalEmployees)
	require.NotNil(t, m.MeanIncome)
	assert.InDelta(t, 4666.666, *m.MeanIncome, 0.01)
	assert.Equal(t, "$4,666", m.MeanIncomeLabel)
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999.99, "$999"},
		{6000, "$6,000"},
		{1234567.8, "$1,234,567"},
		{math.NaN(), dashboard.NoData},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCurrency(tt.in), "amount %v", tt.in)
	}
}

func TestDistributions_OrderAndTies(t *testing.T) {
	view := testkit.ScenarioRecords()

	assert.Equal(t, []dashboard.CategoryCount{
		{Category: "Life Sciences", Count: 2},
		{Category: "Marketing", Count: 1},
	}, EducationFieldCounts(view))

	assert.Equal(t, []dashboard.CategoryCount{
		{Category: "No", Count: 2},
		{Category: "Yes", Count: 1},
	}, AttritionCounts(view))

	// Ties keep first appearance
	tied := []employee.Employee{{Attrition: "Yes"}, {Attrition: "No"}}
	assert.Equal(t, []dashboard.CategoryCount{
		{Category: "Yes", Count: 1},
		{Category: "No", Count: 1},
	}, AttritionCounts(tied))
}

func TestDistributions_ToleratesManyCategories(t *testing.T) {
	view := []employee.Employee{
		{Attrition: "Yes"}, {Attrition: "No"}, {Attrition: "Unknown"}, {Attrition: "No"},
	}
	got := AttritionCounts(view)
	assert.Len(t, got, 3)
	assert.Equal(t, "No", got[0].Category)
}

func TestDistributions_SumEqualsTotal(t *testing.T) {
	table := testkit.SyntheticTable(600, 17)
	views := [][]employee.Employee{
		table.Records,
		filter.ApplyFilters(table, "Sales", employee.Wildcard, 25, 50),
		filter.ApplyFilters(table, employee.Wildcard, "Manager", 18, 60),
		filter.ApplyFilters(table, "Human Resources", employee.Wildcard, 60, 18),
	}

	for _, view := range views {
		for _, dist := range [][]dashboard.CategoryCount{EducationFieldCounts(view), AttritionCounts(view)} {
			sum := 0
			for _, c := range dist {
				sum += c.Count
			}
			assert.Equal(t, TotalCount(view), sum)
		}

		groupSum := 0
		for _, g := range MeanIncomeByAge(view) {
			groupSum += g.Count
		}
		assert.Equal(t, TotalCount(view), groupSum)
	}
}

func TestIncomeAgePoints_Projection(t *testing.T) {
	points := IncomeAgePoints(testkit.ScenarioRecords())
	require.Len(t, points, 3)
	assert.Equal(t, dashboard.IncomeAgePoint{
		EmpID: "E2", Age: 45, MonthlyIncome: 6000, Attrition: "Yes", JobRole: "Manager",
	}, points[1])
}

func TestRecordList_SortedByIncomeDescending(t *testing.T) {
	view := append(testkit.ScenarioRecords(), employee.Employee{
		EmpID: "E4", Age: 50, Department: "R&D", JobRole: "Scientist", MonthlyIncome: 5000, Attrition: "No",
	})

	rows := RecordList(view)
	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.EmpID
	}
	assert.Equal(t, []string{"E2", "E3", "E4", "E1"}, ids)
}

func TestEmptyView(t *testing.T) {
	view := filter.ApplyFilters(testkit.ScenarioTable(), "Legal", employee.Wildcard, 18, 60)
	require.Empty(t, view)

	assert.Equal(t, 0, TotalCount(view))
	_, ok := MeanIncome(view)
	assert.False(t, ok)

	m := Metrics(view)
	assert.Nil(t, m.MeanIncome)
	assert.Equal(t, dashboard.NoData, m.MeanIncomeLabel)

	assert.Empty(t, EducationFieldCounts(view))
	assert.Empty(t, AttritionCounts(view))
	assert.Empty(t, IncomeAgePoints(view))
	assert.Empty(t, MeanIncomeByAge(view))
	assert.Empty(t, MeanIncomeByJobRole(view))
	assert.Empty(t, RecordList(view))

	matrix := CorrelationMatrix(view)
	require.Len(t, matrix.Values, len(employee.RatingColumns))
	for _, row := range matrix.Values {
		for _, c := range row {
			assert.False(t, c.Defined())
			assert.Equal(t, "n/a", c.String())
		}
	}
}
