package testkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeDataGenerator_Basic(t *testing.T) {
	config := EmployeeGeneratorConfig{
		EmployeeCount: 200,
		MinAge:        20,
		MaxAge:        50,
		AttritionRate: 0.2,
		Seed:          7,
	}

	records, err := NewEmployeeDataGenerator(config).Generate()
	require.NoError(t, err)
	require.Len(t, records, 200)

	ids := make(map[string]bool)
	for i, rec := range records {
		if rec.EmpID == "" {
			t.Errorf("Record %d has empty id", i)
		}
		if ids[rec.EmpID] {
			t.Errorf("Duplicate id %s", rec.EmpID)
		}
		ids[rec.EmpID] = true

		assert.GreaterOrEqual(t, rec.Age, 20)
		assert.LessOrEqual(t, rec.Age, 50)
		assert.GreaterOrEqual(t, rec.MonthlyIncome, 1000.0)
		assert.Contains(t, departmentRoles[rec.Department], rec.JobRole)
		assert.Contains(t, []string{"Yes", "No"}, rec.Attrition)
		assert.GreaterOrEqual(t, rec.PerformanceRating, 3.0)
	}
}

func TestEmployeeDataGenerator_Deterministic(t *testing.T) {
	config := DefaultEmployeeConfig()
	config.EmployeeCount = 50

	first, err := NewEmployeeDataGenerator(config).Generate()
	require.NoError(t, err)
	second, err := NewEmployeeDataGenerator(config).Generate()
	require.NoError(t, err)

	assert.Equal(t, first, second, "same seed should produce identical records")
}

func TestEmployeeDataGenerator_InvalidConfig(t *testing.T) {
	config := DefaultEmployeeConfig()
	config.MinAge = 61

	_, err := NewEmployeeDataGenerator(config).Generate()
	assert.Error(t, err)
}

func TestScenarioTable(t *testing.T) {
	table := ScenarioTable()
	assert.Equal(t, 3, table.Len())
	assert.True(t, table.HasColumns(AllColumns()...))
}
