package testkit

import (
	"hrdash/domain/employee"
)

// AllColumns returns every column the loader understands, required first.
func AllColumns() []string {
	cols := append([]string(nil), employee.RequiredColumns...)
	return append(cols, employee.OptionalColumns...)
}

// NewTable wraps records in a table that carries every known column.
func NewTable(records ...employee.Employee) *employee.Table {
	return employee.NewTable("testkit", records, AllColumns())
}

// ScenarioRecords are three employees across two departments:
// two Sales employees aged 30 and 45, one R&D employee aged 30.
func ScenarioRecords() []employee.Employee {
	return []employee.Employee{
		{
			EmpID: "E1", Age: 30, Department: "Sales", JobRole: "Rep",
			MonthlyIncome: 3000, Attrition: "No", EducationField: "Marketing",
			JobSatisfaction: 3, EnvironmentSatisfaction: 2, WorkLifeBalance: 3,
			RelationshipSatisfaction: 4, PerformanceRating: 3,
		},
		{
			EmpID: "E2", Age: 45, Department: "Sales", JobRole: "Manager",
			MonthlyIncome: 6000, Attrition: "Yes", EducationField: "Life Sciences",
			JobSatisfaction: 1, EnvironmentSatisfaction: 4, WorkLifeBalance: 2,
			RelationshipSatisfaction: 2, PerformanceRating: 4,
		},
		{
			EmpID: "E3", Age: 30, Department: "R&D", JobRole: "Scientist",
			MonthlyIncome: 5000, Attrition: "No", EducationField: "Life Sciences",
			JobSatisfaction: 4, EnvironmentSatisfaction: 3, WorkLifeBalance: 4,
			RelationshipSatisfaction: 1, PerformanceRating: 3,
		},
	}
}

// ScenarioTable returns ScenarioRecords as a table.
func ScenarioTable() *employee.Table {
	return NewTable(ScenarioRecords()...)
}

// SyntheticTable returns a reproducible generated table of n employees.
func SyntheticTable(n int, seed int64) *employee.Table {
	config := DefaultEmployeeConfig()
	config.EmployeeCount = n
	config.Seed = seed
	table, err := NewEmployeeDataGenerator(config).GenerateTable()
	if err != nil {
		panic(err)
	}
	return table
}
