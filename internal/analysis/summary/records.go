package summary

import (
	"sort"

	"hrdash/domain/dashboard"
	"hrdash/domain/employee"
)

// RecordList projects the view to record-table rows sorted by monthly income,
// highest first. Equal incomes keep view order.
func RecordList(view []employee.Employee) []dashboard.RecordRow {
	rows := make([]dashboard.RecordRow, 0, len(view))
	for _, e := range view {
		rows = append(rows, dashboard.RecordRow{
			EmpID:         e.EmpID,
			Age:           e.Age,
			JobRole:       e.JobRole,
			Department:    e.Department,
			MonthlyIncome: e.MonthlyIncome,
			Attrition:     e.Attrition,
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].MonthlyIncome > rows[j].MonthlyIncome
	})
	return rows
}
