package excel

import (
	"log"
	"math"
	"strconv"
	"strings"

	"hrdash/domain/core"
	"hrdash/domain/employee"
)

// BuildTable types raw rows into an employee table.
//
// Missing required columns, unparsable numerics, negative ages or incomes and
// duplicate employee ids all fail the whole load. Optional columns that are
// absent are simply left out of the table's column set.
func BuildTable(source string, data *ExcelData) (*employee.Table, error) {
	for _, col := range employee.RequiredColumns {
		if !data.HasHeader(col) {
			return nil, core.NewMissingColumnError(col)
		}
	}

	present := append([]string(nil), employee.RequiredColumns...)
	for _, col := range employee.OptionalColumns {
		if data.HasHeader(col) {
			present = append(present, col)
		} else {
			log.Printf("[DataReader] Optional column %s not found; dependent sections will be skipped", col)
		}
	}
	hasID := data.HasHeader(employee.ColEmpID)
	hasEducation := data.HasHeader(employee.ColEducationField)
	var ratings []string
	for _, col := range employee.RatingColumns {
		if data.HasHeader(col) {
			ratings = append(ratings, col)
		}
	}

	records := make([]employee.Employee, 0, len(data.Rows))
	seen := make(map[string]bool, len(data.Rows))

	for i, raw := range data.Rows {
		rowNum := i + 1
		var emp employee.Employee

		age, err := parseAge(rowNum, raw[employee.ColAge])
		if err != nil {
			return nil, err
		}
		emp.Age = age

		income, err := parseNumber(rowNum, employee.ColMonthlyIncome, raw[employee.ColMonthlyIncome])
		if err != nil {
			return nil, err
		}
		if income < 0 {
			return nil, core.NewNegativeValueError(rowNum, employee.ColMonthlyIncome, income)
		}
		emp.MonthlyIncome = income

		emp.Department = raw[employee.ColDepartment]
		emp.JobRole = raw[employee.ColJobRole]
		emp.Attrition = raw[employee.ColAttrition]

		if hasID {
			id := raw[employee.ColEmpID]
			if id == "" {
				return nil, core.NewMalformedValueError(rowNum, employee.ColEmpID, id)
			}
			if seen[id] {
				return nil, core.NewDuplicateIDError(rowNum, id)
			}
			seen[id] = true
			emp.EmpID = id
		}
		if hasEducation {
			emp.EducationField = raw[employee.ColEducationField]
		}

		for _, col := range ratings {
			rating, err := parseNumber(rowNum, col, raw[col])
			if err != nil {
				return nil, err
			}
			setRating(&emp, col, rating)
		}

		records = append(records, emp)
	}

	log.Printf("[DataReader] Employee table built from %s (%d records, %d columns)",
		source, len(records), len(present))

	return employee.NewTable(source, records, present), nil
}

// parseNumber accepts plain integers and decimals, including thousands
// separators written as "6,000".
func parseNumber(row int, column, value string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, core.NewMalformedValueError(row, column, value)
	}
	return f, nil
}

func parseAge(row int, value string) (int, error) {
	f, err := parseNumber(row, employee.ColAge, value)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, core.NewMalformedValueError(row, employee.ColAge, value)
	}
	if f < 0 {
		return 0, core.NewNegativeValueError(row, employee.ColAge, f)
	}
	return int(f), nil
}

func setRating(emp *employee.Employee, column string, value float64) {
	switch column {
	case employee.ColJobSatisfaction:
		emp.JobSatisfaction = value
	case employee.ColEnvironmentSatisfaction:
		emp.EnvironmentSatisfaction = value
	case employee.ColWorkLifeBalance:
		emp.WorkLifeBalance = value
	case employee.ColRelationshipSatisfaction:
		emp.RelationshipSatisfaction = value
	case employee.ColPerformanceRating:
		emp.PerformanceRating = value
	}
}
