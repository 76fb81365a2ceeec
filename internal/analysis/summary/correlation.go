package summary

import (
	"math"

	"hrdash/domain/dashboard"
	"hrdash/domain/employee"

	"gonum.org/v1/gonum/stat"
)

// CorrelationMatrix computes pairwise Pearson coefficients among the rating
// columns. Fewer than two records, or a column with zero variance, leave the
// affected cells undefined (NaN).
func CorrelationMatrix(view []employee.Employee) *dashboard.CorrelationMatrix {
	return CorrelationMatrixOf(view, employee.RatingColumns)
}

// CorrelationMatrixOf computes the matrix for an explicit column list.
// Unknown column names produce undefined cells.
func CorrelationMatrixOf(view []employee.Employee, columns []string) *dashboard.CorrelationMatrix {
	series := make([][]float64, len(columns))
	known := make([]bool, len(columns))
	for i, col := range columns {
		series[i], known[i] = ratingSeries(view, col)
	}

	values := make([][]dashboard.Correlation, len(columns))
	for i := range columns {
		values[i] = make([]dashboard.Correlation, len(columns))
		for j := range columns {
			values[i][j] = undefined()
			if len(view) < 2 || !known[i] || !known[j] {
				continue
			}
			values[i][j] = dashboard.Correlation(stat.Correlation(series[i], series[j], nil))
		}
	}

	return &dashboard.CorrelationMatrix{
		Columns: append([]string(nil), columns...),
		Values:  values,
	}
}

func ratingSeries(view []employee.Employee, column string) ([]float64, bool) {
	if _, ok := (employee.Employee{}).Rating(column); !ok {
		return nil, false
	}
	out := make([]float64, len(view))
	for i, e := range view {
		out[i], _ = e.Rating(column)
	}
	return out, true
}

func undefined() dashboard.Correlation {
	return dashboard.Correlation(math.NaN())
}
