package excel

import (
	"os"
	"path/filepath"
	"testing"

	"hrdash/domain/core"
	"hrdash/domain/employee"
	"hrdash/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioCSV = `EmpID,Age,Department,JobRole,MonthlyIncome,Attrition,EducationField,JobSatisfaction,EnvironmentSatisfaction,WorkLifeBalance,RelationshipSatisfaction,PerformanceRating
E1,30,Sales,Rep,3000,No,Marketing,3,2,3,4,3
E2,45,Sales,Manager,6000,Yes,Life Sciences,1,4,2,2,4
E3,30,R&D,Scientist,5000,No,Life Sciences,4,3,4,1,3
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadTable_CSV(t *testing.T) {
	path := writeTemp(t, "hr.csv", scenarioCSV)

	table, err := NewDataReader(DefaultExcelConfig(path)).ReadTable()
	require.NoError(t, err)

	assert.Equal(t, testkit.ScenarioRecords(), table.Records)
	assert.True(t, table.HasColumns(testkit.AllColumns()...))
	assert.Equal(t, path, table.Source)
}

func TestReadTable_BOMAndDecimals(t *testing.T) {
	content := "\ufeffAge,Department,JobRole,MonthlyIncome,Attrition\n" +
		"41.0,Sales,Rep,\"5,993\",Yes\n"
	path := writeTemp(t, "bom.csv", content)

	table, err := NewDataReader(DefaultExcelConfig(path)).ReadTable()
	require.NoError(t, err)
	require.Equal(t, 1, table.Len())

	rec := table.Records[0]
	assert.Equal(t, 41, rec.Age)
	assert.Equal(t, 5993.0, rec.MonthlyIncome)
	assert.False(t, table.HasColumn(employee.ColEmpID))
	assert.False(t, table.HasColumn(employee.ColEducationField))
}

func TestReadTable_TSV(t *testing.T) {
	content := "Age\tDepartment\tJobRole\tMonthlyIncome\tAttrition\n" +
		"29\tSales\tRep\t2500\tNo\n"
	path := writeTemp(t, "hr.tsv", content)

	table, err := NewDataReader(DefaultExcelConfig(path)).ReadTable()
	require.NoError(t, err)
	assert.Equal(t, "Rep", table.Records[0].JobRole)
}

func TestReadTable_XLSXRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hr.xlsx")
	records := testkit.ScenarioRecords()
	require.NoError(t, WriteFile(path, records))

	table, err := NewDataReader(DefaultExcelConfig(path)).ReadTable()
	require.NoError(t, err)
	assert.Equal(t, records, table.Records)
}

func TestReadTable_Failures(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    error
	}{
		{
			name:    "missing required column",
			file:    "a.csv",
			content: "Age,Department,JobRole,Attrition\n30,Sales,Rep,No\n",
			want:    core.ErrMissingColumn,
		},
		{
			name:    "header only",
			file:    "b.csv",
			content: "Age,Department,JobRole,MonthlyIncome,Attrition\n",
			want:    core.ErrEmptyDataset,
		},
		{
			name:    "non numeric age",
			file:    "c.csv",
			content: "Age,Department,JobRole,MonthlyIncome,Attrition\nthirty,Sales,Rep,100,No\n",
			want:    core.ErrMalformedValue,
		},
		{
			name:    "fractional age",
			file:    "d.csv",
			content: "Age,Department,JobRole,MonthlyIncome,Attrition\n30.5,Sales,Rep,100,No\n",
			want:    core.ErrMalformedValue,
		},
		{
			name:    "negative income",
			file:    "e.csv",
			content: "Age,Department,JobRole,MonthlyIncome,Attrition\n30,Sales,Rep,-1,No\n",
			want:    core.ErrNegativeValue,
		},
		{
			name:    "duplicate id",
			file:    "f.csv",
			content: "EmpID,Age,Department,JobRole,MonthlyIncome,Attrition\nX,30,Sales,Rep,1,No\nX,31,Sales,Rep,2,No\n",
			want:    core.ErrDuplicateID,
		},
		{
			name:    "blank rating",
			file:    "g.csv",
			content: "Age,Department,JobRole,MonthlyIncome,Attrition,JobSatisfaction\n30,Sales,Rep,1,No,\n",
			want:    core.ErrMalformedValue,
		},
		{
			name:    "ragged row",
			file:    "h.csv",
			content: "Age,Department,JobRole,MonthlyIncome,Attrition\n30,Sales,Rep\n",
			want:    core.ErrUnreadableSource,
		},
		{
			name:    "unsupported extension",
			file:    "i.json",
			content: "{}",
			want:    core.ErrUnsupportedType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTemp(t, tt.file, tt.content)
			_, err := NewDataReader(DefaultExcelConfig(path)).ReadTable()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReadTable_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")
	_, err := NewDataReader(DefaultExcelConfig(path)).ReadTable()
	assert.ErrorIs(t, err, core.ErrSourceNotFound)
	assert.True(t, core.IsSourceError(err))
}

func TestReadData_SkipsBlankRows(t *testing.T) {
	content := "Age,Department,JobRole,MonthlyIncome,Attrition\n30,Sales,Rep,1,No\n,,,,\n"
	path := writeTemp(t, "blank.csv", content)

	data, err := NewDataReader(DefaultExcelConfig(path)).ReadData()
	require.NoError(t, err)
	assert.Len(t, data.Rows, 1)
}
