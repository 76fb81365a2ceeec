package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"hrdash/domain/core"
	"hrdash/domain/employee"

	"github.com/xuri/excelize/v2"
)

// WriteFile writes records in the source layout the reader expects, choosing
// CSV, TSV or XLSX from the file extension.
func WriteFile(path string, records []employee.Employee) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return writeDelimitedFile(path, ',', records)
	case ".tsv":
		return writeDelimitedFile(path, '\t', records)
	case ".xlsx":
		return WriteXLSX(path, "Sheet1", records)
	default:
		return fmt.Errorf("%w: %q", core.ErrUnsupportedType, filepath.Ext(path))
	}
}

// WriteCSV writes a header row and one line per record
func WriteCSV(w io.Writer, comma rune, records []employee.Employee) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(Headers()); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(recordCells(rec)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes records to a single-sheet workbook
func WriteXLSX(path, sheet string, records []employee.Employee) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
	}

	header := make([]interface{}, 0, len(Headers()))
	for _, h := range Headers() {
		header = append(header, h)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			rec.EmpID,
			rec.Age,
			rec.Department,
			rec.JobRole,
			rec.MonthlyIncome,
			rec.Attrition,
			rec.EducationField,
			rec.JobSatisfaction,
			rec.EnvironmentSatisfaction,
			rec.WorkLifeBalance,
			rec.RelationshipSatisfaction,
			rec.PerformanceRating,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	log.Printf("[DataWriter] Wrote %d records to %s", len(records), path)
	return nil
}

// Headers returns the column layout used by the writers
func Headers() []string {
	return []string{
		employee.ColEmpID,
		employee.ColAge,
		employee.ColDepartment,
		employee.ColJobRole,
		employee.ColMonthlyIncome,
		employee.ColAttrition,
		employee.ColEducationField,
		employee.ColJobSatisfaction,
		employee.ColEnvironmentSatisfaction,
		employee.ColWorkLifeBalance,
		employee.ColRelationshipSatisfaction,
		employee.ColPerformanceRating,
	}
}

func writeDelimitedFile(path string, comma rune, records []employee.Employee) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := WriteCSV(file, comma, records); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return err
	}
	log.Printf("[DataWriter] Wrote %d records to %s", len(records), path)
	return nil
}

func recordCells(rec employee.Employee) []string {
	return []string{
		rec.EmpID,
		strconv.Itoa(rec.Age),
		rec.Department,
		rec.JobRole,
		formatNumber(rec.MonthlyIncome),
		rec.Attrition,
		rec.EducationField,
		formatNumber(rec.JobSatisfaction),
		formatNumber(rec.EnvironmentSatisfaction),
		formatNumber(rec.WorkLifeBalance),
		formatNumber(rec.RelationshipSatisfaction),
		formatNumber(rec.PerformanceRating),
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
