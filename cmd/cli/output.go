package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"hrdash/domain/dashboard"
	"hrdash/internal/analysis/summary"
)

const barWidth = 30

func printSummary(w io.Writer, d *dashboard.Dashboard) {
	sel := d.Selection
	fmt.Fprintf(w, "HR ANALYTICS DASHBOARD\n")
	fmt.Fprintf(w, "Department: %s  Job Role: %s  Age: %d-%d\n\n", sel.Department, sel.JobRole, sel.Age.Min, sel.Age.Max)

	fmt.Fprintf(w, "Total Employees:        %d\n", d.Metrics.TotalEmployees)
	fmt.Fprintf(w, "Average Monthly Income: %s\n", d.Metrics.MeanIncomeLabel)

	printCounts(w, "Employee Distribution by Education Field", d.EducationFields, warningFor(d, dashboard.SectionEducation))
	printCounts(w, "Attrition Analysis", d.Attrition, warningFor(d, dashboard.SectionAttrition))

	fmt.Fprintf(w, "\nAverage Monthly Income by Age\n")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, a := range d.IncomeByAge {
		fmt.Fprintf(tw, "  %d\t%s\t(n=%d)\n", a.Age, summary.FormatCurrency(a.MeanIncome), a.Count)
	}
	tw.Flush()

	fmt.Fprintf(w, "\nAverage Monthly Income by Job Role\n")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, r := range d.IncomeByJobRole {
		fmt.Fprintf(tw, "  %s\t%s\t(n=%d)\n", r.JobRole, summary.FormatCurrency(r.MeanIncome), r.Count)
	}
	tw.Flush()

	if sel.ShowHeatmap {
		fmt.Fprintf(w, "\nCorrelation Heatmap of Satisfaction Levels\n")
		if msg := warningFor(d, dashboard.SectionHeatmap); msg != "" {
			fmt.Fprintf(w, "  %s\n", msg)
		} else if d.Correlation != nil {
			printCorrelation(w, d.Correlation)
		}
	}

	for _, warn := range d.Warnings {
		switch warn.Section {
		case dashboard.SectionEducation, dashboard.SectionAttrition, dashboard.SectionHeatmap:
			// already shown in place
		default:
			fmt.Fprintf(w, "\nwarning [%s]: %s\n", warn.Section, warn.Message)
		}
	}
}

func printCounts(w io.Writer, title string, counts []dashboard.CategoryCount, warning string) {
	fmt.Fprintf(w, "\n%s\n", title)
	if warning != "" {
		fmt.Fprintf(w, "  %s\n", warning)
		return
	}
	if len(counts) == 0 {
		fmt.Fprintf(w, "  (no employees)\n")
		return
	}
	max := counts[0].Count
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range counts {
		n := 0
		if max > 0 {
			n = c.Count * barWidth / max
		}
		fmt.Fprintf(tw, "  %s\t%s\t%d\n", c.Category, strings.Repeat("#", n), c.Count)
	}
	tw.Flush()
}

func printCorrelation(w io.Writer, m *dashboard.CorrelationMatrix) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "\t%s\t\n", strings.Join(m.Columns, "\t"))
	for i, row := range m.Values {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = c.String()
		}
		fmt.Fprintf(tw, "%s\t%s\t\n", m.Columns[i], strings.Join(cells, "\t"))
	}
	tw.Flush()
}

func printOptions(w io.Writer, department string, opts dashboard.Options) {
	fmt.Fprintf(w, "Departments: %s\n", strings.Join(opts.Departments, ", "))
	fmt.Fprintf(w, "Job roles for %s: %s\n", department, strings.Join(opts.JobRoles, ", "))
	fmt.Fprintf(w, "Age bounds: %d-%d (default %d-%d)\n",
		opts.AgeBounds.Min, opts.AgeBounds.Max, opts.DefaultAge.Min, opts.DefaultAge.Max)
}

func printRecords(w io.Writer, rows []dashboard.RecordRow, total int) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "EmpID\tAge\tJobRole\tDepartment\tMonthlyIncome\tAttrition")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\n",
			r.EmpID, r.Age, r.JobRole, r.Department, summary.FormatCurrency(r.MonthlyIncome), r.Attrition)
	}
	tw.Flush()
	if len(rows) < total {
		fmt.Fprintf(w, "... %d of %d rows shown\n", len(rows), total)
	}
}

func warningFor(d *dashboard.Dashboard, section string) string {
	if warn, ok := d.Warning(section); ok {
		return warn.Message
	}
	return ""
}
