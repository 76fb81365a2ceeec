package ui

import (
	"fmt"

	"hrdash/domain/dashboard"
	"hrdash/internal/analysis/summary"
)

// Scatter plot canvas, in SVG user units
const (
	plotWidth   = 640
	plotHeight  = 320
	plotPadding = 32
)

// dashboardPage is the view model of templates/dashboard.html
type dashboardPage struct {
	Title     string
	Dashboard *dashboard.Dashboard
	Notice    string
	Warnings  map[string]string

	MaxEducation  float64
	MaxAttrition  float64
	MaxAgeIncome  float64
	MaxRoleIncome float64

	Scatter     []scatterDot
	PlotWidth   int
	PlotHeight  int
	PlotPadding int
}

// scatterDot is one point of the income-vs-age plot in canvas coordinates
type scatterDot struct {
	X, Y  float64
	Color string
	Label string
}

func newDashboardPage(d *dashboard.Dashboard, notice string) dashboardPage {
	page := dashboardPage{
		Title:       "HR Analytics Dashboard",
		Dashboard:   d,
		Notice:      notice,
		Warnings:    make(map[string]string, len(d.Warnings)),
		PlotWidth:   plotWidth,
		PlotHeight:  plotHeight,
		PlotPadding: plotPadding,
	}
	for _, w := range d.Warnings {
		page.Warnings[w.Section] = w.Message
	}
	for _, c := range d.EducationFields {
		page.MaxEducation = maxFloat(page.MaxEducation, float64(c.Count))
	}
	for _, c := range d.Attrition {
		page.MaxAttrition = maxFloat(page.MaxAttrition, float64(c.Count))
	}
	for _, a := range d.IncomeByAge {
		page.MaxAgeIncome = maxFloat(page.MaxAgeIncome, a.MeanIncome)
	}
	for _, r := range d.IncomeByJobRole {
		page.MaxRoleIncome = maxFloat(page.MaxRoleIncome, r.MeanIncome)
	}
	page.Scatter = scatterDots(d.IncomeVsAge, d.Options.AgeBounds)
	return page
}

// scatterDots maps points onto the canvas. Age spans the observed bounds so
// the axis does not jump as filters change; income spans 0 to the view max.
func scatterDots(points []dashboard.IncomeAgePoint, bounds dashboard.AgeRange) []scatterDot {
	if len(points) == 0 {
		return nil
	}
	var maxIncome float64
	for _, p := range points {
		maxIncome = maxFloat(maxIncome, p.MonthlyIncome)
	}
	ageSpan := float64(bounds.Max - bounds.Min)
	if ageSpan <= 0 {
		ageSpan = 1
	}
	if maxIncome <= 0 {
		maxIncome = 1
	}
	innerW := float64(plotWidth - 2*plotPadding)
	innerH := float64(plotHeight - 2*plotPadding)

	dots := make([]scatterDot, len(points))
	for i, p := range points {
		color := "#2563eb"
		if p.Attrition == "Yes" {
			color = "#dc2626"
		}
		dots[i] = scatterDot{
			X:     plotPadding + float64(p.Age-bounds.Min)/ageSpan*innerW,
			Y:     plotPadding + innerH - p.MonthlyIncome/maxIncome*innerH,
			Color: color,
			Label: fmt.Sprintf("%s age %d, %s, attrition %s", p.JobRole, p.Age, summary.FormatCurrency(p.MonthlyIncome), p.Attrition),
		}
	}
	return dots
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
