package app

import (
	"fmt"
	"strings"
	"time"

	"hrdash/domain/dashboard"
	"hrdash/domain/employee"
	"hrdash/internal"
	"hrdash/internal/analysis/summary"
	"hrdash/internal/errors"
	"hrdash/internal/filter"
	"hrdash/ports"

	"github.com/google/uuid"
)

// ServiceOptions configures a DashboardService
type ServiceOptions struct {
	// DefaultAge is the preferred initial age range, clamped to the data.
	DefaultAge dashboard.AgeRange
	Logger     *internal.Logger
	// NewRenderID overrides render id generation; used by tests.
	NewRenderID func() string
}

// DefaultServiceOptions returns the standard 18-60 default age range
func DefaultServiceOptions() ServiceOptions {
	return ServiceOptions{
		DefaultAge: dashboard.AgeRange{Min: 18, Max: 60},
	}
}

// DashboardService owns the loaded employee table and turns selections into
// rendered dashboards. The table is read-only after construction, so a
// single service can serve concurrent requests.
type DashboardService struct {
	table       *employee.Table
	defaultAge  dashboard.AgeRange
	logger      *internal.Logger
	newRenderID func() string
}

// NewDashboardService loads the table through reader. A load failure is
// returned as a DATASET_LOAD_FAILED error; callers treat it as fatal.
func NewDashboardService(reader ports.DatasetReader, opts ServiceOptions) (*DashboardService, error) {
	start := time.Now()
	table, err := reader.ReadTable()
	if err != nil {
		return nil, errors.DatasetLoadFailed(sourceName(reader), err)
	}
	svc := NewDashboardServiceFromTable(table, opts)
	svc.logger.Info("Loaded %d employees from %s in %s", table.Len(), table.Source, time.Since(start).Round(time.Millisecond))
	return svc, nil
}

// NewDashboardServiceFromTable wraps an already loaded table
func NewDashboardServiceFromTable(table *employee.Table, opts ServiceOptions) *DashboardService {
	logger := opts.Logger
	if logger == nil {
		logger = internal.DefaultLogger
	}
	newID := opts.NewRenderID
	if newID == nil {
		newID = uuid.NewString
	}
	return &DashboardService{
		table:       table,
		defaultAge:  opts.DefaultAge,
		logger:      logger.WithComponent("Dashboard"),
		newRenderID: newID,
	}
}

// Table returns the shared employee table
func (s *DashboardService) Table() *employee.Table {
	return s.table
}

// DefaultSelection is the state of a fresh session
func (s *DashboardService) DefaultSelection() dashboard.Selection {
	return dashboard.NewSelection(filter.DefaultAgeRange(s.table, s.defaultAge))
}

// Options returns the sidebar choices for a department
func (s *DashboardService) Options(department string) dashboard.Options {
	return BuildOptions(s.table, department, s.defaultAge)
}

// Render computes a dashboard for the selection
func (s *DashboardService) Render(sel dashboard.Selection) *dashboard.Dashboard {
	start := time.Now()
	d := Render(s.table, sel, s.defaultAge)
	d.RenderID = s.newRenderID()

	s.logger.Debug("Render %s: dept=%q role=%q age=%d-%d heatmap=%t -> %d rows in %s",
		d.RenderID, d.Selection.Department, d.Selection.JobRole,
		d.Selection.Age.Min, d.Selection.Age.Max, d.Selection.ShowHeatmap,
		d.Metrics.TotalEmployees, time.Since(start))
	for _, w := range d.Warnings {
		s.logger.Warn("Render %s: section %s skipped: %s", d.RenderID, w.Section, w.Message)
	}
	return d
}

// BuildOptions assembles the sidebar choices from the full table
func BuildOptions(table *employee.Table, department string, defaultAge dashboard.AgeRange) dashboard.Options {
	return dashboard.Options{
		Departments: filter.DepartmentOptions(table),
		JobRoles:    filter.JobRoleOptions(table, department),
		AgeBounds:   filter.AgeBounds(table),
		DefaultAge:  filter.DefaultAgeRange(table, defaultAge),
	}
}

// Render is one full, synchronous recomputation: normalize the selection,
// filter once, then derive every section from the same view. Each section
// is isolated; a failure or missing column only affects that section.
func Render(table *employee.Table, sel dashboard.Selection, defaultAge dashboard.AgeRange) *dashboard.Dashboard {
	sel = filter.Normalize(table, sel)
	view := filter.ApplySelection(table, sel)

	r := &renderer{
		table: table,
		d: &dashboard.Dashboard{
			Selection: sel,
			Options:   BuildOptions(table, sel.Department, defaultAge),
		},
	}

	r.section(dashboard.SectionMetrics, nil, func(d *dashboard.Dashboard) {
		d.Metrics = summary.Metrics(view)
	})
	r.section(dashboard.SectionEducation, []string{employee.ColEducationField}, func(d *dashboard.Dashboard) {
		d.EducationFields = summary.EducationFieldCounts(view)
	})
	r.section(dashboard.SectionScatter, nil, func(d *dashboard.Dashboard) {
		d.IncomeVsAge = summary.IncomeAgePoints(view)
	})
	r.section(dashboard.SectionIncomeByAge, nil, func(d *dashboard.Dashboard) {
		d.IncomeByAge = summary.MeanIncomeByAge(view)
	})
	if sel.ShowHeatmap {
		r.section(dashboard.SectionHeatmap, employee.RatingColumns, func(d *dashboard.Dashboard) {
			d.Correlation = summary.CorrelationMatrix(view)
		})
	}
	r.section(dashboard.SectionRecords, employee.RecordColumns, func(d *dashboard.Dashboard) {
		d.Records = summary.RecordList(view)
	})
	r.section(dashboard.SectionAttrition, nil, func(d *dashboard.Dashboard) {
		d.Attrition = summary.AttritionCounts(view)
	})
	r.section(dashboard.SectionIncomeByRole, nil, func(d *dashboard.Dashboard) {
		d.IncomeByJobRole = summary.MeanIncomeByJobRole(view)
	})

	return r.d
}

type renderer struct {
	table *employee.Table
	d     *dashboard.Dashboard
}

func (r *renderer) section(name string, columns []string, fill func(d *dashboard.Dashboard)) {
	if missing := r.table.MissingColumns(columns...); len(missing) > 0 {
		r.warn(name, missingColumnsMessage(name, missing))
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.warn(name, fmt.Sprintf("section failed: %v", rec))
		}
	}()
	fill(r.d)
}

func missingColumnsMessage(section string, missing []string) string {
	if section == dashboard.SectionRecords {
		return "One or more columns for the table are missing."
	}
	return fmt.Sprintf("One or more columns for this section are missing: %s", strings.Join(missing, ", "))
}

func (r *renderer) warn(section, message string) {
	r.d.Warnings = append(r.d.Warnings, dashboard.SectionWarning{Section: section, Message: message})
}

func sourceName(reader ports.DatasetReader) string {
	if named, ok := reader.(interface{ FilePath() string }); ok {
		return named.FilePath()
	}
	return "source"
}
