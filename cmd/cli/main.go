package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"hrdash/adapters/excel"
	"hrdash/app"
	"hrdash/domain/dashboard"
	"hrdash/domain/employee"
	"hrdash/internal"
	"hrdash/internal/config"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// selectionFlags are the sidebar controls expressed as flags
type selectionFlags struct {
	dataPath   string
	sheet      string
	department string
	jobRole    string
	ageMin     int
	ageMax     int
	heatmap    bool
	asJSON     bool
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &selectionFlags{}

	rootCmd := &cobra.Command{
		Use:           "hrdash",
		Short:         "HR analytics dashboard in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.dataPath, "data", os.Getenv("DATASET_PATH"), "Dataset file (.csv, .tsv or .xlsx)")
	pf.StringVar(&flags.sheet, "sheet", os.Getenv("DATASET_SHEET"), "XLSX sheet name (default first sheet)")
	pf.StringVar(&flags.department, "department", employee.Wildcard, "Department filter")
	pf.StringVar(&flags.jobRole, "job-role", employee.Wildcard, "Job role filter")
	pf.IntVar(&flags.ageMin, "age-min", -1, "Minimum age (default: AGE_DEFAULT_MIN clamped to the data)")
	pf.IntVar(&flags.ageMax, "age-max", -1, "Maximum age (default: AGE_DEFAULT_MAX clamped to the data)")
	pf.BoolVar(&flags.asJSON, "json", false, "Print JSON instead of text")

	rootCmd.AddCommand(
		newSummaryCmd(flags),
		newRolesCmd(flags),
		newRecordsCmd(flags),
	)
	return rootCmd
}

func newSummaryCmd(flags *selectionFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print metrics and every chart for the current filters",
		Long: `Render the dashboard for the given filters.

Example: hrdash summary --data hr.csv --department Sales --age-min 25 --age-max 40 --heatmap`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(flags)
			if err != nil {
				return err
			}
			d := svc.Render(flags.selection(svc))
			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), d)
			}
			printSummary(cmd.OutOrStdout(), d)
			return nil
		},
	}
	cmd.Flags().BoolVar(&flags.heatmap, "heatmap", false, "Include the satisfaction correlation matrix")
	return cmd
}

func newRolesCmd(flags *selectionFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List the job roles offered for --department",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(flags)
			if err != nil {
				return err
			}
			opts := svc.Options(flags.department)
			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), opts)
			}
			printOptions(cmd.OutOrStdout(), flags.department, opts)
			return nil
		},
	}
}

func newRecordsCmd(flags *selectionFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "records",
		Short: "Print the filtered employee records, highest income first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := loadService(flags)
			if err != nil {
				return err
			}
			d := svc.Render(flags.selection(svc))
			if w, ok := d.Warning(dashboard.SectionRecords); ok {
				return fmt.Errorf("%s", w.Message)
			}
			rows := d.Records
			if limit > 0 && len(rows) > limit {
				rows = rows[:limit]
			}
			if flags.asJSON {
				return writeJSON(cmd.OutOrStdout(), rows)
			}
			printRecords(cmd.OutOrStdout(), rows, len(d.Records))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows to print (0 for all)")
	return cmd
}

// selection builds the filter state, taking unset ages from the service default
func (f *selectionFlags) selection(svc *app.DashboardService) dashboard.Selection {
	sel := svc.DefaultSelection().
		WithDepartment(f.department).
		WithJobRole(f.jobRole).
		WithHeatmap(f.heatmap)
	if f.ageMin >= 0 {
		sel.Age.Min = f.ageMin
	}
	if f.ageMax >= 0 {
		sel.Age.Max = f.ageMax
	}
	return sel
}

// loadService reads the same environment configuration as the server, with
// --data and --sheet taking precedence over DATASET_PATH and DATASET_SHEET.
func loadService(flags *selectionFlags) (*app.DashboardService, error) {
	if flags.dataPath == "" {
		return nil, fmt.Errorf("no dataset: pass --data or set DATASET_PATH")
	}
	appConfig, err := config.LoadWithDataPath(flags.dataPath)
	if err != nil {
		return nil, err
	}

	excelConfig := excel.DefaultExcelConfig(appConfig.Data.FilePath)
	excelConfig.Sheet = appConfig.Data.Sheet
	if flags.sheet != "" {
		excelConfig.Sheet = flags.sheet
	}

	opts := app.DefaultServiceOptions()
	opts.DefaultAge = dashboard.AgeRange{Min: appConfig.Filters.DefaultAgeMin, Max: appConfig.Filters.DefaultAgeMax}
	opts.Logger = internal.NewLogger(internal.ParseLevel(appConfig.Log.Level))
	return app.NewDashboardService(excel.NewDataReader(excelConfig), opts)
}

func writeJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
