package main

import (
	"fmt"
	"os"

	"hrdash/adapters/excel"
	"hrdash/internal/testkit"

	"github.com/spf13/cobra"
)

func main() {
	if err := newGenCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newGenCmd() *cobra.Command {
	cfg := testkit.DefaultEmployeeConfig()
	var out string

	cmd := &cobra.Command{
		Use:   "hrdash-gen",
		Short: "Write a synthetic HR dataset as CSV, TSV or XLSX",
		Long: `Generate a deterministic synthetic employee extract with every column
the dashboard reads.

Example: hrdash-gen --rows 1470 --seed 42 --out hr.xlsx`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.EmployeeCount <= 0 {
				return fmt.Errorf("rows must be > 0")
			}
			records, err := testkit.NewEmployeeDataGenerator(cfg).Generate()
			if err != nil {
				return fmt.Errorf("error generating dataset: %w", err)
			}
			if err := excel.WriteFile(out, records); err != nil {
				return fmt.Errorf("error writing %s: %w", out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", out)
			fmt.Fprintf(cmd.OutOrStdout(), "Total Columns: %d | Total Rows: %d\n", len(excel.Headers()), len(records))
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.EmployeeCount, "rows", cfg.EmployeeCount, "Number of employees")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "RNG seed (deterministic)")
	cmd.Flags().IntVar(&cfg.MinAge, "min-age", cfg.MinAge, "Youngest generated age")
	cmd.Flags().IntVar(&cfg.MaxAge, "max-age", cfg.MaxAge, "Oldest generated age")
	cmd.Flags().Float64Var(&cfg.AttritionRate, "attrition-rate", cfg.AttritionRate, "Share of employees with Attrition = Yes")
	cmd.Flags().StringVar(&out, "out", "hr_employees.csv", "Output file (.csv, .tsv or .xlsx)")

	return cmd
}
