package commands

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/c360studio/reqtrace/coverage"
	"github.com/c360studio/reqtrace/parser"
)

func newCoverageCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage [test-list-file]",
		Short: "Check test coverage for specification unit tests",
		Long: `Coverage cross-checks the unit tests declared by specifications against
a test-run log: a free-format text file listing executed tests, one per
line (plain paths, runner-style path::function references, or prose).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			dir := app.Config.Project.Dir

			testList := app.Config.Coverage.TestList
			if len(args) == 1 {
				testList = args[0]
			}
			if testList == "" {
				return fmt.Errorf("no test list file given (argument or coverage.test_list config)")
			}

			runID := uuid.New().String()
			app.Logger.Debug("coverage run",
				slog.String("run_id", runID),
				slog.String("test_list", testList))

			specifications, err := parser.NewLoader(app.Logger).LoadSpecifications(dir)
			if err != nil {
				return err
			}
			if len(specifications) == 0 {
				return fmt.Errorf("no specifications found in %s; run 'reqtrace init' first", dir)
			}

			analyzer := coverage.NewAnalyzer(dir, specifications, app.Logger)
			report, err := analyzer.AnalyzeTestList(cmd.Context(), testList)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, "Unit Test Coverage Analysis")
			fmt.Fprintf(out, "Found %d specifications\n", len(specifications))
			fmt.Fprintf(out, "Analyzed test list: %s\n\n", testList)

			tested := report.TestedUnits()
			untested := report.UntestedUnits()
			testedFunctions := report.TestedFunctions()
			untestedFunctions := report.UntestedFunctions()

			if len(tested) > 0 {
				color.New(color.FgGreen).Fprintf(out, "Tested unit tests (%d):\n", len(tested))
				for _, unit := range tested {
					fmt.Fprintf(out, "  - %s\n", unit)
					if functions := testedFunctions[unit]; len(functions) > 0 {
						fmt.Fprintf(out, "    Functions found in test list: %s\n", strings.Join(functions, ", "))
					}
					if functions := untestedFunctions[unit]; len(functions) > 0 {
						color.New(color.FgYellow).Fprintf(out,
							"    Test functions NOT in test list: %s\n", strings.Join(functions, ", "))
					}
				}
				fmt.Fprintln(out)
			}

			if len(untested) > 0 {
				color.New(color.FgRed).Fprintf(out, "Untested unit tests (%d):\n", len(untested))
				for _, unit := range untested {
					var requiredBy []string
					for _, spec := range specifications {
						if spec.UnitTest == unit {
							requiredBy = append(requiredBy, spec.ID)
						}
					}
					fmt.Fprintf(out, "  - %s (required by: %s)\n", unit, strings.Join(requiredBy, ", "))
					if functions := untestedFunctions[unit]; len(functions) > 0 {
						color.New(color.FgRed).Fprintf(out,
							"    Test functions NOT in test list: %s\n", strings.Join(functions, ", "))
					}
				}
				fmt.Fprintln(out)
			}

			pct := report.CoveragePercentage()
			fmt.Fprintf(out, "Coverage: %.1f%% (%d/%d unit tests covered)\n",
				pct, len(tested), len(tested)+len(untested))

			if pct < 100 {
				color.New(color.FgYellow).Fprintln(out, "Some specification unit tests are not being executed")
			} else {
				color.New(color.FgGreen).Fprintln(out, "All specification unit tests are being executed!")
			}
			return nil
		},
	}
	return cmd
}
