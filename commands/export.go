package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/c360studio/reqtrace/export"
	"github.com/c360studio/reqtrace/parser"
	"github.com/c360studio/reqtrace/trace"
)

func newExportCommand(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export requirements and specifications to an Excel traceability matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			project, err := parser.NewLoader(app.Logger).LoadProject(app.Config.Project.Dir)
			if err != nil {
				return err
			}
			if len(project.Requirements) == 0 && len(project.Specifications) == 0 {
				return fmt.Errorf("no requirements or specifications found in %s", app.Config.Project.Dir)
			}
			fmt.Fprintf(out, "Found %d requirements and %d specifications\n",
				len(project.Requirements), len(project.Specifications))

			if output == "" {
				output = app.Config.Export.Output
			}
			if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			exporter := export.NewExporter(project.Requirements, project.Specifications)
			if err := exporter.ExportExcel(output); err != nil {
				return err
			}
			fmt.Fprintf(out, "Traceability matrix exported to: %s\n", output)

			if len(project.Requirements) > 0 && len(project.Specifications) > 0 {
				validator := trace.NewValidator(project.Requirements, project.Specifications)
				untraced := validator.UntracedRequirements()
				if len(untraced) > 0 {
					color.New(color.FgYellow).Fprintf(out,
						"%d requirement(s) have no specifications\n", len(untraced))
				} else {
					color.New(color.FgGreen).Fprintln(out, "All requirements have specifications")
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output Excel file path")
	return cmd
}
