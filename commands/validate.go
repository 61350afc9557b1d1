package commands

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/c360studio/reqtrace/model"
	"github.com/c360studio/reqtrace/parser"
	"github.com/c360studio/reqtrace/trace"
)

func newValidateCommand(app *App) *cobra.Command {
	var (
		requirementsOnly   bool
		specificationsOnly bool
	)

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate requirements, specifications, and their cross-references",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			dir := app.Config.Project.Dir
			runID := uuid.New().String()
			app.Logger.Debug("validation run", slog.String("run_id", runID), slog.String("dir", dir))

			loader := parser.NewLoader(app.Logger)
			schemas, err := parser.NewSchemaValidator()
			if err != nil {
				return err
			}

			var errors []string
			var requirements []model.Requirement
			var specifications []model.Specification

			if !specificationsOnly {
				requirements, err = loader.LoadRequirements(dir)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Found %d requirements\n", len(requirements))
				for _, req := range requirements {
					if result := schemas.ValidateRequirement(req); !result.OK() {
						for _, e := range result.Errors {
							errors = append(errors, fmt.Sprintf("Requirement %s: %s", req.ID, e))
						}
					}
				}
			}

			if !requirementsOnly {
				specifications, err = loader.LoadSpecifications(dir)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Found %d specifications\n", len(specifications))
				for _, spec := range specifications {
					if result := schemas.ValidateSpecification(spec); !result.OK() {
						for _, e := range result.Errors {
							errors = append(errors, fmt.Sprintf("Specification %s: %s", spec.ID, e))
						}
					}
				}
			}

			// Cross-reference validation only makes sense over both sets.
			var warnings []string
			if !requirementsOnly && !specificationsOnly {
				validator := trace.NewValidator(requirements, specifications)

				// Dangling requirement links are warnings, not failures: a
				// specification may be written ahead of its requirement.
				missing := validator.MissingRequirementLinks()
				for _, link := range missing {
					warnings = append(warnings, fmt.Sprintf(
						"Specification %s references non-existent requirement %s",
						link.SpecID, link.RequirementID))
				}

				// Dangling dependencies and cycles stay hard errors; the
				// warning-grade findings are filtered out of the error list.
				result := validator.ValidateCrossReferences()
				for _, e := range result.Errors {
					if !isMissingRequirementError(e, missing) {
						errors = append(errors, e)
					}
				}
			}

			if len(warnings) > 0 {
				fmt.Fprintln(out)
				color.New(color.FgHiYellow, color.Bold).Fprintln(out, "Warnings:")
				for _, w := range warnings {
					color.New(color.FgHiYellow).Fprintf(out, "  - %s\n", w)
				}
				fmt.Fprintln(out)
			}

			if len(errors) > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "Validation failed:")
				for _, e := range errors {
					fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", e)
				}
				return fmt.Errorf("validation failed with %d error(s)", len(errors))
			}

			msg := "Validation successful!"
			if len(warnings) == 1 {
				msg += " (1 warning)"
			} else if len(warnings) > 1 {
				msg += fmt.Sprintf(" (%d warnings)", len(warnings))
			}
			color.New(color.FgGreen, color.Bold).Fprintln(out, msg)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&requirementsOnly, "requirements-only", "r", false, "Validate only requirements")
	cmd.Flags().BoolVarP(&specificationsOnly, "specifications-only", "s", false, "Validate only specifications")
	return cmd
}

// isMissingRequirementError reports whether a cross-reference error is
// one of the dangling-requirement findings already surfaced as warnings.
func isMissingRequirementError(err string, missing []trace.MissingLink) bool {
	for _, link := range missing {
		if err == fmt.Sprintf("Specification %s references non-existent requirement %s",
			link.SpecID, link.RequirementID) {
			return true
		}
	}
	return false
}
