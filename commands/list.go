package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/c360studio/reqtrace/model"
	"github.com/c360studio/reqtrace/parser"
)

func newListCommand(app *App) *cobra.Command {
	var (
		kind   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List requirements and specifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "json" && format != "yaml" {
				return fmt.Errorf("unknown format %q (want table, json, or yaml)", format)
			}
			if kind != "" && kind != "requirements" && kind != "specifications" {
				return fmt.Errorf("unknown type %q (want requirements or specifications)", kind)
			}

			project, err := parser.NewLoader(app.Logger).LoadProject(app.Config.Project.Dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			type listing struct {
				Requirements   []model.Requirement   `json:"requirements,omitempty" yaml:"requirements,omitempty"`
				Specifications []model.Specification `json:"specifications,omitempty" yaml:"specifications,omitempty"`
			}
			data := listing{}
			if kind != "specifications" {
				data.Requirements = project.Requirements
			}
			if kind != "requirements" {
				data.Specifications = project.Specifications
			}

			switch format {
			case "json":
				encoded, err := json.MarshalIndent(data, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(encoded))
			case "yaml":
				encoded, err := yaml.Marshal(data)
				if err != nil {
					return err
				}
				fmt.Fprint(out, string(encoded))
			default:
				if kind != "specifications" {
					fmt.Fprintln(out, "Requirements:")
					fmt.Fprintf(out, "%-16s %-40s %s\n", "ID", "Title", "Type")
					fmt.Fprintln(out, strings.Repeat("-", 70))
					for _, req := range data.Requirements {
						fmt.Fprintf(out, "%-16s %-40s %s\n", req.ID, truncate(req.Title, 40), req.Category)
					}
				}
				if kind != "requirements" {
					if kind == "" {
						fmt.Fprintln(out)
					}
					fmt.Fprintln(out, "Specifications:")
					fmt.Fprintf(out, "%-16s %-40s %s\n", "ID", "Title", "Related Requirements")
					fmt.Fprintln(out, strings.Repeat("-", 80))
					for _, spec := range data.Specifications {
						related := strings.Join(spec.RelatedRequirements, ", ")
						if len(spec.RelatedRequirements) > 2 {
							related = strings.Join(spec.RelatedRequirements[:2], ", ") + "..."
						}
						fmt.Fprintf(out, "%-16s %-40s %s\n", spec.ID, truncate(spec.Title, 40), related)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "", "Filter by type (requirements/specifications)")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format (table, json, yaml)")
	return cmd
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
