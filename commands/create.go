package commands

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/reqtrace/model"
	"github.com/c360studio/reqtrace/parser"
)

func newCreateCommand(app *App) *cobra.Command {
	var (
		id      string
		title   string
		reqType string
		output  string
	)

	cmd := &cobra.Command{
		Use:       "create (requirement|specification)",
		Short:     "Create a new requirement or specification document",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"requirement", "specification"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			if kind != "requirement" && kind != "specification" {
				return fmt.Errorf("unknown type %q (want requirement or specification)", kind)
			}

			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			prefix := model.RequirementPrefix
			if kind == "specification" {
				prefix = model.SpecificationPrefix
			}
			if id == "" {
				suffix := prompt(in, out, fmt.Sprintf("Enter %s ID (without %s prefix)", kind, prefix), "SYS-001")
				id = prefix + suffix
			} else if !strings.HasPrefix(id, prefix) {
				id = prefix + id
			}
			if title == "" {
				title = prompt(in, out, fmt.Sprintf("Enter %s title", kind), "")
			}
			description := prompt(in, out, fmt.Sprintf("Enter %s description", kind), "")

			if kind == "requirement" {
				return createRequirement(app, in, out, id, title, description, reqType, output)
			}
			return createSpecification(app, in, out, id, title, description, output)
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "ID suffix for the new item (prefix added automatically)")
	cmd.Flags().StringVar(&title, "title", "", "Title for the new item")
	cmd.Flags().StringVar(&reqType, "req-type", "", "Type of requirement (functional, security, ...)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file path")
	return cmd
}

func createRequirement(app *App, in *bufio.Reader, out io.Writer, id, title, description, reqType, output string) error {
	if reqType == "" {
		choices := make([]string, len(model.Categories))
		for i, c := range model.Categories {
			choices[i] = c.String()
		}
		reqType = prompt(in, out, "Enter requirement type ("+strings.Join(choices, ", ")+")", "functional")
	}

	fmt.Fprintln(out, "Enter acceptance criteria (empty line to finish):")
	var criteria []string
	for {
		criterion := prompt(in, out, "Criterion", "")
		if criterion == "" {
			break
		}
		criteria = append(criteria, criterion)
	}

	req, err := model.NewRequirement(model.Requirement{
		ID:                 id,
		Title:              title,
		Description:        description,
		Category:           model.Category(reqType),
		AcceptanceCriteria: criteria,
	})
	if err != nil {
		return err
	}

	if output == "" {
		output = "requirements/" + documentFileName(id)
	}
	if err := parser.SaveRequirement(req, output); err != nil {
		return err
	}
	fmt.Fprintf(out, "Created requirement: %s\n", output)
	return nil
}

func createSpecification(app *App, in *bufio.Reader, out io.Writer, id, title, description, output string) error {
	existing, err := parser.NewLoader(app.Logger).LoadRequirements(app.Config.Project.Dir)
	if err != nil {
		existing = nil
	}
	fmt.Fprintf(out, "\nFound %d existing requirements.\n", len(existing))

	related := selectRequirements(in, out, existing)
	if len(related) == 0 {
		return fmt.Errorf("at least one related requirement must be specified")
	}

	implementationUnit := prompt(in, out, "Enter implementation unit path", "")
	unitTest := prompt(in, out, "Enter unit test path", "")

	spec, err := model.NewSpecification(model.Specification{
		ID:                  id,
		Title:               title,
		Description:         description,
		RelatedRequirements: related,
		ImplementationUnit:  implementationUnit,
		UnitTest:            unitTest,
	})
	if err != nil {
		return err
	}

	if output == "" {
		output = "requirements/specifications/" + documentFileName(id)
	}
	if err := parser.SaveSpecification(spec, output); err != nil {
		return err
	}
	fmt.Fprintf(out, "Created specification: %s\n", output)
	return nil
}

// selectRequirements offers numbered selection over the existing
// requirements ("1,3,5" or ranges like "1-3,5"); an empty selection or
// no existing requirements falls back to manual comma-separated entry.
func selectRequirements(in *bufio.Reader, out io.Writer, existing []model.Requirement) []string {
	if len(existing) == 0 {
		fmt.Fprintln(out, "No existing requirements found. Please enter requirement IDs manually.")
		return splitIDs(prompt(in, out, "Enter related requirement IDs (comma-separated)", ""))
	}

	fmt.Fprintln(out, "\nExisting requirements:")
	for i, req := range existing {
		fmt.Fprintf(out, "  %d. %s - %s\n", i+1, req.ID, req.Title)
	}
	fmt.Fprintln(out, "\nSelect requirements by number (e.g., '1,3,5' or '1-3,5'):")
	fmt.Fprintln(out, "Or press ENTER to enter requirement IDs manually")

	selection := prompt(in, out, "Selection", "")
	if strings.TrimSpace(selection) == "" {
		return splitIDs(prompt(in, out, "Enter related requirement IDs (comma-separated)", ""))
	}

	indexes, err := parseSelection(selection, len(existing))
	if err != nil {
		fmt.Fprintln(out, "Invalid selection. Please enter requirement IDs manually.")
		return splitIDs(prompt(in, out, "Enter related requirement IDs (comma-separated)", ""))
	}

	var ids []string
	seen := make(map[string]bool)
	for _, idx := range indexes {
		id := existing[idx].ID
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	return ids
}

// parseSelection turns "1-3,5" into zero-based indexes, dropping entries
// outside [1, n].
func parseSelection(selection string, n int) ([]int, error) {
	var indexes []int
	for _, part := range strings.Split(selection, ",") {
		part = strings.TrimSpace(part)
		if before, after, ok := strings.Cut(part, "-"); ok {
			start, err := strconv.Atoi(strings.TrimSpace(before))
			if err != nil {
				return nil, err
			}
			end, err := strconv.Atoi(strings.TrimSpace(after))
			if err != nil {
				return nil, err
			}
			for i := start; i <= end; i++ {
				if i >= 1 && i <= n {
					indexes = append(indexes, i-1)
				}
			}
		} else {
			i, err := strconv.Atoi(part)
			if err != nil {
				return nil, err
			}
			if i >= 1 && i <= n {
				indexes = append(indexes, i-1)
			}
		}
	}
	return indexes, nil
}

func splitIDs(s string) []string {
	var ids []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			ids = append(ids, part)
		}
	}
	return ids
}

func documentFileName(id string) string {
	return strings.ToLower(strings.ReplaceAll(id, "-", "_")) + ".yaml"
}

func prompt(in *bufio.Reader, out io.Writer, label, def string) string {
	if def != "" {
		fmt.Fprintf(out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(out, "%s: ", label)
	}
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}
