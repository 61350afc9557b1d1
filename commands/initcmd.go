package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/c360studio/reqtrace/model"
	"github.com/c360studio/reqtrace/parser"
)

func newInitCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new reqtrace project with example documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := app.Config.Project.Dir
			if err := os.MkdirAll(filepath.Join(dir, "requirements", "specifications"), 0755); err != nil {
				return fmt.Errorf("create project layout: %w", err)
			}

			exampleReq, err := model.NewRequirement(model.Requirement{
				ID:          "REQ-SYS-001",
				Title:       "System shall authenticate users",
				Description: "The system must provide secure user authentication using industry-standard methods.",
				Category:    model.CategorySecurity,
				AcceptanceCriteria: []string{
					"User can log in with valid credentials",
					"Invalid credentials are rejected",
					"Account lockout after failed attempts",
				},
				Tags: []string{"authentication", "security"},
			})
			if err != nil {
				return err
			}

			exampleSpec, err := model.NewSpecification(model.Specification{
				ID:                  "SPEC-SYS-001",
				Title:               "User authentication implementation",
				Description:         "Implementation of secure user authentication system using OAuth 2.0.",
				RelatedRequirements: []string{"REQ-SYS-001"},
				ImplementationUnit:  "src/auth/authentication.py",
				UnitTest:            "tests/test_authentication.py",
			})
			if err != nil {
				return err
			}

			reqPath := filepath.Join(dir, "requirements", "authentication.yaml")
			if err := parser.SaveRequirement(exampleReq, reqPath); err != nil {
				return err
			}
			specPath := filepath.Join(dir, "requirements", "specifications", "authentication.yaml")
			if err := parser.SaveSpecification(exampleSpec, specPath); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized reqtrace project in %s\n", dir)
			fmt.Fprintln(cmd.OutOrStdout(), "Created example files:")
			fmt.Fprintln(cmd.OutOrStdout(), "  requirements/authentication.yaml")
			fmt.Fprintln(cmd.OutOrStdout(), "  requirements/specifications/authentication.yaml")
			return nil
		},
	}
}
