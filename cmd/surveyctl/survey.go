package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/heartmarshall/surveybot/internal/service/catalog"
	"github.com/spf13/cobra"
)

func (c *cli) surveyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "survey",
		Short: "Create, inspect and activate surveys",
	}
	cmd.AddCommand(
		c.surveyCreateCmd(),
		c.surveyListCmd(),
		c.surveyShowCmd(),
		c.surveyDeleteCmd(),
		c.surveyActivateCmd(),
		c.surveyDeactivateCmd(),
	)
	return cmd
}

func (c *cli) surveyCreateCmd() *cobra.Command {
	var (
		file        string
		name        string
		description string
		questions   []string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a survey from a YAML definition or flags",
		Example: `  surveyctl survey create -f office.yaml
  surveyctl survey create --name Office --description "How is the office?" -q "Warm?" -q "Quiet?"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var input catalog.CreateSurveyInput
			if file != "" {
				def, err := readDefinition(cmd, file)
				if err != nil {
					return err
				}
				input = def
			} else {
				input.Name = name
				input.Description = description
				for _, q := range questions {
					input.Questions = append(input.Questions, catalog.QuestionInput{Text: q})
				}
			}

			ctx := c.operator(cmd.Context())
			survey, err := c.app.Catalog.Create(ctx, input)
			if err != nil {
				return describe(err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "created survey %s\n", survey.ID)
			if active, err := c.app.Catalog.GetActive(ctx); err == nil && active != nil && active.ID == survey.ID {
				fmt.Fprintln(out, "survey is now active")
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML definition file (- for stdin)")
	cmd.Flags().StringVar(&name, "name", "", "survey name")
	cmd.Flags().StringVar(&description, "description", "", "survey description")
	cmd.Flags().StringArrayVarP(&questions, "question", "q", nil, "Yes/No question text (repeatable)")
	cmd.MarkFlagsMutuallyExclusive("file", "name")
	return cmd
}

func readDefinition(cmd *cobra.Command, file string) (catalog.CreateSurveyInput, error) {
	var r io.Reader = cmd.InOrStdin()
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return catalog.CreateSurveyInput{}, fmt.Errorf("open definition: %w", err)
		}
		defer f.Close()
		r = f
	}
	input, err := catalog.ParseDefinitionYAML(r)
	if err != nil {
		return catalog.CreateSurveyInput{}, describe(err)
	}
	return input, nil
}

func (c *cli) surveyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List surveys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			surveys, err := c.app.Catalog.List(ctx)
			if err != nil {
				return err
			}
			active, err := c.app.Catalog.GetActive(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(surveys) == 0 {
				fmt.Fprintln(out, "no surveys")
				return nil
			}
			for _, s := range surveys {
				mark := ""
				if active != nil && active.ID == s.ID {
					mark = "  [active]"
				}
				fmt.Fprintf(out, "%s  %s  (%d questions)%s\n", s.ID, s.Name, len(s.Questions), mark)
			}
			return nil
		},
	}
}

func (c *cli) surveyShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <survey-id>",
		Short: "Show a survey with its questions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			survey, err := c.app.Catalog.Get(cmd.Context(), args[0])
			if err != nil {
				return describe(err)
			}
			printSurvey(cmd.OutOrStdout(), survey)
			return nil
		},
	}
}

func printSurvey(out io.Writer, s *domain.Survey) {
	fmt.Fprintf(out, "%s\n%s\n", s.Name, s.Description)
	fmt.Fprintf(out, "id: %s, created: %s\n", s.ID, s.CreatedAt.Format("2006-01-02 15:04"))
	for i, q := range s.Questions {
		fmt.Fprintf(out, "%d. %s [%s]\n", i+1, q.Text, q.Answer.Kind)
		for _, opt := range q.Answer.Choices {
			fmt.Fprintf(out, "   - %s\n", opt)
		}
	}
}

func (c *cli) surveyDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <survey-id>",
		Short: "Delete a survey; recorded responses are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Catalog.Delete(c.operator(cmd.Context()), args[0]); err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted survey %s\n", args[0])
			return nil
		},
	}
}

func (c *cli) surveyActivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <survey-id>",
		Short: "Make a survey the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Catalog.SetActive(c.operator(cmd.Context()), args[0]); err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "active survey: %s\n", args[0])
			return nil
		},
	}
}

func (c *cli) surveyDeactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate",
		Short: "Clear the active survey",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Catalog.SetActive(c.operator(cmd.Context()), ""); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "no active survey")
			return nil
		},
	}
}

// describe expands validation errors into one line per field.
func describe(err error) error {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		return err
	}
	var details strings.Builder
	for _, fe := range verr.Errors {
		fmt.Fprintf(&details, "\n  %s: %s", fe.Field, fe.Message)
	}
	return fmt.Errorf("%w%s", err, details.String())
}
