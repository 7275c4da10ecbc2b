package main

import (
	"fmt"

	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/heartmarshall/surveybot/internal/service/catalog"
	"github.com/spf13/cobra"
)

func (c *cli) questionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "question",
		Short: "Edit the questions of a survey",
		Long:  "Edit the questions of a survey. Questions are numbered from 1.",
	}
	cmd.AddCommand(
		c.questionAddCmd(),
		c.questionEditCmd(),
		c.questionDeleteCmd(),
		c.questionAnswerCmd(),
	)
	return cmd
}

// schemaFlags binds --type and --choice to an answer schema.
type schemaFlags struct {
	kind    string
	choices []string
}

func (f *schemaFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.kind, "type", "", "answer type: binary, choices or free_text (default binary, or choices when --choice is set)")
	cmd.Flags().StringArrayVar(&f.choices, "choice", nil, "answer option (repeatable)")
}

func (f *schemaFlags) schema() domain.AnswerSchema {
	kind := domain.AnswerKind(f.kind)
	if f.kind == "" {
		kind = domain.AnswerBinary
		if len(f.choices) > 0 {
			kind = domain.AnswerChoices
		}
	}
	return domain.AnswerSchema{Kind: kind, Choices: f.choices}
}

func (c *cli) questionAddCmd() *cobra.Command {
	var (
		text   string
		answer schemaFlags
	)
	cmd := &cobra.Command{
		Use:     "add <survey-id>",
		Short:   "Append a question",
		Example: `  surveyctl question add s1 --text "Pick a day" --choice Mon --choice Fri`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := c.app.Catalog.AddQuestion(c.operator(cmd.Context()), catalog.AddQuestionInput{
				SurveyID: args[0],
				Text:     text,
				Answer:   answer.schema(),
			})
			if err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "question added to %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "question text")
	answer.bind(cmd)
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func (c *cli) questionEditCmd() *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "edit <survey-id> <number>",
		Short: "Replace the text of a question",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseNumber(args[1])
			if err != nil {
				return err
			}
			err = c.app.Catalog.UpdateQuestion(c.operator(cmd.Context()), catalog.UpdateQuestionInput{
				SurveyID: args[0],
				Index:    index,
				Text:     text,
			})
			if err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "question %s updated\n", args[1])
			return nil
		},
	}
	cmd.Flags().StringVar(&text, "text", "", "new question text")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func (c *cli) questionDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <survey-id> <number>",
		Short: "Delete a question",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseNumber(args[1])
			if err != nil {
				return err
			}
			if err := c.app.Catalog.DeleteQuestion(c.operator(cmd.Context()), args[0], index); err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "question %s deleted\n", args[1])
			return nil
		},
	}
}

func (c *cli) questionAnswerCmd() *cobra.Command {
	var answer schemaFlags
	cmd := &cobra.Command{
		Use:     "answer <survey-id> <number>",
		Short:   "Replace the answer options of a question",
		Example: `  surveyctl question answer s1 2 --type free_text`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseNumber(args[1])
			if err != nil {
				return err
			}
			err = c.app.Catalog.SetQuestionAnswer(c.operator(cmd.Context()), catalog.SetQuestionAnswerInput{
				SurveyID: args[0],
				Index:    index,
				Answer:   answer.schema(),
			})
			if err != nil {
				return describe(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "question %s answers updated\n", args[1])
			return nil
		},
	}
	answer.bind(cmd)
	return cmd
}
