package main

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/heartmarshall/surveybot/internal/service/responses"
	"github.com/spf13/cobra"
)

func (c *cli) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [survey-id]",
		Short: "Show answer statistics (default: the active survey)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			surveyID, err := c.surveyOrActive(cmd, args)
			if err != nil {
				return err
			}

			stats, err := c.app.Responses.Statistics(ctx, surveyID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\nrespondents: %d, completed: %d\n", stats.SurveyName, stats.TotalRespondents, stats.CompletedCount)
			for i, q := range stats.Questions {
				fmt.Fprintf(out, "\n%d. %s (%d answers)\n", i+1, q.Question, q.Total)
				for _, a := range q.Answers {
					fmt.Fprintf(out, "   %-30s %d\n", a.Answer, a.Count)
				}
			}
			return nil
		},
	}
}

func (c *cli) surveyOrActive(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	active, err := c.app.Catalog.GetActive(cmd.Context())
	if err != nil {
		return "", err
	}
	if active == nil {
		return "", fmt.Errorf("no active survey; pass a survey id")
	}
	return active.ID, nil
}

func (c *cli) respondentsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "respondents <survey-id>",
		Short: "List users who answered a survey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := c.app.Responses.ListRespondents(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			ids := make([]int64, 0, len(users))
			for id := range users {
				ids = append(ids, id)
			}
			slices.Sort(ids)

			out := cmd.OutOrStdout()
			for _, id := range ids {
				fmt.Fprintf(out, "%d  @%s\n", id, users[id])
			}
			return nil
		},
	}
}

func (c *cli) answersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "answers <survey-id> <user-id>",
		Short: "Show the answers of one user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[1])
			}

			answers, err := c.app.Responses.UserAnswers(cmd.Context(), userID, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, a := range answers {
				fmt.Fprintf(out, "%d. %s\n   %s\n", i+1, a.Question, a.Text)
			}
			return nil
		},
	}
}

func (c *cli) exportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export <survey-id>",
		Short: "Write a report file into the export directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.app.Responses.Export(cmd.Context(), args[0], responses.ExportFormat(format))
			if err != nil {
				return describe(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", string(responses.FormatText), "txt or csv")
	return cmd
}
