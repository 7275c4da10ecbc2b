package main

import (
	"fmt"
	"time"

	"github.com/heartmarshall/surveybot/internal/domain"
	"github.com/spf13/cobra"
)

func (c *cli) auditCmd() *cobra.Command {
	var (
		surveyID string
		actorID  int64
		limit    int
	)
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Show catalog change history for a survey or an operator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var (
				records []domain.AuditRecord
				err     error
			)
			if surveyID != "" {
				records, err = c.app.Audit.GetByEntity(ctx, domain.EntityTypeSurvey, surveyID, limit)
			} else {
				records, err = c.app.Audit.GetByActor(ctx, actorID, limit)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "no audit records")
				return nil
			}
			for _, rec := range records {
				fmt.Fprintf(out, "%s  %-6s  %-13s  %s  actor=%d\n",
					rec.CreatedAt.UTC().Format(time.DateTime), rec.Action, rec.EntityType, rec.EntityID, rec.ActorID)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&surveyID, "survey", "", "survey id whose history to show")
	cmd.Flags().Int64Var(&actorID, "by", 0, "operator id whose changes to show")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of records, newest first (0 for all)")
	cmd.MarkFlagsOneRequired("survey", "by")
	cmd.MarkFlagsMutuallyExclusive("survey", "by")
	return cmd
}
