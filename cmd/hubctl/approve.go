package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/creatorhub-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/creatorhub-backend/internal/adapter/postgres/audit"
	profilerepo "github.com/heartmarshall/creatorhub-backend/internal/adapter/postgres/profile"
	workflowrepo "github.com/heartmarshall/creatorhub-backend/internal/adapter/postgres/workflow"
	"github.com/heartmarshall/creatorhub-backend/internal/domain"
	"github.com/heartmarshall/creatorhub-backend/internal/service/moderation"
)

func newApproveCommand(configPath *string) *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "approve <creator|workflow> <id>",
		Short: "Set the moderation status of a creator profile or workflow",
		Long: `Set the moderation status of a creator profile or workflow.
Approved records appear in the public listings once the snapshot cache
is invalidated, which this command does.

Examples:
  hubctl approve creator 0b7e...
  hubctl approve workflow 9f1c... --status rejected`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"creator", "workflow"},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[1])
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[1], err)
			}

			ctx := cmd.Context()
			e, err := openEnv(ctx, *configPath)
			if err != nil {
				return err
			}
			defer e.Close()

			svc := moderation.NewService(e.log,
				profilerepo.New(e.pool),
				workflowrepo.New(e.pool),
				auditrepo.New(e.pool),
				postgres.NewTxManager(e.pool),
				e.cache,
			)

			switch args[0] {
			case "creator":
				c, err := svc.SetCreatorStatus(ctx, id, domain.ProfileStatus(status))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "creator %s (%s) is now %s\n", c.ID, c.Name, c.Status)
			case "workflow":
				w, err := svc.SetWorkflowStatus(ctx, id, domain.WorkflowStatus(status))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "workflow %s (%s) is now %s\n", w.ID, w.Title, w.Status)
			default:
				return fmt.Errorf("unknown kind %q: want creator or workflow", args[0])
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "approved", "target status (draft, pending, approved, rejected)")

	return cmd
}
