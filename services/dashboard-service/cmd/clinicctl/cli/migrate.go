package cli

import (
	"context"
	"fmt"

	"github.com/clinicboard/clinicboard/services/dashboard-service/schema"
	"github.com/spf13/cobra"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the dashboard schema",
		Long:  `Create the tables and indexes the dashboard reads. Safe to run repeatedly.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			url, err := opts.url()
			if err != nil {
				return err
			}
			conn, closeFn, err := opts.openDB(cmd.Context(), url)
			if err != nil {
				return fmt.Errorf("connect: %w", err)
			}
			defer closeFn()

			n, err := applySchema(cmd.Context(), conn)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d statements\n", n)
			return nil
		},
	}
}

// applySchema runs every statement in one transaction.
func applySchema(ctx context.Context, b beginner) (int, error) {
	tx, err := b.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	stmts := schema.Statements()
	for i, stmt := range stmts {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return 0, fmt.Errorf("statement %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return len(stmts), nil
}
