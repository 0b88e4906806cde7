package cli

import (
	"context"

	"github.com/clinicboard/clinicboard/libs/config"
	"github.com/clinicboard/clinicboard/libs/db"
	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"
)

// beginner is satisfied by *db.Pool and pgxmock pools.
type beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type rootOptions struct {
	databaseURL string
	// openDB is swapped in tests.
	openDB func(ctx context.Context, url string) (beginner, func(), error)
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{openDB: openPool})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clinicctl",
		Short: "clinicctl operates the clinic dashboard",
		Long: `clinicctl applies the dashboard schema, seeds demo data, mints session
tokens and queries the dashboard over gRPC.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return config.LoadDotenv()
		},
	}
	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "", "Postgres URL (defaults to $DATABASE_URL)")

	cmd.AddCommand(newMigrateCmd(opts))
	cmd.AddCommand(newSeedCmd(opts))
	cmd.AddCommand(newDashboardCmd())
	cmd.AddCommand(newTokenCmd())
	return cmd
}

func (o *rootOptions) url() (string, error) {
	if o.databaseURL != "" {
		return o.databaseURL, nil
	}
	return config.RequiredString("DATABASE_URL")
}

func openPool(ctx context.Context, url string) (beginner, func(), error) {
	pool, err := db.Open(ctx, url, db.Options{MaxConns: 2})
	if err != nil {
		return nil, nil, err
	}
	return pool, pool.Close, nil
}
