package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/clinicboard/clinicboard/libs/config"
	"github.com/clinicboard/clinicboard/libs/grpcx"
	clinicboardv1 "github.com/clinicboard/clinicboard/protos/gen/clinicboard/v1"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"
)

func newDashboardCmd() *cobra.Command {
	var (
		addr    string
		token   string
		from    string
		to      string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Fetch the dashboard report over gRPC",
		Long: `Call DashboardService/GetDashboard with a session token and print the report as JSON.
Dates are YYYY-MM-DD; both default to the current month on the server.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if token == "" {
				token = config.String("CLINICBOARD_TOKEN", "")
			}
			conn, err := grpcx.Dial(addr, grpcx.DialOptions{BearerToken: token})
			if err != nil {
				return fmt.Errorf("dial %s: %w", addr, err)
			}
			defer conn.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			client := clinicboardv1.NewDashboardServiceClient(conn)
			report, err := client.GetDashboard(ctx, &clinicboardv1.GetDashboardRequest{From: from, To: to})
			if err != nil {
				return err
			}

			out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(report)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", config.String("DASHBOARD_GRPC_ADDR", "localhost:9090"), "Dashboard gRPC address")
	cmd.Flags().StringVar(&token, "token", "", "Session token (defaults to $CLINICBOARD_TOKEN)")
	cmd.Flags().StringVar(&from, "from", "", "First day of the range (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Last day of the range (YYYY-MM-DD)")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Call timeout")
	return cmd
}
