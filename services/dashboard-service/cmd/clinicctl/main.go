// clinicctl is the operator CLI for the dashboard service.
//
// Usage:
//
//	clinicctl migrate
//	clinicctl seed --clinic-name "Clinica Vida"
//	clinicctl dashboard --addr localhost:9090 --token <session token> --from 2026-03-01 --to 2026-03-31
//	clinicctl token --sub user-1 --clinic-id <uuid>
package main

import (
	"fmt"
	"os"

	"github.com/clinicboard/clinicboard/services/dashboard-service/cmd/clinicctl/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
