package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/team-lms-2026-1/LMS-project-sub001/pkg/lmsapi"
)

// togglePaths maps entity names to their status endpoints.
var togglePaths = map[string]string{
	"account":    "/api/accounts",
	"department": "/api/departments",
	"offering":   "/api/offerings",
	"space":      "/api/spaces",
}

func newToggleCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <entity> <id> <current-status> <next-status>",
		Short: "Flip an entity's status (e.g. toggle account 42 ACTIVE SUSPENDED)",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, ok := togglePaths[args[0]]
			if !ok {
				return fmt.Errorf("unknown entity %q (one of: account, department, offering, space)", args[0])
			}
			id, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[1])
			}
			cur, next := args[2], args[3]

			ctx, cancel := cmdContext()
			defer cancel()

			client, err := apiClient(ctx, opts)
			if err != nil {
				return err
			}

			tc := lmsapi.NewToggleController(
				func(int64, string) {}, // no local rows to mutate in a one-shot CLI
				client.StatusCall(path),
			)
			if err := tc.Toggle(ctx, id, cur, next); err != nil {
				return err
			}
			fmt.Printf("%s %d: %s -> %s\n", args[0], id, cur, next)
			return nil
		},
	}
}
