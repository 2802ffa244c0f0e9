package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/team-lms-2026-1/LMS-project-sub001/pkg/lmsapi"
)

type cliOptions struct {
	baseURL string
	token   string
	loginID string
	pass    string
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	root := &cobra.Command{
		Use:           "lmsadmin",
		Short:         "Operator console for the LMS API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.baseURL, "base-url", envOr("LMS_BASE_URL", "http://localhost:3000"), "base URL of the LMS deployment")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("LMS_TOKEN"), "bearer token (skips login)")
	root.PersistentFlags().StringVar(&opts.loginID, "login-id", os.Getenv("LMS_LOGIN_ID"), "login id used when no token is given")
	root.PersistentFlags().StringVar(&opts.pass, "password", os.Getenv("LMS_PASSWORD"), "password used when no token is given")

	root.AddCommand(
		newListCmd(opts, "accounts", "/api/accounts", []string{"role", "status"},
			[]column{{"ID", []string{"id", "accountId"}}, {"LOGIN", []string{"loginId"}}, {"NAME", []string{"name", "fullName"}}, {"ROLE", []string{"role"}}, {"STATUS", []string{"status"}}}),
		newListCmd(opts, "departments", "/api/departments", []string{"status"},
			[]column{{"ID", []string{"id", "departmentId"}}, {"NAME", []string{"name"}}, {"CODE", []string{"code"}}, {"STATUS", []string{"status"}}}),
		newListCmd(opts, "offerings", "/api/offerings", []string{"term", "departmentId", "status"},
			[]column{{"ID", []string{"id", "offeringId"}}, {"CODE", []string{"courseCode"}}, {"TITLE", []string{"title"}}, {"TERM", []string{"term"}}, {"SEATS", []string{"enrolled"}}, {"CAP", []string{"capacity"}}, {"STATUS", []string{"status"}}}),
		newListCmd(opts, "surveys", "/api/surveys", []string{"status"},
			[]column{{"ID", []string{"id", "surveyId"}}, {"TITLE", []string{"title"}}, {"STATUS", []string{"status"}}}),
		newToggleCmd(opts),
	)

	return root
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// apiClient builds a signed-in client from the persistent flags.
func apiClient(ctx context.Context, opts *cliOptions) (*lmsapi.Client, error) {
	client := lmsapi.New(opts.baseURL)
	if opts.token != "" {
		client.SetToken(opts.token)
		return client, nil
	}
	if opts.loginID == "" || opts.pass == "" {
		return nil, fmt.Errorf("either --token or --login-id/--password is required")
	}
	if _, err := client.Login(ctx, opts.loginID, opts.pass); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return client, nil
}

func cmdContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
