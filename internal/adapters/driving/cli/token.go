package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Inspect and refresh the stored tokens",
}

var tokenRefreshCmd = &cobra.Command{
	Use:   "refresh",
	Short: "Force an immediate token refresh",
	Long: `Runs a refresh exchange now, regardless of how much validity the
current token has left. Reports the new expiry. If the refresh token is
rejected the stored tokens are cleared and a fresh 'login' is required.`,
	RunE: runTokenRefresh,
}

var tokenStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored token state",
	RunE:  runTokenStatus,
}

func init() {
	tokenCmd.AddCommand(tokenRefreshCmd)
	tokenCmd.AddCommand(tokenStatusCmd)
	rootCmd.AddCommand(tokenCmd)
}

func runTokenRefresh(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	status, err := authService.RefreshToken(context.Background())
	if err != nil {
		return err
	}

	cmd.Println("Tokens refreshed.")
	printTokenStatus(cmd, status)
	return nil
}

func runTokenStatus(cmd *cobra.Command, _ []string) error {
	if authService == nil {
		return errors.New("auth service not configured")
	}

	status, err := authService.Status(context.Background())
	if err != nil {
		return err
	}

	if !status.Authenticated {
		cmd.Println("Not authenticated. Run 'hive-schedule login' first.")
		return nil
	}
	printTokenStatus(cmd, status)
	return nil
}

func printTokenStatus(cmd *cobra.Command, status *domain.TokenStatus) {
	if status.AccountID != "" {
		cmd.Printf("Account:       %s\n", status.AccountID)
	}
	remaining := status.Remaining.Round(time.Second)
	switch {
	case status.ExpiresAt.IsZero():
		cmd.Println("Expires:       unknown")
	case remaining < 0:
		cmd.Printf("Expires:       %s (expired %s ago)\n",
			status.ExpiresAt.Local().Format("2006-01-02 15:04:05"), -remaining)
	default:
		cmd.Printf("Expires:       %s (in %s)\n",
			status.ExpiresAt.Local().Format("2006-01-02 15:04:05"), remaining)
	}
	if status.HasRefreshToken {
		cmd.Println("Refresh token: stored")
	} else {
		cmd.Println("Refresh token: none (no automatic refresh)")
	}
}
