package cli

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rrwood/hive-schedule-mgr/internal/adapters/driving/httpapi"
	"github.com/rrwood/hive-schedule-mgr/internal/core/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP bridge for automation hosts",
	Long: `Starts a long-running HTTP bridge exposing the schedule commands to
automation hosts such as Home Assistant.

Alongside the HTTP listener, serve keeps the account's tokens fresh on
the configured cadence and watches the profiles file so edits are
validated as soon as they are saved.

Stops cleanly on SIGINT/SIGTERM, draining in-flight requests.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if account == nil {
			return errors.New("serve needs a configured account")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		log := account.log
		refresher := services.NewTokenRefresher(account.tokens, account.settings.Auth.RefreshInterval(), log)

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := refresher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Warnf("Token refresher stopped: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := account.profileStore.Watch(ctx); err != nil {
				log.Warnf("Profiles watcher stopped: %v", err)
			}
		}()

		server := httpapi.NewServer(account.settings.API, httpapi.Services{
			Schedule: scheduleService,
			Auth:     authService,
			Profiles: profileCatalog,
			History:  historyService,
		}, log)

		cmd.Printf("Bridge listening on %s (Ctrl+C to stop)\n", server.Addr())
		err := server.Run(ctx)

		// Stop the helpers even when the listener failed on its own.
		cancel()
		_ = refresher.Stop()
		wg.Wait()

		if err != nil {
			return err
		}
		cmd.Println("Bridge stopped.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
