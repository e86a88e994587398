package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rrwood/hive-schedule-mgr/internal/adapters/driven/auth"
	"github.com/rrwood/hive-schedule-mgr/internal/adapters/driven/beekeeper"
	"github.com/rrwood/hive-schedule-mgr/internal/adapters/driven/config/file"
	"github.com/rrwood/hive-schedule-mgr/internal/adapters/driven/profiles"
	"github.com/rrwood/hive-schedule-mgr/internal/adapters/driven/storage/sqlite"
	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driven"
	"github.com/rrwood/hive-schedule-mgr/internal/core/ports/driving"
	"github.com/rrwood/hive-schedule-mgr/internal/core/services"
	"github.com/rrwood/hive-schedule-mgr/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Persistent flags.
var (
	configDir string
	verbose   bool
)

// Services consumed by the commands. Wired once per invocation by the root
// command; tests swap them directly.
var (
	scheduleService driving.ScheduleService
	authService     driving.AuthService
	profileCatalog  driving.ProfileCatalog
	historyService  driving.HistoryService
)

// account is the wired per-account context, kept for serve mode and for
// teardown after the command finishes. nil until wiring runs.
var account *accountContext

// wired suppresses account wiring once services are in place, whether from
// wireAccount or from a test fixture.
var wired bool

// accountContext bundles everything wired for one Hive account.
type accountContext struct {
	settings *domain.Settings
	log      *logger.Logger

	store        *sqlite.Store
	profileStore *profiles.FileStore
	tokens       driven.TokenSource
}

// Close releases the account's resources.
func (a *accountContext) Close() error {
	return a.store.Close()
}

var rootCmd = &cobra.Command{
	Use:   "hive-schedule",
	Short: "Manage Hive heating schedules",
	Long: `Pushes heating schedules to Hive smart thermostats through the
vendor's REST API, one day at a time.

Schedules come from named profiles in an editable YAML file or from
explicit set-point lists. Authentication happens once via 'login';
tokens are stored locally and refreshed automatically afterwards.

Examples:
  # One-time setup
  hive-schedule login

  # Push the workday profile to Monday
  hive-schedule set-day --node <node-id> --day monday --profile workday

  # Push an explicit schedule
  hive-schedule set-day --node <node-id> --day saturday \
    --at 07:30=18.5 --at 22:00=16

  # Run the HTTP bridge for automation hosts
  hive-schedule serve`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if !commandNeedsAccount(cmd) {
			return nil
		}
		return wireAccount()
	},
	SilenceUsage: true,
}

// commandNeedsAccount reports whether the command touches stores or the
// vendor API. Pure commands run without an account.
func commandNeedsAccount(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "decode", "help", "completion":
		return false
	default:
		return true
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.hive-schedule)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command and tears the account down afterwards.
func Execute() error {
	defer teardown()
	return rootCmd.Execute()
}

// wireAccount builds the account context and the services behind the
// package-level vars. Runs once; tests pre-populate the vars instead.
func wireAccount() error {
	if wired {
		return nil
	}

	level := logger.InfoLevel
	if verbose {
		level = logger.DebugLevel
	}
	log := logger.Get(level)

	settingsStore, err := file.NewSettingsStore(configDir)
	if err != nil {
		return fmt.Errorf("open settings: %w", err)
	}
	settings, err := settingsStore.Load()
	if err != nil {
		return err
	}
	baseDir := filepath.Dir(settingsStore.Path())

	dataDir := settings.Storage.DataDir
	if dataDir == "" {
		dataDir = filepath.Join(baseDir, "data")
	}
	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	authenticator, err := auth.NewAuthenticator(settings, log)
	if err != nil {
		closeErr := store.Close()
		if closeErr != nil {
			log.Warnf("Failed to close database: %v", closeErr)
		}
		return err
	}
	tokens := auth.NewManager(authenticator, store.TokenStore(), log)
	gateway := beekeeper.NewClient(settings.Vendor, log)

	profilesPath := settings.Storage.ProfilesFile
	if profilesPath == "" {
		profilesPath = filepath.Join(baseDir, "profiles.yaml")
	}
	profileStore := profiles.NewFileStore(profilesPath, log)

	account = &accountContext{
		settings:     settings,
		log:          log,
		store:        store,
		profileStore: profileStore,
		tokens:       tokens,
	}

	scheduleService = services.NewScheduleService(tokens, gateway, profileStore, store.HistoryStore(), log)
	authService = services.NewAuthService(authenticator, tokens, log)
	profileCatalog = services.NewProfileService(profileStore)
	historyService = services.NewHistoryService(store.HistoryStore())
	wired = true
	return nil
}

func teardown() {
	if account == nil {
		return
	}
	if err := account.Close(); err != nil {
		account.log.Warnf("Failed to close database: %v", err)
	}
	account = nil
}
