package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List the available schedule profiles",
	Long: `Lists the named profiles that set-day can push. Profiles live in an
editable YAML file; edits are picked up on the next push without a
restart. When the file is missing it is created with a documented
default set.`,
	RunE: runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	if profileCatalog == nil {
		return errors.New("profile catalog not configured")
	}

	profiles, err := profileCatalog.List(context.Background())
	if err != nil {
		return err
	}

	cmd.Printf("Profiles from %s:\n\n", profileCatalog.Path())
	if len(profiles) == 0 {
		cmd.Println("No profiles defined.")
		return nil
	}
	for _, name := range profiles.Names() {
		cmd.Printf("%s:\n", name)
		cmd.Printf("  %s\n", profiles[name].Readable())
	}
	return nil
}
