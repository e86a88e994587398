package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent schedule submissions",
	Long: `Lists the most recent schedule push attempts, newest first,
including the ones the vendor rejected.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of records")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output records as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	records, err := historyService.Recent(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	if historyJSON {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal history: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		cmd.Println("No submissions recorded.")
		return nil
	}
	for i := range records {
		printSubmission(cmd, &records[i])
	}
	return nil
}

func printSubmission(cmd *cobra.Command, rec *domain.SubmissionRecord) {
	outcome := "ok    "
	if !rec.Success {
		outcome = "failed"
	}
	cmd.Printf("%s  %s  %-9s  %s (%s)\n",
		rec.CreatedAt.Local().Format("2006-01-02 15:04"),
		outcome, rec.Day, rec.NodeID, rec.Source)
	cmd.Printf("    %s\n", rec.Entries.Readable())
	if rec.Error != "" {
		cmd.Printf("    error: %s\n", rec.Error)
	}
}
