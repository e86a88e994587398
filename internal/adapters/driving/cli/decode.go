package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [file]",
	Short: "Decode a vendor schedule document into readable form",
	Long: `Reads a schedule document in the vendor's wire format (minutes from
midnight, nested target values) from a file or stdin and prints it as
clock times and temperatures, one line per day.

Examples:
  hive-schedule decode schedule.json
  curl -s .../nodes/... | hive-schedule decode`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDecode,
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}

func runDecode(cmd *cobra.Command, args []string) error {
	var input io.Reader = cmd.InOrStdin()
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
		defer f.Close()
		input = f
	}

	data, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var doc domain.WireSchedule
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: not a schedule document: %v", domain.ErrInvalidInput, err)
	}

	lines := doc.Readable()
	if len(lines) == 0 {
		cmd.Println("No days present.")
		return nil
	}
	for _, line := range lines {
		cmd.Println(line)
	}
	return nil
}
