package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rrwood/hive-schedule-mgr/internal/core/domain"
)

var (
	setDayNode    string
	setDayDay     string
	setDayProfile string
	setDayAt      []string
)

var setDayCmd = &cobra.Command{
	Use:   "set-day",
	Short: "Push a single day's heating schedule to a node",
	Long: `Pushes a heating schedule for one day of the week. Days not named
are left untouched on the thermostat.

The schedule comes from a named profile (--profile) or from explicit
set-points (--at HH:MM=TEMP, repeatable). When both are given the
explicit set-points win.

Examples:
  hive-schedule set-day --node <node-id> --day monday --profile workday
  hive-schedule set-day --node <node-id> --day saturday \
    --at 07:30=18.5 --at 09:00=18 --at 22:00=16`,
	RunE: runSetDay,
}

func init() {
	setDayCmd.Flags().StringVar(&setDayNode, "node", "", "heating node id (required)")
	setDayCmd.Flags().StringVar(&setDayDay, "day", "", "day of the week, e.g. monday (required)")
	setDayCmd.Flags().StringVar(&setDayProfile, "profile", "", "named profile to push")
	setDayCmd.Flags().StringArrayVar(&setDayAt, "at", nil, "explicit set-point as HH:MM=TEMP (repeatable, overrides --profile)")
	_ = setDayCmd.MarkFlagRequired("node")
	_ = setDayCmd.MarkFlagRequired("day")
	rootCmd.AddCommand(setDayCmd)
}

func runSetDay(cmd *cobra.Command, _ []string) error {
	if scheduleService == nil {
		return errors.New("schedule service not configured")
	}

	schedule, err := parseSetPoints(setDayAt)
	if err != nil {
		return err
	}

	ctx := context.Background()
	result, err := scheduleService.SetDaySchedule(ctx, domain.SetDayRequest{
		NodeID:   setDayNode,
		Day:      setDayDay,
		Profile:  setDayProfile,
		Schedule: schedule,
	})
	if err != nil {
		return err
	}

	if result.Warning != "" {
		cmd.Printf("Warning: %s\n", result.Warning)
	}
	cmd.Printf("Updated %s on node %s (source: %s)\n",
		strings.ToUpper(result.Day.String()), result.NodeID, result.Source)
	cmd.Printf("  %s\n", result.Entries.Readable())
	if result.Confirmed != "" {
		cmd.Printf("Vendor confirmed: %s\n", result.Confirmed)
	}
	return nil
}

// parseSetPoints converts repeated "HH:MM=TEMP" flag values into a day
// schedule. Times and temperatures are validated later with the same checks
// profile schedules go through.
func parseSetPoints(args []string) (domain.DaySchedule, error) {
	if len(args) == 0 {
		return nil, nil
	}
	schedule := make(domain.DaySchedule, 0, len(args))
	for _, arg := range args {
		timePart, tempPart, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("%w: set-point %q is not HH:MM=TEMP", domain.ErrInvalidInput, arg)
		}
		temp, err := strconv.ParseFloat(strings.TrimSpace(tempPart), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: temperature %q is not a number", domain.ErrInvalidInput, tempPart)
		}
		schedule = append(schedule, domain.ScheduleEntry{
			Time: strings.TrimSpace(timePart),
			Temp: temp,
		})
	}
	return schedule, nil
}
