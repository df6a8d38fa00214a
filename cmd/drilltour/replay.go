package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/drillpath/tracelog"
)

// replaySummary is what replay reports about a log.
type replaySummary struct {
	RunID        string  `json:"run_id,omitempty"`
	Iterations   int     `json:"iterations"`
	Moves        int     `json:"moves"`
	StartValue   float64 `json:"start_value"`
	Improvements int     `json:"improvements"`
	BestSeen     float64 `json:"best_seen"`
	Shakes       int     `json:"shakes"`
	Refreshes    int     `json:"refreshes"`
	FinalValue   float64 `json:"final_value"`
	FinalTour    []int   `json:"final_tour"`
	Aborted      string  `json:"aborted,omitempty"`
}

func newReplayCmd(global *GlobalFlags) *cobra.Command {
	var finalOnly bool

	cmd := &cobra.Command{
		Use:   "replay LOG",
		Short: "Summarize a search event log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			if finalOnly {
				v, err := tracelog.ReadFinalValue(f)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%g\n", v)
				return err
			}

			tr, err := tracelog.Read(f)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			sum := summarize(tr)
			global.NewLogger(cmd.ErrOrStderr()).Debug("log parsed", "path", path, "steps", len(tr.Steps))

			out := cmd.OutOrStdout()
			if global.GetOutputFormat() == FormatJSON {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(sum)
			}

			fmt.Fprintf(out, "Run: %s\n", sum.RunID)
			fmt.Fprintf(out, "Iterations: %d (%d moves)\n", sum.Iterations, sum.Moves)
			fmt.Fprintf(out, "Start value: %g\n", sum.StartValue)
			fmt.Fprintf(out, "Improvements: %d (best seen %g)\n", sum.Improvements, sum.BestSeen)
			fmt.Fprintf(out, "Shakes: %d\n", sum.Shakes)
			fmt.Fprintf(out, "Frequency refreshes: %d\n", sum.Refreshes)
			if sum.Aborted != "" {
				fmt.Fprintf(out, "Aborted: %s\n", sum.Aborted)
			}
			fmt.Fprintf(out, "Final tour: %s\n", joinInts(sum.FinalTour))
			_, err = fmt.Fprintf(out, "FINAL_VALUE: %g\n", sum.FinalValue)
			return err
		},
	}

	cmd.Flags().BoolVar(&finalOnly, "final-value", false, "Print only the FINAL_VALUE of the log")

	return cmd
}

func summarize(tr *tracelog.Trace) replaySummary {
	sum := replaySummary{
		RunID:        tr.RunID,
		Iterations:   len(tr.Steps),
		StartValue:   tr.StartValue,
		Improvements: len(tr.Improvements),
		BestSeen:     tr.StartValue,
		Shakes:       tr.Shakes,
		Refreshes:    tr.Refreshes,
		FinalValue:   tr.FinalValue,
		FinalTour:    tr.FinalTour,
		Aborted:      tr.Aborted,
	}
	for _, s := range tr.Steps {
		if s.Moved {
			sum.Moves++
		}
	}
	for _, v := range tr.Improvements {
		if v < sum.BestSeen {
			sum.BestSeen = v
		}
	}

	return sum
}
