package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/disaster-sim/internal/engine/timeline"
	"github.com/KirkDiggler/disaster-sim/internal/recording"
)

var replayCmd = &cobra.Command{
	Use:   "replay [file]",
	Short: "Summarize a frame recording",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := recording.Open(args[0])
		if err != nil {
			return err
		}
		defer func() { _ = r.Close() }()

		sum, err := recording.Summarize(r)
		if err != nil {
			return err
		}

		kinds := make([]string, len(sum.Kinds))
		for i, k := range sum.Kinds {
			kinds[i] = k.String()
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Session:   %s\n", sum.SessionID)
		fmt.Fprintf(out, "Frames:    %d (ticks %d-%d)\n", sum.Frames, sum.FirstTick, sum.LastTick)
		fmt.Fprintf(out, "Time:      %s\n", timeline.FormatTime(sum.Duration))
		fmt.Fprintf(out, "Phase:     %s\n", sum.FinalPhase)
		fmt.Fprintf(out, "Disasters: %s\n", strings.Join(kinds, ", "))
		fmt.Fprintf(out, "Max offset %.3f, max tilt %.4f rad\n", sum.MaxOffset, sum.MaxTilt)
		if sum.MaxWater != nil {
			fmt.Fprintf(out, "Max water  %.2f\n", *sum.MaxWater)
		}
		if sum.MaxParticles > 0 {
			fmt.Fprintf(out, "Embers     %d\n", sum.MaxParticles)
		}
		return nil
	},
}
