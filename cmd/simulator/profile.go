package main

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/disaster-sim/internal/engine"
	"github.com/KirkDiggler/disaster-sim/internal/entities/disaster"
)

var (
	profileDisaster  string
	profileIntensity int
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Print the derived profile for a disaster",
	RunE: func(cmd *cobra.Command, _ []string) error {
		adapter, err := newAdapter(events.NewBus())
		if err != nil {
			return err
		}

		out, err := adapter.DeriveProfile(cmd.Context(), &engine.DeriveProfileInput{
			Kind:      disaster.ParseKind(profileDisaster),
			Intensity: disaster.ClampIntensity(profileIntensity),
		})
		if err != nil {
			return err
		}

		info := disaster.Lookup(out.Profile.Kind)
		data, err := json.MarshalIndent(out.Profile, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s: %s\n%s\n", info.Name, info.Description, data)
		return nil
	},
}

func init() {
	profileCmd.Flags().StringVar(&profileDisaster, "disaster", "earthquake", "earthquake, flood, fire or hurricane")
	profileCmd.Flags().IntVar(&profileIntensity, "intensity", int(disaster.DefaultIntensity), "intensity 1-10")
}
