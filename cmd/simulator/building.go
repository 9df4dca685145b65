package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/disaster-sim/internal/config"
	"github.com/KirkDiggler/disaster-sim/internal/entities/building"
	buildingsvc "github.com/KirkDiggler/disaster-sim/internal/services/building"
)

var (
	buildingType   string
	buildingParams buildingsvc.Params
)

var buildingCmd = &cobra.Command{
	Use:   "building",
	Short: "Generate a building spec",
	Long: `Generate a random building of --type, or assemble one from explicit
dimension and material flags when --type is omitted.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, err := newBuildingService()
		if err != nil {
			return err
		}

		sel := config.Building{Params: &buildingParams}
		if buildingType != "" {
			sel = config.Building{Generate: building.Type(buildingType)}
		}

		spec, err := resolveBuilding(cmd.Context(), svc, sel)
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(spec, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	f := buildingCmd.Flags()
	f.StringVar(&buildingType, "type", "", "random building type: residential, commercial, high-rise or warehouse")
	f.IntVar(&buildingParams.Floors, "floors", 0, "number of floors")
	f.Float64Var(&buildingParams.Width, "width", 0, "width in meters")
	f.Float64Var(&buildingParams.Height, "height", 0, "height in meters")
	f.Float64Var(&buildingParams.Depth, "depth", 0, "depth in meters")
	f.StringVar((*string)(&buildingParams.Walls), "walls", "", "wall material")
	f.StringVar((*string)(&buildingParams.Roof), "roof", "", "roof material")
	f.StringVar((*string)(&buildingParams.Windows), "windows", "", "window material")
}
