package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/disaster-sim/internal/config"
	"github.com/KirkDiggler/disaster-sim/internal/engine/timeline"
	"github.com/KirkDiggler/disaster-sim/internal/entities/building"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
	"github.com/KirkDiggler/disaster-sim/internal/orchestrators/simulation"
	"github.com/KirkDiggler/disaster-sim/internal/pkg/clock"
	"github.com/KirkDiggler/disaster-sim/internal/pkg/idgen"
	"github.com/KirkDiggler/disaster-sim/internal/recording"
	"github.com/KirkDiggler/disaster-sim/internal/redis"
	"github.com/KirkDiggler/disaster-sim/internal/render"
	"github.com/KirkDiggler/disaster-sim/internal/render/terminal"
	"github.com/KirkDiggler/disaster-sim/internal/repositories/session"
)

var (
	simConfigPath string
	simDisaster   string
	simIntensity  int
	simSpeed      float64
	simFPS        int
	simRecord     string
	simRedis      string
	simBuilding   string
	simTUI        bool
	simEvery      int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a disaster scenario",
	Long: `Run a scenario from start to finish. Frames are summarized to stdout, or
drawn in the terminal with --tui (space play/pause, r reset, 1-4 speed, q quit).`,
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.StringVar(&simConfigPath, "config", "", "scenario YAML file")
	f.StringVar(&simDisaster, "disaster", "", "earthquake, flood, fire or hurricane")
	f.IntVar(&simIntensity, "intensity", 0, "intensity 1-10")
	f.Float64Var(&simSpeed, "speed", 0, "playback speed: 0.5, 1, 2 or 4")
	f.IntVar(&simFPS, "fps", 0, "frames per second")
	f.StringVar(&simRecord, "record", "", "write frames to a "+recording.Extension+" file")
	f.StringVar(&simRedis, "redis", "", "redis address for session snapshots")
	f.StringVar(&simBuilding, "building", "", "generate a random building of this type")
	f.BoolVar(&simTUI, "tui", false, "draw frames in the terminal")
	f.IntVar(&simEvery, "every", 10, "print every Nth frame in headless mode")
}

func loadScenario(cmd *cobra.Command) (config.Scenario, error) {
	sc := config.Default()
	if simConfigPath != "" {
		loaded, err := config.Load(simConfigPath)
		if err != nil {
			return sc, err
		}
		sc = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("disaster") {
		sc.Disaster = simDisaster
	}
	if flags.Changed("intensity") {
		sc.Intensity = simIntensity
	}
	if flags.Changed("speed") {
		sc.Speed = simSpeed
	}
	if flags.Changed("fps") {
		sc.FPS = simFPS
	}
	if flags.Changed("redis") {
		sc.Redis.Addr = simRedis
	}
	if flags.Changed("building") {
		sc.Building = config.Building{Generate: building.Type(simBuilding)}
	}

	if err := sc.Validate(); err != nil {
		return sc, errors.Wrap(err, "invalid scenario")
	}
	return sc, nil
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sc, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	bus := events.NewBus()
	logEvents(bus)

	adapter, err := newAdapter(bus)
	if err != nil {
		return err
	}
	buildings, err := newBuildingService()
	if err != nil {
		return err
	}
	spec, err := resolveBuilding(ctx, buildings, sc.Building)
	if err != nil {
		return err
	}

	clk := clock.New()
	cfg := &simulation.Config{
		Engine:      adapter,
		IDGenerator: idgen.NewUUID("sim"),
		EventBus:    bus,
		Clock:       clk,
		Duration:    sc.DurationSeconds,
		SnapshotTTL: sc.Redis.SnapshotTTL,
	}
	if sc.Redis.Enabled() {
		repo, closeRepo, err := newSessionRepository(sc.Redis, clk)
		if err != nil {
			return err
		}
		defer closeRepo()
		cfg.SessionRepo = repo
	}

	svc, err := simulation.NewOrchestrator(cfg)
	if err != nil {
		return err
	}

	created, err := svc.CreateSession(ctx, &simulation.CreateSessionInput{
		Kind:      sc.Disaster,
		Intensity: sc.Intensity,
		Building:  spec,
		Speed:     sc.Speed,
	})
	if err != nil {
		return err
	}
	sess := created.Session
	slog.Info("Simulation starting",
		"session_id", sess.ID,
		"kind", sess.Kind,
		"intensity", sess.Intensity,
		"building_type", sess.Building.Type,
		"speed", sess.Clock.Speed,
		"fps", sc.FPS)

	renderers := render.Multi{}
	if simRecord != "" {
		rec, err := recording.Create(simRecord)
		if err != nil {
			return err
		}
		defer func() {
			if err := rec.Close(); err != nil {
				slog.Error("Failed to close recording", "path", simRecord, "error", err)
				return
			}
			slog.Info("Recording written", "path", simRecord, "frames", rec.Frames())
		}()
		renderers = append(renderers, rec)
	}

	if simTUI {
		return runTUI(ctx, svc, sess, clk, sc, renderers)
	}

	renderers = append(renderers, render.NewText(cmd.OutOrStdout(), simEvery))
	if _, err := svc.Play(ctx, &simulation.ControlInput{SessionID: sess.ID}); err != nil {
		return err
	}
	return runFrames(ctx, svc, sess.ID, clk, sc, renderers, true)
}

func runTUI(
	ctx context.Context, svc simulation.Service, sess *simulation.Session,
	clk clock.Clock, sc config.Scenario, renderers render.Multi,
) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to open terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "failed to init terminal")
	}
	defer screen.Fini()

	view, err := terminal.NewView(screen, &sess.Building)
	if err != nil {
		return err
	}
	renderers = append(renderers, view)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- runFrames(ctx, svc, sess.ID, clk, sc, renderers, false)
	}()

	if err := terminal.Listen(ctx, screen, &sessionControls{svc: svc, sessionID: sess.ID}); err != nil {
		return err
	}
	cancel()
	return <-done
}

func runFrames(
	ctx context.Context, svc simulation.Service, sessionID string,
	clk clock.Clock, sc config.Scenario, renderers render.Renderer, stopOnFinish bool,
) error {
	target, err := simulation.NewRunnerTarget(svc, sessionID, renderers.Render)
	if err != nil {
		return err
	}

	runner, err := timeline.NewRunner(&timeline.RunnerConfig{
		Clock:        clk,
		Interval:     sc.FrameInterval(),
		Target:       target,
		StopOnFinish: stopOnFinish,
	})
	if err != nil {
		return err
	}
	return runner.Run(ctx)
}

func newSessionRepository(cfg config.Redis, clk clock.Clock) (session.Repository, func(), error) {
	client, err := redis.NewClient(cfg.Addr, &redis.Options{
		DB:       cfg.DB,
		Password: cfg.Password,
	})
	if err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis config")
	}

	repo, err := session.NewRedisRepository(&session.Config{Client: client, Clock: clk})
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			slog.Warn("Failed to close redis client", "error", err)
		}
	}
	return repo, closeFn, nil
}
