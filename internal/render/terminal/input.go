package terminal

import (
	"context"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/KirkDiggler/disaster-sim/internal/engine/timeline"
	"github.com/KirkDiggler/disaster-sim/internal/errors"
)

// Command is a transport action requested from the keyboard
type Command int

// Keyboard commands
const (
	CommandNone Command = iota
	CommandToggle
	CommandReset
	CommandSpeed
	CommandQuit
)

// Action is a decoded key press. Speed is set for CommandSpeed.
type Action struct {
	Command Command
	Speed   float64
}

// Controls receives decoded actions
type Controls interface {
	TogglePlay(ctx context.Context) error
	Reset(ctx context.Context) error
	SetSpeed(ctx context.Context, speed float64) error
}

// KeyAction maps a key press to an action. Digits 1-4 select the
// supported speeds in ascending order.
func KeyAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Action{Command: CommandQuit}
	case tcell.KeyRune:
	default:
		return Action{}
	}

	switch r := ev.Rune(); r {
	case ' ':
		return Action{Command: CommandToggle}
	case 'r', 'R':
		return Action{Command: CommandReset}
	case 'q', 'Q':
		return Action{Command: CommandQuit}
	case '1', '2', '3', '4':
		speeds := timeline.SupportedSpeeds()
		return Action{Command: CommandSpeed, Speed: speeds[r-'1']}
	default:
		return Action{}
	}
}

// Listen polls screen events and forwards actions to controls until the
// user quits or ctx is done. Errors from controls are logged, not returned.
func Listen(ctx context.Context, screen tcell.Screen, controls Controls) error {
	if screen == nil || controls == nil {
		return errors.InvalidArgument("screen and controls are required")
	}

	stop := context.AfterFunc(ctx, func() {
		_ = screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		ev := screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			action := KeyAction(ev)
			if action.Command == CommandQuit {
				return nil
			}
			if err := apply(ctx, controls, action); err != nil {
				slog.Warn("keyboard command failed", "command", action.Command, "error", err)
			}
		}
	}
}

func apply(ctx context.Context, controls Controls, action Action) error {
	switch action.Command {
	case CommandToggle:
		return controls.TogglePlay(ctx)
	case CommandReset:
		return controls.Reset(ctx)
	case CommandSpeed:
		return controls.SetSpeed(ctx, action.Speed)
	default:
		return nil
	}
}
