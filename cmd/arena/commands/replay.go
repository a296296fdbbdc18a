package commands

import (
	"context"
	"time"

	"github.com/battlesnakeio/arena/rules"
	"github.com/battlesnakeio/arena/store"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const framePageSize = 500

var gameID string

func init() {
	replayCmd.Flags().StringVarP(&gameID, "game-id", "g", "", "the game id of the game to replay")
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "replays a recorded game",
	Long: `Replays a recorded game from the file or redis backend. Space pauses,
the left and right arrows step through frames, Esc quits.`,
	Args: func(c *cobra.Command, args []string) error {
		if len(gameID) == 0 {
			return errors.New("game id is required")
		}
		return nil
	},
	RunE: func(*cobra.Command, []string) error {
		return replayGame(gameID)
	},
}

// loadGame reads a game and every one of its frames.
func loadGame(ctx context.Context, s store.Store, id string) (*rules.Game, []*rules.Frame, error) {
	game, err := s.GetGame(ctx, id)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "unable to load game %s", id)
	}

	frames := []*rules.Frame{}
	for {
		page, err := s.ListGameFrames(ctx, id, framePageSize, len(frames))
		if err != nil {
			return nil, nil, errors.Wrapf(err, "unable to load frames of game %s", id)
		}
		frames = append(frames, page...)
		if len(page) < framePageSize {
			break
		}
	}
	if len(frames) == 0 {
		return nil, nil, errors.Errorf("game %s has no frames", id)
	}
	return game, frames, nil
}

func moveFrameForwards(frameIndex int, frames []*rules.Frame) (int, *rules.Frame, bool) {
	frameIndex++
	if frameIndex >= len(frames) {
		return len(frames) - 1, frames[len(frames)-1], true
	}
	return frameIndex, frames[frameIndex], false
}

func moveFrameBackwards(frameIndex int, frames []*rules.Frame) (int, *rules.Frame) {
	frameIndex--
	if frameIndex <= 0 {
		frameIndex = 0
	}
	return frameIndex, frames[frameIndex]
}

// framePeriod is the time between replayed frames.
func framePeriod(game *rules.Game) time.Duration {
	if game.TickRate <= 0 {
		return 200 * time.Millisecond
	}
	return time.Duration(float64(time.Second) / game.TickRate)
}

func replayGame(id string) error {
	s, closeStore, err := openStore(backend, backendArgs)
	if err != nil {
		return err
	}
	defer closeStore()

	game, frames, err := loadGame(context.Background(), s, id)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"GameID": id,
		"Frames": len(frames),
		"Status": game.Status,
	}).Info("replaying game")

	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc)

	var (
		events     = setupEventQueue()
		period     = framePeriod(game)
		cycle      = time.NewTicker(period)
		frameIndex = 0
		current    = frames[0]
		paused     = false
		done       = false
		r          = &terminalRenderer{footer: "Space to pause, arrows to step, Esc to quit"}
	)
	defer cycle.Stop()

	if err := r.Render(current); err != nil {
		return err
	}

	for {
		select {
		case ev := <-events:
			if ev.Type != termbox.EventKey {
				continue
			}
			switch {
			case isQuit(ev):
				return nil
			case ev.Key == termbox.KeySpace:
				paused = !paused
			case ev.Key == termbox.KeyArrowLeft:
				paused = true
				frameIndex, current = moveFrameBackwards(frameIndex, frames)
			case ev.Key == termbox.KeyArrowRight:
				paused = true
				frameIndex, current, done = moveFrameForwards(frameIndex, frames)
			default:
				if done {
					return nil
				}
				continue
			}
		case <-cycle.C:
			if paused || done {
				continue
			}
			frameIndex, current, done = moveFrameForwards(frameIndex, frames)
		}

		r.footer = "Space to pause, arrows to step, Esc to quit"
		if paused {
			r.footer = "Paused. Space to resume, arrows to step, Esc to quit"
		}
		if done {
			r.footer = "End of game, press any key to exit..."
		}
		if err := r.Render(current); err != nil {
			return err
		}
	}
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
