package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/battlesnakeio/arena/config"
	"github.com/battlesnakeio/arena/input"
	"github.com/battlesnakeio/arena/rules"
	"github.com/battlesnakeio/arena/worker"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var playConfig = config.Default()

func init() {
	playCmd.Flags().IntVar(&playConfig.Width, "width", playConfig.Width, "arena width in block units")
	playCmd.Flags().IntVar(&playConfig.Height, "height", playConfig.Height, "arena height in block units")
	playCmd.Flags().IntVar(&playConfig.BlockSize, "block", playConfig.BlockSize, "size of one block")
	playCmd.Flags().IntVarP(&playConfig.Snakes, "snakes", "n", playConfig.Snakes, "number of snakes")
	playCmd.Flags().Float64VarP(&playConfig.TickRate, "tick-rate", "r", playConfig.TickRate, "ticks per second")
	playCmd.Flags().IntVar(&playConfig.FoodAttempts, "food-attempts", playConfig.FoodAttempts, "attempts at placing food before giving up for a tick")
	playCmd.Flags().Uint64Var(&playConfig.Seed, "seed", playConfig.Seed, "food placement seed, 0 picks one")
	playCmd.Flags().BoolVar(&playConfig.ForbidReversal, "forbid-reversal", playConfig.ForbidReversal, "ignore turns straight back into a snake's own neck")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays a game in the terminal",
	Long: `Plays a game in the terminal. Snakes are steered with the arrow keys,
WASD, TFGH and IJKL in that order. Esc or Ctrl-C quits.`,
	RunE: func(c *cobra.Command, args []string) error {
		return play(playConfig)
	},
}

func play(cfg config.Config) error {
	arena, err := rules.CreateArena(cfg)
	if err != nil {
		return err
	}

	s, closeStore, err := openStore(backend, backendArgs)
	if err != nil {
		return err
	}
	defer closeStore()

	controls, bound := input.NewControls(cfg.Snakes)
	if bound < cfg.Snakes {
		log.WithFields(log.Fields{
			"Snakes": cfg.Snakes,
			"Bound":  bound,
		}).Warn("more snakes than control schemes, extra snakes cannot be steered")
	}

	if err := termbox.Init(); err != nil {
		return err
	}
	termbox.SetInputMode(termbox.InputEsc)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	buf := input.NewBuffer()
	keys := make(chan struct{}, 1)
	polled := make(chan struct{})
	go func() {
		defer close(polled)
		pollKeys(cancel, controls, buf, keys)
	}()

	w := &worker.Worker{
		Arena:    arena,
		Input:    buf,
		Renderer: &terminalRenderer{footer: "Esc to quit"},
		Store:    s,
		TickRate: cfg.TickRate,
	}
	last, err := w.Run(ctx)
	if err == nil && last.GameOver {
		waitForKey(ctx, keys, last)
	}

	termbox.Interrupt()
	<-polled
	termbox.Close()

	if err != nil && err != context.Canceled {
		return err
	}
	fmt.Printf("Game %s\n", arena.ID())
	fmt.Printf("Results: %s\n", last.Scoreboard())
	return nil
}

// pollKeys feeds key presses into the buffer until termbox is interrupted.
// Every key press is also signalled on keys without blocking.
func pollKeys(cancel context.CancelFunc, controls *input.Controls, buf *input.Buffer, keys chan<- struct{}) {
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt:
			return
		case termbox.EventError:
			log.WithError(ev.Err).Error("terminal input failed")
			cancel()
			return
		case termbox.EventKey:
			if isQuit(ev) {
				cancel()
			} else {
				buf.PushAll(controls.Resolve(signalForEvent(ev)))
			}
			select {
			case keys <- struct{}{}:
			default:
			}
		}
	}
}

func waitForKey(ctx context.Context, keys <-chan struct{}, last *rules.Frame) {
	select {
	case <-keys:
	default:
	}
	r := &terminalRenderer{footer: "Press any key to exit..."}
	if err := r.Render(last); err != nil {
		return
	}
	select {
	case <-keys:
	case <-ctx.Done():
	}
}
