// Package worker drives an arena at a fixed rate. Each tick it drains the
// pending input, advances the simulation, records the frame and hands it to
// the renderer, until every snake is dead or the context is cancelled.
package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/arena/rules"
	"github.com/battlesnakeio/arena/store"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

var tickDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
	Namespace: "arena",
	Subsystem: "worker",
	Name:      "tick_duration_seconds",
	Help:      "Time spent on one tick, from draining input to rendering.",
	Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
})

func init() {
	prometheus.MustRegister(tickDuration)
}

// Input supplies the direction changes collected since the previous tick.
type Input interface {
	Drain() map[int]rules.Direction
}

// Renderer presents a frame.
type Renderer interface {
	Render(f *rules.Frame) error
}

// Worker runs one arena to completion. Input, Renderer and Store are
// optional.
type Worker struct {
	Arena    *rules.Arena
	Input    Input
	Renderer Renderer
	Store    store.Store
	// TickRate is ticks per second.
	TickRate float64
}

// Run plays the game and returns the last frame. When ctx is cancelled the
// current tick finishes and Run returns its frame along with ctx.Err().
func (w *Worker) Run(ctx context.Context) (*rules.Frame, error) {
	if w.TickRate <= 0 {
		return nil, &rules.ConfigurationError{Field: "tick rate", Reason: "must be positive"}
	}

	logger := log.WithField("GameID", w.Arena.ID())
	limiter := rate.NewLimiter(rate.Limit(w.TickRate), 1)

	frame := w.Arena.Snapshot()
	rec := newRecorder(ctx, w.Store, w.Arena.Game(), frame)
	if err := w.render(frame); err != nil {
		rec.finish(rules.GameStatusError)
		return frame, err
	}
	// The first tick waits a full period after the opening frame.
	limiter.Allow()

	logger.WithField("TickRate", w.TickRate).Info("game started")
	for !frame.GameOver {
		if err := limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				err = ctx.Err()
			}
			logger.WithField("Turn", frame.Turn).Info("game stopped")
			rec.finish(rules.GameStatusStopped)
			return frame, err
		}

		start := time.Now()
		var moves map[int]rules.Direction
		if w.Input != nil {
			moves = w.Input.Drain()
		}
		frame = w.Arena.Tick(moves)
		rec.push(ctx, frame)

		if err := w.render(frame); err != nil {
			logger.WithError(err).WithField("Turn", frame.Turn).Error("unable to render frame")
			rec.finish(rules.GameStatusError)
			return frame, err
		}
		tickDuration.Observe(time.Since(start).Seconds())
	}

	logger.WithFields(log.Fields{
		"Turn":    frame.Turn,
		"Results": frame.Scoreboard().String(),
	}).Info("game complete")
	rec.finish(rules.GameStatusComplete)
	return frame, nil
}

func (w *Worker) render(f *rules.Frame) error {
	if w.Renderer == nil {
		return nil
	}
	return w.Renderer.Render(f)
}
