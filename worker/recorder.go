package worker

import (
	"context"

	"github.com/battlesnakeio/arena/rules"
	"github.com/battlesnakeio/arena/store"
	log "github.com/sirupsen/logrus"
)

// recorder writes frames to a store. A failed write is logged and turns
// recording off for the rest of the game; play never stops because of it.
type recorder struct {
	store store.Store
	id    string
}

func newRecorder(ctx context.Context, s store.Store, g *rules.Game, first *rules.Frame) *recorder {
	r := &recorder{store: s, id: g.ID}
	if s == nil {
		return r
	}

	g.Status = rules.GameStatusRunning
	if err := s.CreateGame(ctx, g, []*rules.Frame{first}); err != nil {
		r.fail(err, "unable to record game")
	}
	return r
}

func (r *recorder) push(ctx context.Context, f *rules.Frame) {
	if r.store == nil {
		return
	}
	if err := r.store.PushGameFrame(ctx, r.id, f); err != nil {
		r.fail(err, "unable to record frame")
	}
}

func (r *recorder) finish(status rules.GameStatus) {
	if r.store == nil {
		return
	}
	// The run context may already be cancelled here.
	if err := r.store.SetGameStatus(context.Background(), r.id, status); err != nil {
		r.fail(err, "unable to set game status")
	}
}

func (r *recorder) fail(err error, msg string) {
	log.WithError(err).WithField("GameID", r.id).Warn(msg + ", recording disabled")
	r.store = nil
}
