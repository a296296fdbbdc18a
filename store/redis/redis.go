// Package redis records games into redis: the game as a JSON string and its
// frames as a JSON list.
package redis

import (
	"context"
	"encoding/json"

	"github.com/battlesnakeio/arena/rules"
	"github.com/battlesnakeio/arena/store"
	"github.com/go-redis/redis"
	"github.com/pkg/errors"
)

// Store is a redis backed store.Store.
type Store struct {
	client *redis.Client
}

// NewStore will create a new instance of an underlying redis client, so it should not be re-created across "threads"
// - connectURL see: github.com/go-redis/redis/options.go for URL specifics
// The underlying redis client will be immediately tested for connectivity, so don't call this until you know redis can connect.
// Returns a new instance OR an error if unable (meaning an issue connecting to your redis URL)
func NewStore(connectURL string) (*Store, error) {
	o, err := redis.ParseURL(connectURL)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse redis URL")
	}

	client := redis.NewClient(o)

	// Validate it's connected
	err = client.Ping().Err()
	if err != nil {
		return nil, errors.Wrap(err, "unable to connect")
	}

	return &Store{client: client}, nil
}

func gameKey(id string) string   { return "arena:game:" + id }
func framesKey(id string) string { return "arena:frames:" + id }

// CreateGame will insert a game with its initial frames.
func (rs *Store) CreateGame(ctx context.Context, g *rules.Game, frames []*rules.Frame) error {
	data, err := json.Marshal(g)
	if err != nil {
		return errors.Wrap(err, "unable to encode game")
	}
	values, err := encodeFrames(frames)
	if err != nil {
		return err
	}

	c := rs.client.WithContext(ctx)
	_, err = c.TxPipelined(func(pipe redis.Pipeliner) error {
		pipe.Set(gameKey(g.ID), data, 0)
		pipe.Del(framesKey(g.ID))
		if len(values) > 0 {
			pipe.RPush(framesKey(g.ID), values...)
		}
		return nil
	})
	return errors.Wrap(err, "unable to create game")
}

// PushGameFrame will push a game frame onto the list of frames.
func (rs *Store) PushGameFrame(ctx context.Context, id string, f *rules.Frame) error {
	c := rs.client.WithContext(ctx)
	if err := rs.requireGame(c, id); err != nil {
		return err
	}

	values, err := encodeFrames([]*rules.Frame{f})
	if err != nil {
		return err
	}
	return errors.Wrap(c.RPush(framesKey(id), values...).Err(), "unable to push frame")
}

// ListGameFrames will list frames by an offset and limit, it supports
// negative offset.
func (rs *Store) ListGameFrames(ctx context.Context, id string, limit, offset int) ([]*rules.Frame, error) {
	c := rs.client.WithContext(ctx)
	if err := rs.requireGame(c, id); err != nil {
		return nil, err
	}

	n, err := c.LLen(framesKey(id)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "unable to count frames")
	}
	start, end := store.Bounds(int(n), limit, offset)
	if start == end {
		return []*rules.Frame{}, nil
	}

	// LRANGE bounds are inclusive.
	raw, err := c.LRange(framesKey(id), int64(start), int64(end-1)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "unable to read frames")
	}

	frames := make([]*rules.Frame, 0, len(raw))
	for _, r := range raw {
		f := &rules.Frame{}
		if err := json.Unmarshal([]byte(r), f); err != nil {
			return nil, errors.Wrap(err, "unable to decode frame")
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// GetGame will fetch the game.
func (rs *Store) GetGame(ctx context.Context, id string) (*rules.Game, error) {
	return getGame(rs.client.WithContext(ctx), id)
}

// SetGameStatus is used to set a specific game status. This operation
// is atomic.
func (rs *Store) SetGameStatus(ctx context.Context, id string, status rules.GameStatus) error {
	c := rs.client.WithContext(ctx)
	key := gameKey(id)

	err := c.Watch(func(tx *redis.Tx) error {
		g, err := getGame(tx, id)
		if err != nil {
			return err
		}
		g.Status = status
		data, err := json.Marshal(g)
		if err != nil {
			return errors.Wrap(err, "unable to encode game")
		}

		_, err = tx.TxPipelined(func(pipe redis.Pipeliner) error {
			pipe.Set(key, data, 0)
			return nil
		})
		return err
	}, key)
	if err == store.ErrNotFound {
		return err
	}
	return errors.Wrap(err, "unable to set game status")
}

// Close closes the underlying client.
func (rs *Store) Close() error {
	return rs.client.Close()
}

func (rs *Store) requireGame(c *redis.Client, id string) error {
	n, err := c.Exists(gameKey(id)).Result()
	if err != nil {
		return errors.Wrap(err, "unable to look up game")
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// getter is satisfied by both the client and a watched transaction.
type getter interface {
	Get(key string) *redis.StringCmd
}

func getGame(c getter, id string) (*rules.Game, error) {
	data, err := c.Get(gameKey(id)).Bytes()
	if err == redis.Nil {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to read game")
	}

	g := &rules.Game{}
	if err := json.Unmarshal(data, g); err != nil {
		return nil, errors.Wrap(err, "unable to decode game")
	}
	return g, nil
}

func encodeFrames(frames []*rules.Frame) ([]interface{}, error) {
	values := make([]interface{}, 0, len(frames))
	for _, f := range frames {
		data, err := json.Marshal(f)
		if err != nil {
			return nil, errors.Wrap(err, "unable to encode frame")
		}
		values = append(values, data)
	}
	return values, nil
}
