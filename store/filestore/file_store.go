// Package filestore keeps one append-only JSON lines archive per game: the
// game header first, then one line per frame.
package filestore

import (
	"context"
	"os/user"
	"path/filepath"
	"sync"

	"github.com/battlesnakeio/arena/rules"
	"github.com/battlesnakeio/arena/store"
	log "github.com/sirupsen/logrus"
)

// Extension of archive files.
const Extension = ".arena"

func defaultDir() string {
	return filepath.Join(homeDir(), ".arena", "games")
}

func homeDir() string {
	usr, err := user.Current()
	if err != nil {
		return "."
	}
	return usr.HomeDir
}

// NewFileStore returns a file based store implementation (1 file per game).
func NewFileStore(directory string) store.Store {
	if directory == "" {
		directory = defaultDir()
	}

	return &fileStore{
		games:     map[string]*rules.Game{},
		frames:    map[string][]*rules.Frame{},
		writers:   map[string]writer{},
		directory: directory,
	}
}

type fileStore struct {
	games     map[string]*rules.Game
	frames    map[string][]*rules.Frame
	writers   map[string]writer
	lock      sync.Mutex
	directory string
}

// closeGame removes the game from in-memory cache and closes the handle to its
// file. Should be called when game is complete.
func (fs *fileStore) closeGame(id string) {
	if w, ok := fs.writers[id]; ok {
		err := w.Close()
		if err != nil {
			log.WithError(err).WithField("GameID", id).Error("error while closing file writer")
		}
	}
	delete(fs.games, id)
	delete(fs.frames, id)
	delete(fs.writers, id)
}

// Close flushes and closes every open archive.
func (fs *fileStore) Close() error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	for id := range fs.writers {
		fs.closeGame(id)
	}
	return nil
}

func (fs *fileStore) CreateGame(ctx context.Context, g *rules.Game, frames []*rules.Frame) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	fs.games[g.ID] = g.Clone()
	if len(frames) == 0 {
		fs.frames[g.ID] = []*rules.Frame{}
		return nil
	}
	return fs.appendFrames(g.ID, frames)
}

func (fs *fileStore) SetGameStatus(ctx context.Context, id string, status rules.GameStatus) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	game, err := fs.requireGame(id)
	if err != nil {
		return err
	}

	game.Status = status
	if status != rules.GameStatusRunning {
		fs.closeGame(id)
	}
	return nil
}

func (fs *fileStore) PushGameFrame(ctx context.Context, id string, f *rules.Frame) error {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	return fs.appendFrame(id, f)
}

func (fs *fileStore) ListGameFrames(ctx context.Context, id string, limit, offset int) ([]*rules.Frame, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	if _, err := fs.requireGame(id); err != nil {
		return nil, err
	}
	frames, err := fs.requireFrames(id)
	if err != nil {
		return nil, err
	}

	page := store.Page(frames, limit, offset)
	out := make([]*rules.Frame, 0, len(page))
	for _, f := range page {
		out = append(out, f.Clone())
	}
	return out, nil
}

func (fs *fileStore) GetGame(ctx context.Context, id string) (*rules.Game, error) {
	fs.lock.Lock()
	defer fs.lock.Unlock()

	g, err := fs.requireGame(id)
	if err != nil {
		return nil, err
	}

	// Clone the game, since this could be modified after this is returned
	// and upset internal state inside the store.
	return g.Clone(), nil
}

func (fs *fileStore) requireHandle(id string, mustBeNew bool) (writer, error) {
	if w, ok := fs.writers[id]; ok {
		return w, nil
	}

	handle, err := openFileWriter(fs.directory, id, mustBeNew)
	if err != nil {
		return nil, err
	}

	fs.writers[id] = handle
	return handle, nil
}

func (fs *fileStore) requireGame(id string) (*rules.Game, error) {
	// Do nothing if game already loaded.
	if g, ok := fs.games[id]; ok {
		return g, nil
	}

	archive, err := readArchive(fs.directory, id)
	if err != nil {
		return nil, err
	}

	fs.games[id] = archive.game
	fs.frames[id] = archive.frames
	return archive.game, nil
}

func (fs *fileStore) requireFrames(id string) ([]*rules.Frame, error) {
	// Do nothing if frames already loaded.
	if frames, ok := fs.frames[id]; ok {
		return frames, nil
	}

	archive, err := readArchive(fs.directory, id)
	if err != nil {
		return nil, err
	}

	fs.frames[id] = archive.frames
	return archive.frames, nil
}

func (fs *fileStore) appendFrame(id string, f *rules.Frame) error {
	game, err := fs.requireGame(id)
	if err != nil {
		return err
	}

	alreadyHasFrames := fs.hasAnyFrames(id)

	handle, err := fs.requireHandle(id, !alreadyHasFrames)
	if err != nil {
		return err
	}

	// If this is the first frame, then first write the game info header.
	if !alreadyHasFrames {
		err := writeGameInfo(handle, game)
		if err != nil {
			return err
		}
	}

	// Add frame to in-memory cache
	fs.frames[id] = append(fs.frames[id], f.Clone())

	// Add frame to archive file
	return writeFrame(handle, f)
}

func (fs *fileStore) appendFrames(gameID string, frames []*rules.Frame) error {
	for _, f := range frames {
		if err := fs.appendFrame(gameID, f); err != nil {
			return err
		}
	}
	return nil
}

func (fs *fileStore) hasAnyFrames(gameID string) bool {
	frames, ok := fs.frames[gameID]
	return ok && len(frames) > 0
}

type gameArchive struct {
	game   *rules.Game
	frames []*rules.Frame
}

func getFilePath(directory string, id string) string {
	return filepath.Join(directory, id) + Extension
}
