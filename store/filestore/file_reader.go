package filestore

import (
	"bufio"
	"encoding/json"
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strings"

	"github.com/battlesnakeio/arena/rules"
	"github.com/battlesnakeio/arena/store"
	"github.com/pkg/errors"
)

func readLine(r *bufio.Reader, out interface{}) (bool, error) {
	bytes, err := r.ReadBytes('\n')
	eof := err == io.EOF

	if err != nil && !eof {
		return false, err
	}
	if eof && len(strings.TrimSpace(string(bytes))) == 0 {
		return false, io.EOF
	}

	if err = json.Unmarshal(bytes, out); err != nil {
		return false, err
	}

	return !eof, nil
}

func readArchive(directory, id string) (gameArchive, error) {
	f, err := os.Open(getFilePath(directory, id))
	if os.IsNotExist(err) {
		return gameArchive{}, store.ErrNotFound
	}
	if err != nil {
		return gameArchive{}, errors.Wrapf(err, "unable to open archive for %s", id)
	}
	defer f.Close()

	reader := bufio.NewReader(f)

	game := &rules.Game{}
	moreLines, err := readLine(reader, game)
	if err != nil {
		return gameArchive{}, errors.Wrapf(err, "invalid archive header for %s", id)
	}

	frames := []*rules.Frame{}
	for moreLines {
		frame := &rules.Frame{}
		more, err := readLine(reader, frame)
		if err == io.EOF {
			break
		}
		if err != nil {
			return gameArchive{}, errors.Wrapf(err, "invalid frame %d in archive for %s", len(frames), id)
		}
		moreLines = more
		frames = append(frames, frame)
	}

	game.Status = archiveStatus(frames)
	return gameArchive{game: game, frames: frames}, nil
}

// archiveStatus is complete when the archive ends on a finished frame. Any
// other archive belongs to a game that was interrupted.
func archiveStatus(frames []*rules.Frame) rules.GameStatus {
	if len(frames) > 0 && frames[len(frames)-1].GameOver {
		return rules.GameStatusComplete
	}
	return rules.GameStatusStopped
}

// ReadGame loads the game stored in the archive with the given id.
func ReadGame(directory, id string) (*rules.Game, []*rules.Frame, error) {
	if directory == "" {
		directory = defaultDir()
	}
	archive, err := readArchive(directory, id)
	if err != nil {
		return nil, nil, err
	}
	return archive.game, archive.frames, nil
}

// ListGameIDs returns the ids of every archive in the directory, sorted.
func ListGameIDs(directory string) ([]string, error) {
	if directory == "" {
		directory = defaultDir()
	}
	entries, err := ioutil.ReadDir(directory)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "unable to list archives")
	}

	ids := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), Extension) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), Extension))
	}
	sort.Strings(ids)
	return ids, nil
}
