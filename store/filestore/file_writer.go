package filestore

import (
	"encoding/json"
	"os"

	"github.com/battlesnakeio/arena/rules"
	"github.com/pkg/errors"
)

var openFileWriter = appendOnlyFileWriter

type writer interface {
	WriteString(s string) (int, error)
	Close() error
}

func requireSaveDir(directory string) error {
	return errors.Wrap(os.MkdirAll(directory, 0775), "unable to create archive directory")
}

func writeLine(w writer, data interface{}) error {
	j, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = w.WriteString(string(j) + "\n")
	return err
}

func writeFrame(w writer, f *rules.Frame) error {
	return writeLine(w, f)
}

// writeGameInfo writes the header line. The status on disk is always
// running; readers work the final status out from the last frame.
func writeGameInfo(w writer, game *rules.Game) error {
	info := game.Clone()
	info.Status = rules.GameStatusRunning
	return writeLine(w, info)
}

func appendOnlyFileWriter(directory, id string, mustCreate bool) (writer, error) {
	if err := requireSaveDir(directory); err != nil {
		return nil, err
	}

	path := getFilePath(directory, id)
	flags := os.O_APPEND | os.O_WRONLY | os.O_CREATE
	if mustCreate {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open archive %s", path)
	}
	return f, nil
}
