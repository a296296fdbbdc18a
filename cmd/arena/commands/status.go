package commands

import (
	"context"
	"fmt"

	"github.com/battlesnakeio/arena/store/filestore"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	statusCmd.Flags().StringVarP(&gameID, "game-id", "g", "", "the game id of the game to get the status of, lists recorded games when empty")
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "shows a recorded game and its final scoreboard",
	RunE: func(*cobra.Command, []string) error {
		if len(gameID) == 0 {
			return listGames()
		}
		return showStatus(gameID)
	},
}

func listGames() error {
	if backend != "file" {
		return errors.New("game id is required")
	}
	ids, err := filestore.ListGameIDs(backendArgs)
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Println(id)
	}
	return nil
}

func showStatus(id string) error {
	s, closeStore, err := openStore(backend, backendArgs)
	if err != nil {
		return err
	}
	defer closeStore()

	game, frames, err := loadGame(context.Background(), s, id)
	if err != nil {
		return err
	}

	last := frames[len(frames)-1]
	spew.Dump(game)
	fmt.Printf("Turns: %d\n", last.Turn)
	fmt.Printf("Results: %s\n", last.Scoreboard())
	for _, snake := range last.DeadSnakes() {
		fmt.Println(scoreLine(snake))
	}
	return nil
}
