package rules

import (
	"fmt"
	"testing"

	"github.com/battlesnakeio/arena/config"
	"golang.org/x/exp/rand"
)

const testBlock = 20

func testConfig(snakes int) config.Config {
	return config.Config{
		Width:        640,
		Height:       480,
		BlockSize:    testBlock,
		Snakes:       snakes,
		TickRate:     10,
		FoodAttempts: defaultFoodAttempts,
	}
}

func testSnake(index int, dir Direction, body ...Point) *Snake {
	return &Snake{
		index:     index,
		name:      fmt.Sprintf("Snake_%d", index),
		color:     colorFor(index),
		block:     testBlock,
		head:      body[0],
		body:      body,
		direction: dir,
		alive:     true,
	}
}

// testArena builds a 640x480 arena around the given snakes with the food
// parked in the bottom right corner.
func testArena(t *testing.T, snakes ...*Snake) *Arena {
	t.Helper()
	a := newArena(testConfig(len(snakes)), snakes, rand.New(rand.NewSource(1)))
	a.food = Point{X: 620, Y: 460}
	a.hasFood = true
	return a
}

func horizontal(head Point, length int) []Point {
	body := []Point{}
	for i := 0; i < length; i++ {
		body = append(body, Point{X: head.X - i*testBlock, Y: head.Y})
	}
	return body
}

func vertical(head Point, length int) []Point {
	body := []Point{}
	for i := 0; i < length; i++ {
		body = append(body, Point{X: head.X, Y: head.Y - i*testBlock})
	}
	return body
}
