package rules

type deathUpdate struct {
	Snake *Snake
	Death *Death
}

// checkForDeath looks through the snakes with the updated coords and checks to
// see if any have died. Every check reads the same post-movement state; the
// caller applies the updates afterwards.
//
// A head that lands anywhere on another snake's body kills both snakes. Only
// direct overlaps count, a death never propagates further down a chain.
func checkForDeath(width, height, block, turn int, snakes []*Snake) []deathUpdate {
	occupancy := make([]map[Point]int, len(snakes))
	for i, s := range snakes {
		occupancy[i] = s.occupancy()
	}

	updates := []deathUpdate{}
	for i, s := range snakes {
		head := s.Head()

		for j, other := range snakes {
			if i == j {
				continue
			}
			if deathBySnakeCollision(head, occupancy[j]) {
				updates = append(updates,
					deathUpdate{Snake: s, Death: &Death{Turn: turn, Cause: DeathCauseSnakeCollision}},
					deathUpdate{Snake: other, Death: &Death{Turn: turn, Cause: DeathCauseSnakeCollision}},
				)
			}
		}

		if deathByOutOfBounds(head, width, height, block) {
			updates = append(updates, deathUpdate{
				Snake: s,
				Death: &Death{Turn: turn, Cause: DeathCauseWallCollision},
			})
		}

		if deathBySelfCollision(head, occupancy[i]) {
			updates = append(updates, deathUpdate{
				Snake: s,
				Death: &Death{Turn: turn, Cause: DeathCauseSnakeSelfCollision},
			})
		}
	}
	return updates
}

func deathBySnakeCollision(head Point, other map[Point]int) bool {
	return other[head] > 0
}

func deathByOutOfBounds(head Point, width, height, block int) bool {
	return head.X < 0 || head.X > width-block || head.Y < 0 || head.Y > height-block
}

// The head itself is always one entry in the snake's own occupancy, so a
// second one means the head sits on body index 1 or later.
func deathBySelfCollision(head Point, own map[Point]int) bool {
	return own[head] > 1
}
