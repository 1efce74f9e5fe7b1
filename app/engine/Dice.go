package engine

import (
	"math/rand"
	"time"
)

// Dice is a session's roll source. Sessions get a seeded generator so games
// replay deterministically; tests substitute scripted rolls.
type Dice interface {
	Roll() (int, int)
}

// SeededDice rolls two six-sided dice from a deterministic source and counts
// rolls so a restored session can fast-forward to the same point.
type SeededDice struct {
	seed  int64
	rolls int
	rng   *rand.Rand
}

func NewDice(seed int64) *SeededDice {
	return &SeededDice{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

func NewTimeDice() *SeededDice {
	return NewDice(time.Now().UnixNano())
}

// RestoreDice replays n rolls against a fresh generator with the same seed.
func RestoreDice(seed int64, rolls int) *SeededDice {
	d := NewDice(seed)
	for i := 0; i < rolls; i++ {
		d.Roll()
	}
	return d
}

func (d *SeededDice) Roll() (int, int) {
	d.rolls++
	return d.rng.Intn(6) + 1, d.rng.Intn(6) + 1
}

func (d *SeededDice) Seed() int64 {
	return d.seed
}

func (d *SeededDice) Rolls() int {
	return d.rolls
}
