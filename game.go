// SPDX-License-Identifier: Apache-2.0
// Copyright 2020,2021 Marcus Soll
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	  http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// EndReason describes why a session ended.
type EndReason string

const (
	// ReasonNone is used while the game is running.
	ReasonNone EndReason = ""
	// ReasonWall means the snake ran into the border.
	ReasonWall EndReason = "wall"
	// ReasonSelf means the snake bit itself.
	ReasonSelf EndReason = "self"
	// ReasonQuit means the player quit.
	ReasonQuit EndReason = "quit"
	// ReasonInterrupted means the process received a signal.
	ReasonInterrupted EndReason = "interrupted"
	// ReasonGridFull means there is no free cell left for food.
	ReasonGridFull EndReason = "grid_full"
)

// Game is a single session of snake.
// It is not safe for concurrent use; Run owns it until it returns.
type Game struct {
	Width  int
	Height int

	snake  *Snake
	food   *Point
	speed  int
	score  int
	round  int
	over   bool
	reason EndReason

	cfg    Config
	rng    *rand.Rand
	logger *zap.Logger
	now    func() time.Time
}

// NewGame creates a session with a centred snake and the first food.
func NewGame(cfg Config, rng *rand.Rand, logger *zap.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	heading := Direction(cfg.Heading)
	if cfg.Heading == HeadingRandom {
		heading = Directions[rng.Intn(len(Directions))]
	}

	g := &Game{
		Width:  cfg.Width,
		Height: cfg.Height,
		snake:  NewSnake(Point{X: uint16(cfg.Width / 2), Y: uint16(cfg.Height / 2)}, cfg.InitialLength, heading),
		speed:  cfg.StartSpeed,
		cfg:    cfg,
		rng:    rng,
		logger: logger,
		now:    time.Now,
	}

	if err := g.placeFood(); err != nil {
		return nil, errors.WithMessage(err, "place first food")
	}

	g.logger.Info("game created",
		zap.Int("width", g.Width),
		zap.Int("height", g.Height),
		zap.String("heading", string(heading)),
		zap.Int("speed", g.speed),
	)
	return g, nil
}

// Over reports whether the session has ended.
func (g *Game) Over() bool {
	return g.over
}

// Score returns the number of food items eaten.
func (g *Game) Score() int {
	return g.score
}

// Speed returns the current speed level.
func (g *Game) Speed() int {
	return g.speed
}

// Interval returns the duration of one tick at the current speed.
func (g *Game) Interval() time.Duration {
	step := g.cfg.BaseInterval / time.Duration(g.cfg.MaxSpeed)
	interval := step * time.Duration(g.cfg.MaxSpeed-g.speed)
	if interval < g.cfg.MinInterval {
		return g.cfg.MinInterval
	}
	if interval > g.cfg.BaseInterval {
		return g.cfg.BaseInterval
	}
	return interval
}

// Run plays the session until it ends and returns the final snapshot.
// Each tick waits for input for the tick interval; only the last accepted turn takes effect.
func (g *Game) Run(ctx context.Context, input Input, ui UI) Snapshot {
	ui.NewFrame(g.Snapshot())

	for !g.over {
		select {
		case <-ctx.Done():
			g.end(ReasonInterrupted)
			continue
		default:
		}

		start := g.now()
		interval := g.Interval()
		heading := g.snake.Direction()

	waitTick:
		for {
			remaining := interval - g.now().Sub(start)
			if remaining <= 0 {
				break
			}
			c, ok := input.Poll(remaining)
			if !ok {
				continue
			}
			switch c.Kind {
			case CommandQuit:
				g.end(ReasonQuit)
				break waitTick
			case CommandTurn:
				if c.Direction != heading && c.Direction != heading.Opposite() {
					g.snake.SetDirection(c.Direction)
				}
			}
		}

		if g.over {
			break
		}
		g.Tick()
		ui.NewFrame(g.Snapshot())
	}

	return g.Snapshot()
}

// Tick advances the session by one step without any waiting.
func (g *Game) Tick() {
	if g.over {
		return
	}

	switch {
	case g.hitsWall():
		g.end(ReasonWall)
		return
	case g.bitesItself():
		g.end(ReasonSelf)
		return
	}

	g.snake.Slither()
	g.round++

	if g.food == nil || g.snake.Head() != *g.food {
		return
	}

	g.snake.Grow()
	g.score++
	g.logger.Debug("food eaten", zap.Stringer("food", *g.food), zap.Int("score", g.score))
	g.updateSpeed()

	err := g.placeFood()
	switch {
	case errors.Is(err, ErrGridFull):
		g.food = nil
		g.end(ReasonGridFull)
	case err != nil:
		// placeFood only fails with ErrGridFull
		panic(err)
	}
}

// hitsWall checks whether the head is at the border it is heading for.
func (g *Game) hitsWall() bool {
	head := g.snake.Head()
	switch g.snake.Direction() {
	case DirectionUp:
		return head.Y == 0
	case DirectionRight:
		return int(head.X) == g.Width-1
	case DirectionDown:
		return int(head.Y) == g.Height-1
	case DirectionLeft:
		return head.X == 0
	}
	return false
}

// bitesItself checks whether the next head position is occupied by the body.
// The head never counts. The tail only counts while digesting since it does not move away then.
// Must only be called after hitsWall returned false.
func (g *Game) bitesItself() bool {
	next := g.snake.Head().Translate(g.snake.Direction(), 1)
	body := g.snake.body
	end := len(body) - 1
	if g.snake.Digesting() {
		end = len(body)
	}
	for i := 1; i < end; i++ {
		if body[i] == next {
			return true
		}
	}
	return false
}

func (g *Game) placeFood() error {
	p, err := placeFood(g.rng, g.Width, g.Height, g.snake)
	if err != nil {
		return err
	}
	g.food = &p
	return nil
}

// updateSpeed raises the speed by one level for every Width*Height/MaxSpeed food items eaten.
func (g *Game) updateSpeed() {
	perLevel := g.Width * g.Height / g.cfg.MaxSpeed
	if perLevel < 1 {
		perLevel = 1
	}
	speed := g.cfg.StartSpeed + g.score/perLevel
	if speed > g.cfg.MaxSpeed {
		speed = g.cfg.MaxSpeed
	}
	if speed > g.speed {
		g.speed = speed
		g.logger.Info("speed up", zap.Int("speed", g.speed), zap.Duration("interval", g.Interval()))
	}
}

func (g *Game) end(reason EndReason) {
	g.over = true
	g.reason = reason
	g.logger.Info("game over",
		zap.String("reason", string(reason)),
		zap.Int("score", g.score),
		zap.Int("round", g.round),
		zap.Int("length", g.snake.Len()),
	)
}

// Snapshot returns a copy of everything needed to draw the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Width:   g.Width,
		Height:  g.Height,
		Snake:   g.snake.Body(),
		Heading: g.snake.Direction(),
		Score:   g.score,
		Speed:   g.speed,
		Round:   g.round,
		Over:    g.over,
		Reason:  g.reason,
	}
	if g.food != nil {
		f := *g.food
		s.Food = &f
	}
	return s
}
