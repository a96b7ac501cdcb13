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
	"fmt"
	"strings"
	"time"
)

var colours = []string{"\033[39m", "\033[31m", "\033[32m", "\033[33m", "\033[34m", "\033[35m", "\033[36m", "\033[90m"}
var colourReset = "\033[0m"

const (
	colourFood   = 1
	colourSnake  = 2
	colourBorder = 7
)

// The UI interface is the display sink of a session. UIs can be stacked (see teeUI).
//
// Initialise acquires the output, Finish must release it on every exit path and must be safe to call more than once.
type UI interface {
	Initialise() error
	NewFrame(s Snapshot)
	Finish(s Snapshot) error
}

// Input is a pollable source of player commands.
// Poll waits at most timeout and returns false if no usable command arrived.
type Input interface {
	Poll(timeout time.Duration) (Command, bool)
}

// CommandKind distinguishes player commands.
type CommandKind int

const (
	// CommandTurn asks the snake to turn towards Command.Direction.
	CommandTurn CommandKind = iota
	// CommandQuit ends the session.
	CommandQuit
)

// Command is a single player input.
type Command struct {
	Kind      CommandKind
	Direction Direction
}

// Snapshot is the immutable state needed to draw one frame.
type Snapshot struct {
	Width   int       `json:"width"`
	Height  int       `json:"height"`
	Snake   []Point   `json:"snake"` // head first
	Heading Direction `json:"heading"`
	Food    *Point    `json:"food,omitempty"`
	Score   int       `json:"score"`
	Speed   int       `json:"speed"`
	Round   int       `json:"round"`
	Over    bool      `json:"over"`
	Reason  EndReason `json:"reason,omitempty"`
}

func gameOverMessage(score int) string {
	return fmt.Sprintf("Game Over! Your score is %d", score)
}

var headRunes = map[Direction]rune{
	DirectionUp:    '▲',
	DirectionRight: '▶',
	DirectionDown:  '▼',
	DirectionLeft:  '◀',
}

const (
	runeEmpty  = ' '
	runeFood   = '*'
	runeBorder = '#'
	runeCorner = '+'
)

// directionTo returns the direction of the neighbouring cell to, seen from from.
func directionTo(from, to Point) Direction {
	switch {
	case to.X > from.X:
		return DirectionRight
	case to.X < from.X:
		return DirectionLeft
	case to.Y > from.Y:
		return DirectionDown
	}
	return DirectionUp
}

// segmentRune returns the box drawing rune connecting a segment to its neighbours.
// The tail has only one neighbour, so b is empty for it.
func segmentRune(a, b Direction) rune {
	has := func(d Direction) bool { return a == d || b == d }
	switch {
	case has(DirectionUp) && has(DirectionDown):
		return '│'
	case has(DirectionLeft) && has(DirectionRight):
		return '─'
	case has(DirectionDown) && has(DirectionRight):
		return '┌'
	case has(DirectionDown) && has(DirectionLeft):
		return '┐'
	case has(DirectionUp) && has(DirectionRight):
		return '└'
	case has(DirectionUp) && has(DirectionLeft):
		return '┘'
	case has(DirectionUp) || has(DirectionDown):
		return '│'
	}
	return '─'
}

// snakeRune returns the rune of segment i.
func (s Snapshot) snakeRune(i int) rune {
	if i == 0 {
		r, ok := headRunes[s.Heading]
		if !ok {
			return 'O'
		}
		return r
	}
	a := directionTo(s.Snake[i], s.Snake[i-1])
	var b Direction
	if i < len(s.Snake)-1 {
		b = directionTo(s.Snake[i], s.Snake[i+1])
	}
	return segmentRune(a, b)
}

// Cells returns the runes of the playing field without border, indexed [y][x], and the colour index of each cell.
func (s Snapshot) Cells() ([][]rune, [][]int) {
	runes := make([][]rune, s.Height)
	cols := make([][]int, s.Height)
	for y := range runes {
		runes[y] = make([]rune, s.Width)
		cols[y] = make([]int, s.Width)
		for x := range runes[y] {
			runes[y][x] = runeEmpty
		}
	}
	if s.Food != nil && int(s.Food.X) < s.Width && int(s.Food.Y) < s.Height {
		runes[s.Food.Y][s.Food.X] = runeFood
		cols[s.Food.Y][s.Food.X] = colourFood
	}
	// Draw from the tail so the head always wins
	for i := len(s.Snake) - 1; i >= 0; i-- {
		p := s.Snake[i]
		if int(p.X) >= s.Width || int(p.Y) >= s.Height {
			continue
		}
		runes[p.Y][p.X] = s.snakeRune(i)
		cols[p.Y][p.X] = colourSnake
	}
	return runes, cols
}

func (s Snapshot) String() string {
	return s.PrintGame(false)
}

// PrintGame returns a string representation of the field including the border.
func (s Snapshot) PrintGame(colour bool) string {
	var sb strings.Builder
	runes, cols := s.Cells()

	border := func(r rune) {
		if colour {
			sb.WriteString(colours[colourBorder])
		}
		sb.WriteRune(r)
		if colour {
			sb.WriteString(colourReset)
		}
	}

	line := func() {
		border(runeCorner)
		for x := 0; x < s.Width; x++ {
			border(runeBorder)
		}
		border(runeCorner)
	}

	line()
	sb.WriteRune('\n')
	for y := range runes {
		border(runeBorder)
		for x, r := range runes[y] {
			if colour && cols[y][x] != 0 {
				sb.WriteString(colours[cols[y][x]])
			}
			sb.WriteRune(r)
			if colour && cols[y][x] != 0 {
				sb.WriteString(colourReset)
			}
		}
		border(runeBorder)
		sb.WriteRune('\n')
	}
	line()

	return sb.String()
}

func buildGameOverviewStrings(s Snapshot) []string {
	ss := make([]string, 0, 8)
	ss = append(ss, fmt.Sprintf("score: %d", s.Score))
	ss = append(ss, fmt.Sprintf("speed: %d", s.Speed))
	ss = append(ss, fmt.Sprintf("length: %d", len(s.Snake)))
	ss = append(ss, fmt.Sprintf("round: %d", s.Round))
	ss = append(ss, fmt.Sprintf("size: %d x %d", s.Width, s.Height))
	ss = append(ss, "")
	if s.Over {
		ss = append(ss, fmt.Sprintf("game over (%s)", s.Reason))
	} else {
		ss = append(ss, "running")
	}
	return ss
}
