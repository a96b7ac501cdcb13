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
	"time"

	"github.com/gdamore/tcell"
	"github.com/pkg/errors"
	"go.uber.org/atomic"
)

// ErrTerminalTooSmall is returned by terminalUI.Initialise if the field does not fit.
var ErrTerminalTooSmall = errors.New("terminal too small")

// panelWidth is the width of the status panel right of the field.
const panelWidth = 24

// terminalUI draws the game with tcell and reads the keyboard.
// It is both the UI and the Input of a session and must only be used from the goroutine running the game.
type terminalUI struct {
	screen tcell.Screen
	width  int
	height int
	colors map[int]tcell.Color
	events chan tcell.Event
	active *atomic.Bool
	last   *Snapshot
}

func newTerminalUI(screen tcell.Screen, width, height int) *terminalUI {
	return &terminalUI{
		screen: screen,
		width:  width,
		height: height,
		colors: map[int]tcell.Color{
			colourFood:   tcell.ColorRed,
			colourSnake:  tcell.ColorGreen,
			colourBorder: tcell.ColorGray,
		},
		events: make(chan tcell.Event, 8),
		active: atomic.NewBool(false),
	}
}

func (tui *terminalUI) Initialise() error {
	err := tui.screen.Init()
	if err != nil {
		return errors.WithMessage(err, "init screen")
	}

	w, h := tui.screen.Size()
	needW, needH := tui.width+3+panelWidth, tui.height+2
	if w < needW || h < needH {
		tui.screen.Fini()
		return errors.WithMessagef(ErrTerminalTooSmall, "need %dx%d, have %dx%d", needW, needH, w, h)
	}

	tui.active.Store(true)
	tui.screen.HideCursor()
	tui.screen.Clear()
	tui.screen.Show()

	go tui.pumpEvents(tui.events)

	return nil
}

func (tui *terminalUI) NewFrame(s Snapshot) {
	tui.last = &s
	tui.draw(s)
}

// Finish restores the terminal. Only the first call after a successful Initialise does something.
func (tui *terminalUI) Finish(s Snapshot) error {
	if !tui.active.CompareAndSwap(true, false) {
		return nil
	}
	tui.screen.Fini()
	return nil
}

func (tui *terminalUI) Poll(timeout time.Duration) (Command, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case e, ok := <-tui.events:
		if !ok {
			// Screen is gone, only wait for the timeout from now on
			tui.events = nil
			return Command{}, false
		}
		return tui.handleEvent(e)
	case <-timer.C:
		return Command{}, false
	}
}

// pumpEvents forwards screen events until the screen is finalised.
func (tui *terminalUI) pumpEvents(ec chan<- tcell.Event) {
	for {
		e := tui.screen.PollEvent()
		if e == nil {
			close(ec)
			return
		}
		ec <- e
	}
}

func (tui *terminalUI) handleEvent(e tcell.Event) (Command, bool) {
	switch ev := e.(type) {
	case *tcell.EventKey:
		return commandFromKey(ev)
	case *tcell.EventResize:
		tui.screen.Sync()
		if tui.last != nil {
			tui.draw(*tui.last)
		}
	}
	return Command{}, false
}

func commandFromKey(ev *tcell.EventKey) (Command, bool) {
	turn := func(d Direction) (Command, bool) {
		return Command{Kind: CommandTurn, Direction: d}, true
	}

	switch ev.Key() {
	case tcell.KeyUp:
		return turn(DirectionUp)
	case tcell.KeyRight:
		return turn(DirectionRight)
	case tcell.KeyDown:
		return turn(DirectionDown)
	case tcell.KeyLeft:
		return turn(DirectionLeft)
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Kind: CommandQuit}, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return Command{Kind: CommandQuit}, true
		case 'w', 'k':
			return turn(DirectionUp)
		case 'd', 'l':
			return turn(DirectionRight)
		case 's', 'j':
			return turn(DirectionDown)
		case 'a', 'h':
			return turn(DirectionLeft)
		}
	}
	return Command{}, false
}

func (tui *terminalUI) style(colour int) tcell.Style {
	c, ok := tui.colors[colour]
	if !ok {
		return tcell.StyleDefault
	}
	return tcell.StyleDefault.Foreground(c)
}

func (tui *terminalUI) drawString(x, y int, v string) {
	for i, r := range []rune(v) {
		tui.screen.SetContent(x+i, y, r, nil, tcell.StyleDefault)
	}
}

func (tui *terminalUI) draw(s Snapshot) {
	border := tui.style(colourBorder)
	for x := 0; x < s.Width+2; x++ {
		tui.screen.SetContent(x, 0, runeBorder, nil, border)
		tui.screen.SetContent(x, s.Height+1, runeBorder, nil, border)
	}
	for y := 0; y < s.Height+2; y++ {
		tui.screen.SetContent(0, y, runeBorder, nil, border)
		tui.screen.SetContent(s.Width+1, y, runeBorder, nil, border)
	}
	for _, c := range [][2]int{{0, 0}, {s.Width + 1, 0}, {0, s.Height + 1}, {s.Width + 1, s.Height + 1}} {
		tui.screen.SetContent(c[0], c[1], runeCorner, nil, border)
	}

	runes, cols := s.Cells()
	for y := range runes {
		for x, r := range runes[y] {
			st := tui.style(cols[y][x])
			if len(s.Snake) > 0 && s.Snake[0] == (Point{X: uint16(x), Y: uint16(y)}) {
				st = st.Bold(true)
			}
			tui.screen.SetContent(x+1, y+1, r, nil, st)
		}
	}

	ox := s.Width + 3
	for i, line := range buildGameOverviewStrings(s) {
		tui.drawString(ox, i, fmt.Sprintf("%-*s", panelWidth, line))
	}
	tui.screen.Show()
}
