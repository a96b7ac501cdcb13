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
)

// Snake holds the body (head first), the heading and whether the next step grows the body.
type Snake struct {
	body      []Point
	direction Direction
	digesting bool
}

// NewSnake creates a snake with its head at start. The remaining segments are laid out behind the head.
// It panics if length < 1, the heading is invalid or the body would leave the grid.
func NewSnake(start Point, length int, direction Direction) *Snake {
	if length < 1 {
		panic(fmt.Sprintf("snake length must be at least 1 (is %d)", length))
	}
	if !direction.Valid() {
		panic(fmt.Sprintf("invalid snake direction %q", direction))
	}

	s := &Snake{
		body:      make([]Point, length),
		direction: direction,
	}
	back := direction.Opposite()
	for i := range s.body {
		s.body[i] = start.Translate(back, i)
	}
	return s
}

// Head returns the first segment.
func (s *Snake) Head() Point {
	return s.body[0]
}

// Tail returns the last segment.
func (s *Snake) Tail() Point {
	return s.body[len(s.body)-1]
}

// Body returns a copy of all segments, head first.
func (s *Snake) Body() []Point {
	b := make([]Point, len(s.body))
	copy(b, s.body)
	return b
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Digesting reports whether the next Slither grows the snake.
func (s *Snake) Digesting() bool {
	return s.digesting
}

// ContainsPoint reports whether any segment is at p.
func (s *Snake) ContainsPoint(p Point) bool {
	for i := range s.body {
		if s.body[i] == p {
			return true
		}
	}
	return false
}

// SetDirection changes the heading unless d points straight back into the neck.
// It returns whether the heading was applied.
func (s *Snake) SetDirection(d Direction) bool {
	if !d.Valid() || d == s.direction.Opposite() {
		return false
	}
	s.direction = d
	return true
}

// Grow makes the next Slither keep the tail.
func (s *Snake) Grow() {
	s.digesting = true
}

// Slither moves the snake one step along its heading.
func (s *Snake) Slither() {
	head := s.body[0].Translate(s.direction, 1)
	if s.digesting {
		s.body = append(s.body, Point{})
		s.digesting = false
	}
	copy(s.body[1:], s.body)
	s.body[0] = head
}
