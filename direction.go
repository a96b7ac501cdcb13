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

// Direction is a heading on the grid.
type Direction string

const (
	// DirectionUp contains the string value representing "up"
	DirectionUp Direction = "up"
	// DirectionRight contains the string value representing "right"
	DirectionRight Direction = "right"
	// DirectionDown contains the string value representing "down"
	DirectionDown Direction = "down"
	// DirectionLeft contains the string value representing "left"
	DirectionLeft Direction = "left"
)

// Directions lists all headings in clockwise order, starting at DirectionUp.
var Directions = []Direction{DirectionUp, DirectionRight, DirectionDown, DirectionLeft}

// Valid reports whether d is one of the four headings.
func (d Direction) Valid() bool {
	switch d {
	case DirectionUp, DirectionRight, DirectionDown, DirectionLeft:
		return true
	}
	return false
}

// Opposite returns the heading pointing the other way.
// Invalid directions are returned unchanged.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionRight:
		return DirectionLeft
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	}
	return d
}

// Delta returns the unit step of d. The y axis grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirectionUp:
		return 0, -1
	case DirectionRight:
		return 1, 0
	case DirectionDown:
		return 0, 1
	case DirectionLeft:
		return -1, 0
	}
	return 0, 0
}
