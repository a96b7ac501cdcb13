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
	"math"
)

// Point is a cell on the grid. The origin is the top left corner.
type Point struct {
	X uint16 `json:"x"`
	Y uint16 `json:"y"`
}

// Translate returns p moved n steps towards d.
// Moving below the origin is a programming error and panics; callers check for walls first.
func (p Point) Translate(d Direction, n int) Point {
	dx, dy := d.Delta()
	x := int(p.X) + dx*n
	y := int(p.Y) + dy*n
	if x < 0 || y < 0 || x > math.MaxUint16 || y > math.MaxUint16 {
		panic(fmt.Sprintf("translating %s by %d towards %s leaves the grid", p, n, d))
	}
	return Point{X: uint16(x), Y: uint16(y)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
