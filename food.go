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
	"math/rand"

	"github.com/pkg/errors"
)

// ErrGridFull is returned when no free cell is left for food.
var ErrGridFull = errors.New("no free cell left on the grid")

// foodAttemptsPerCell bounds random sampling before falling back to enumerating the free cells.
const foodAttemptsPerCell = 4

// placeFood picks a uniformly random cell of the width x height grid which is not covered by s.
func placeFood(rng *rand.Rand, width, height int, s *Snake) (Point, error) {
	area := width * height
	if s.Len() >= area {
		return Point{}, ErrGridFull
	}

	for i := 0; i < foodAttemptsPerCell*area; i++ {
		p := Point{X: uint16(rng.Intn(width)), Y: uint16(rng.Intn(height))}
		if !s.ContainsPoint(p) {
			return p, nil
		}
	}

	// Crowded grid
	free := make([]Point, 0, area-s.Len())
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := Point{X: uint16(x), Y: uint16(y)}
			if !s.ContainsPoint(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, ErrGridFull
	}
	return free[rng.Intn(len(free))], nil
}
