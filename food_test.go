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
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceFoodAvoidsSnake(t *testing.T) {
	s := NewSnake(Point{5, 5}, 6, DirectionUp)
	for seed := int64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		p, err := placeFood(rng, 10, 10, s)
		require.NoError(t, err)
		assert.False(t, s.ContainsPoint(p), "seed %d placed food on the snake at %s", seed, p)
		assert.Less(t, int(p.X), 10)
		assert.Less(t, int(p.Y), 10)
	}
}

func TestPlaceFoodCrowdedGrid(t *testing.T) {
	// Serpentine covering all cells of a 3x3 grid but (2,2)
	s := &Snake{
		body: []Point{
			{0, 0}, {1, 0}, {2, 0},
			{2, 1}, {1, 1}, {0, 1},
			{0, 2}, {1, 2},
		},
		direction: DirectionLeft,
	}
	for seed := int64(0); seed < 50; seed++ {
		p, err := placeFood(rand.New(rand.NewSource(seed)), 3, 3, s)
		require.NoError(t, err)
		assert.Equal(t, Point{2, 2}, p)
	}
}

func TestPlaceFoodGridFull(t *testing.T) {
	s := &Snake{
		body:      []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		direction: DirectionUp,
	}
	_, err := placeFood(rand.New(rand.NewSource(1)), 2, 2, s)
	assert.True(t, errors.Is(err, ErrGridFull))
}
