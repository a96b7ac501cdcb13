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
	"os"
	"path/filepath"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFrames() []Snapshot {
	return []Snapshot{
		{Width: 4, Height: 3, Snake: []Point{{1, 1}, {0, 1}}, Heading: DirectionRight, Food: &Point{3, 2}, Speed: 10},
		{Width: 4, Height: 3, Snake: []Point{{2, 1}, {1, 1}}, Heading: DirectionRight, Food: &Point{3, 2}, Speed: 10, Round: 1},
		{Width: 4, Height: 3, Snake: []Point{{2, 1}, {1, 1}}, Heading: DirectionRight, Food: &Point{3, 2}, Speed: 10, Round: 1, Score: 3, Over: true, Reason: ReasonQuit},
	}
}

func playFrames(t *testing.T, ui UI) {
	t.Helper()
	require.NoError(t, ui.Initialise())
	frames := testFrames()
	for _, f := range frames {
		ui.NewFrame(f)
	}
	require.NoError(t, ui.Finish(frames[len(frames)-1]))
}

func TestTeeUI(t *testing.T) {
	file := filepath.Join(t.TempDir(), "frames.txt")
	inner := &recordingUI{}

	playFrames(t, &teeUI{File: file, UI: inner})

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, testFrames()[1].PrintGame(false))
	assert.Contains(t, out, "round: 1")
	assert.Contains(t, out, "game over (quit)")
	assert.Contains(t, out, "Game Over! Your score is 3\n")

	assert.True(t, inner.initialised)
	assert.Len(t, inner.frames, 3)
	assert.Len(t, inner.finished, 1)
}

func TestTeeUIInvalidFile(t *testing.T) {
	tee := &teeUI{File: filepath.Join(t.TempDir(), "missing", "frames.txt")}
	assert.Error(t, tee.Initialise())
}

func TestDumpUI(t *testing.T) {
	file := filepath.Join(t.TempDir(), "frames.json")
	d := &dumpUI{File: file, UI: &recordingUI{}}

	playFrames(t, d)
	// A second Finish, e.g. from the panic handler, must not rewrite the file
	require.NoError(t, os.Remove(file))
	require.NoError(t, d.Finish(Snapshot{}))
	_, err := os.Stat(file)
	assert.True(t, os.IsNotExist(err))
}

func TestDumpUIContent(t *testing.T) {
	file := filepath.Join(t.TempDir(), "frames.json")

	playFrames(t, &dumpUI{File: file})

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	var frames []Snapshot
	require.NoError(t, jsoniter.Unmarshal(b, &frames))
	assert.Equal(t, testFrames(), frames)
	assert.Contains(t, string(b), `"heading":"right"`)
	assert.Contains(t, string(b), `"reason":"quit"`)
}

func TestPrintScoreUI(t *testing.T) {
	file := filepath.Join(t.TempDir(), "score.txt")
	inner := &recordingUI{}

	playFrames(t, &printScoreUI{File: file, UI: inner})

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Equal(t, "Game Over! Your score is 3\n", string(b))
	assert.Len(t, inner.frames, 3)
}

func TestStackedUIs(t *testing.T) {
	dir := t.TempDir()
	inner := &recordingUI{}
	var ui UI = inner
	ui = &teeUI{File: filepath.Join(dir, "frames.txt"), UI: ui}
	ui = &dumpUI{File: filepath.Join(dir, "frames.json"), UI: ui}
	ui = &printScoreUI{File: filepath.Join(dir, "score.txt"), UI: ui}

	playFrames(t, ui)

	for _, f := range []string{"frames.txt", "frames.json", "score.txt"} {
		_, err := os.Stat(filepath.Join(dir, f))
		assert.NoError(t, err, f)
	}
	assert.Len(t, inner.frames, 3)
	assert.Len(t, inner.finished, 1)
}
