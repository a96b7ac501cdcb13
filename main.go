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

// snake is a terminal version of the classic game.
// Steer with the arrow keys (or WASD / hjkl), quit with q or Esc.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"runtime/pprof"
	"syscall"
	"time"

	"github.com/gdamore/tcell"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	width := flag.Int("width", 0, "Width of the field. 0 keeps the configured value")
	height := flag.Int("height", 0, "Height of the field. 0 keeps the configured value")
	seed := flag.Int64("seed", 0, "Random seed. 0 keeps the configured value (0 in the config uses the current time)")
	logFile := flag.String("log", "", "Write logs to file")
	debug := flag.Bool("debug", false, "Enable debug logs")
	profile := flag.String("profile", "", "Profile program to file")
	print := flag.String("print", "", "Prints all frames into file")
	dump := flag.String("dump", "", "Dumps all frames as JSON to file")
	printScore := flag.String("printscore", "", "Prints the final score into file")
	flag.Parse()

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadConfig(*configPath)
		exitOnError(err)
	}
	exitOnError(cfg.applyEnv(os.Getenv))
	if *width != 0 {
		cfg.Width = *width
	}
	if *height != 0 {
		cfg.Height = *height
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	exitOnError(cfg.Validate())
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger, err := newLogger(*logFile, *debug)
	exitOnError(errors.WithMessage(err, "create logger"))
	defer func() {
		_ = logger.Sync()
	}()
	logger = logger.With(zap.String("session", uuid.NewString()), zap.Int64("seed", cfg.Seed))

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Panicln(err)
		}
		defer f.Close()
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Panicln(err)
		}
		defer pprof.StopCPUProfile()
	}

	game, err := NewGame(cfg, rand.New(rand.NewSource(cfg.Seed)), logger)
	exitOnError(err)

	screen, err := tcell.NewScreen()
	exitOnError(errors.WithMessage(err, "create screen"))
	tui := newTerminalUI(screen, cfg.Width, cfg.Height)

	var UI UI = tui
	if *print != "" {
		UI = &teeUI{File: *print, UI: UI}
	}
	if *dump != "" {
		UI = &dumpUI{File: *dump, UI: UI}
	}
	if *printScore != "" {
		UI = &printScoreUI{File: *printScore, UI: UI}
	}

	defer func() {
		err := recover()
		if err != nil {
			// Clearly close UI
			_ = UI.Finish(game.Snapshot())
			logger.Error("panic", zap.Any("error", err))
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()

	err = UI.Initialise()
	if err != nil {
		_ = UI.Finish(game.Snapshot())
		exitOnError(err)
	}

	final := play(context.Background(), game, tui, UI, logger)

	err = UI.Finish(final)
	if err != nil {
		logger.Error("finish ui", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
	}

	fmt.Println(gameOverMessage(final.Score))
}

// play runs the game in the calling goroutine while a second goroutine watches for signals.
// A signal cancels the game, which ends at the start of the next tick.
func play(ctx context.Context, game *Game, input Input, ui UI, logger *zap.Logger) Snapshot {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)

	errGroup, groupCtx := errgroup.WithContext(ctx)
	errGroup.Go(func() error {
		select {
		case s := <-sigChan:
			return errors.Errorf("captured signal: %v", s)
		case <-groupCtx.Done():
			return nil
		}
	})

	final := game.Run(groupCtx, input, ui)
	cancel()

	if err := errGroup.Wait(); err != nil {
		logger.Info("game stopped: " + err.Error())
	}
	return final
}

func exitOnError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
