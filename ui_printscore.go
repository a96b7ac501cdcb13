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

	"github.com/pkg/errors"
)

// printScoreUI writes the game over line into File when the game finishes.
type printScoreUI struct {
	File        string
	UI          UI
	initialised bool
}

func (p *printScoreUI) Initialise() error {
	p.initialised = true
	if p.UI != nil {
		return p.UI.Initialise()
	}
	return nil
}

func (p *printScoreUI) NewFrame(s Snapshot) {
	if p.UI != nil {
		p.UI.NewFrame(s)
	}
}

func (p *printScoreUI) Finish(s Snapshot) error {
	var err error
	if p.UI != nil {
		err = p.UI.Finish(s)
	}

	if p.initialised {
		p.initialised = false
		f, newErr := os.Create(p.File)
		if newErr != nil {
			return errors.WithMessage(newErr, "create score file")
		}
		defer f.Close()

		_, newErr = f.WriteString(gameOverMessage(s.Score) + "\n")
		if newErr != nil {
			return errors.WithMessage(newErr, "write score file")
		}
	}

	return err
}
