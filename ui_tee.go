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
	"os"

	"github.com/pkg/errors"
)

// teeUI writes every frame as plain text into File before passing it on to UI.
type teeUI struct {
	File string
	UI   UI
	f    *os.File
}

func (t *teeUI) Initialise() error {
	if t.f != nil {
		return fmt.Errorf("file already opened")
	}
	var err error
	t.f, err = os.Create(t.File)
	if err != nil {
		t.f = nil
		return errors.WithMessage(err, "create print file")
	}
	if t.UI != nil {
		return t.UI.Initialise()
	}
	return nil
}

func (t *teeUI) NewFrame(s Snapshot) {
	if t.f != nil {
		t.f.WriteString(s.PrintGame(false))
		t.f.WriteString("\n")
		for _, l := range buildGameOverviewStrings(s) {
			if l == "" {
				continue
			}
			t.f.WriteString(l)
			t.f.WriteString("\n")
		}
		t.f.WriteString("\n")
	}

	if t.UI != nil {
		t.UI.NewFrame(s)
	}
}

func (t *teeUI) Finish(s Snapshot) error {
	var err error
	if t.f != nil {
		t.f.WriteString(gameOverMessage(s.Score))
		t.f.WriteString("\n")
		err = t.f.Close()
		t.f = nil
	}
	if t.UI != nil {
		newErr := t.UI.Finish(s)
		if newErr != nil && err != nil {
			return fmt.Errorf("two errors: %s, %s", err.Error(), newErr.Error())
		} else if newErr != nil {
			err = newErr
		}
	}
	return err
}
