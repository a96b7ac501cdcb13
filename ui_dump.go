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

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// dumpUI collects all frames and writes them as a JSON array into File when the game finishes.
type dumpUI struct {
	File   string
	UI     UI
	frames []Snapshot
	done   bool
}

func (d *dumpUI) Initialise() error {
	if d.UI != nil {
		return d.UI.Initialise()
	}
	return nil
}

func (d *dumpUI) NewFrame(s Snapshot) {
	d.frames = append(d.frames, s)

	if d.UI != nil {
		d.UI.NewFrame(s)
	}
}

func (d *dumpUI) Finish(s Snapshot) error {
	var err error
	if d.UI != nil {
		err = d.UI.Finish(s)
	}

	if d.done || len(d.frames) == 0 {
		return err
	}
	d.done = true

	f, newErr := os.Create(d.File)
	if newErr != nil {
		return errors.WithMessage(newErr, "create dump file")
	}
	defer f.Close()
	enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(f)
	newErr = enc.Encode(d.frames)

	if newErr != nil {
		return errors.WithMessage(newErr, "encode frames")
	}

	return err
}
