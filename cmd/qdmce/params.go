// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/qdmce/qdmce-go/mceqd"
	"github.com/urfave/cli/v2"
)

func paramsAction(c *cli.Context) error {
	params, err := mceqd.NewParameters(c.Int(mFlag), c.Int(tFlag), c.Int(discardFlag))
	if err != nil {
		return errors.Wrap(err, "invalid parameters")
	}
	return printParameters(c.App.Writer, params)
}

func printParameters(w io.Writer, p *mceqd.Parameters) error {
	m, t := p.M(), p.BlockSize()
	sigBits := m * t
	pubBits := (p.BlockCount() - m) * sigBits
	_, err := fmt.Fprintf(w,
		"parameters:   %v\n"+
			"field size:   %d\n"+
			"errors:       %d\n"+
			"blocks:       %d of %d\n"+
			"plain size:   %d bits\n"+
			"cipher size:  %d bits\n"+
			"public key:   %d signatures of %d bits (%d bytes)\n",
		p,
		1<<m,
		t,
		p.BlockCount(), p.HBlockCount(),
		p.PlainSize(),
		p.CipherSize(),
		p.BlockCount()-m, sigBits, (pubBits+7)/8,
	)
	return err
}
