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

// Command qdmce inspects quasi-dyadic McEliece parameter sets and runs
// encryption self tests.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
)

const (
	mFlag        = "m"
	tFlag        = "t"
	discardFlag  = "discard"
	trialsFlag   = "trials"
	workersFlag  = "workers"
	seedFlag     = "seed"
	configFlag   = "config"
	logLevelFlag = "loglevel"
)

func codeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{Name: mFlag, Value: 9, Usage: "extension degree of the field GF(2^m)"},
		&cli.IntFlag{Name: tFlag, Value: 2, Usage: "log2 of the block size; codes correct 2^t errors"},
		&cli.IntFlag{Name: discardFlag, Value: 0, Usage: "number of dyadic blocks dropped from the code"},
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "qdmce"
	app.Usage = "quasi-dyadic McEliece tooling"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		&cli.StringFlag{Name: logLevelFlag, Value: "info", Usage: "log level: debug, info, warn, error"},
	}
	app.Commands = []*cli.Command{
		{
			Name:   "params",
			Usage:  "print the sizes of a parameter set",
			Flags:  codeFlags(),
			Action: paramsAction,
		},
		{
			Name:  "selftest",
			Usage: "generate a key pair and run encryption round trips",
			Flags: append(codeFlags(),
				&cli.IntFlag{Name: trialsFlag, Value: 100, Usage: "number of round trips"},
				&cli.IntFlag{Name: workersFlag, Value: 4, Usage: "number of concurrent workers"},
				&cli.StringFlag{Name: seedFlag, Usage: "seed for deterministic runs; random if empty"},
				&cli.StringFlag{Name: configFlag, Usage: "YAML file with selftest settings; flags override it"},
			),
			Action: selftestAction,
		},
	}
	return app
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
