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
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

// selftestConfig holds the selftest settings. Fields left out of the YAML
// file keep the flag defaults.
type selftestConfig struct {
	M       int    `yaml:"m"`
	T       int    `yaml:"t"`
	Discard int    `yaml:"discard"`
	Trials  int    `yaml:"trials"`
	Workers int    `yaml:"workers"`
	Seed    string `yaml:"seed"`
}

func readConfigFile(path string, cfg *selftestConfig) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "cannot open config file")
	}
	defer file.Close()
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil {
		if err == io.EOF {
			return nil
		}
		return errors.Wrap(err, "error parsing YAML in config file at "+path)
	}
	return nil
}

// loadSelftestConfig starts from the flag defaults, applies the config file
// if any, then the flags set on the command line.
func loadSelftestConfig(c *cli.Context) (*selftestConfig, error) {
	cfg := &selftestConfig{
		M:       c.Int(mFlag),
		T:       c.Int(tFlag),
		Discard: c.Int(discardFlag),
		Trials:  c.Int(trialsFlag),
		Workers: c.Int(workersFlag),
		Seed:    c.String(seedFlag),
	}
	if path := c.String(configFlag); path != "" {
		if err := readConfigFile(path, cfg); err != nil {
			return nil, err
		}
	}
	overrides := []struct {
		flag string
		set  func()
	}{
		{mFlag, func() { cfg.M = c.Int(mFlag) }},
		{tFlag, func() { cfg.T = c.Int(tFlag) }},
		{discardFlag, func() { cfg.Discard = c.Int(discardFlag) }},
		{trialsFlag, func() { cfg.Trials = c.Int(trialsFlag) }},
		{workersFlag, func() { cfg.Workers = c.Int(workersFlag) }},
		{seedFlag, func() { cfg.Seed = c.String(seedFlag) }},
	}
	for _, o := range overrides {
		if c.IsSet(o.flag) {
			o.set()
		}
	}
	if cfg.Trials < 0 {
		return nil, errors.Errorf("negative number of trials %d", cfg.Trials)
	}
	if cfg.Workers < 1 {
		return nil, errors.Errorf("need at least one worker, got %d", cfg.Workers)
	}
	return cfg, nil
}

func newLogger(c *cli.Context) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(c.String(logLevelFlag))
	if err != nil {
		return zerolog.Nop(), errors.Wrap(err, "invalid log level")
	}
	out := zerolog.ConsoleWriter{Out: c.App.ErrWriter, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger(), nil
}
