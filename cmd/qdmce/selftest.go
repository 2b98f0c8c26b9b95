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
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/qdmce/qdmce-go/bitvec"
	"github.com/qdmce/qdmce-go/mceqd"
	"github.com/qdmce/qdmce-go/subtle/random"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

type selftestReport struct {
	Parameters *mceqd.Parameters
	Trials     int
	Failures   int64
	// Attempts is the number of key generation attempts.
	Attempts float64
}

func selftestAction(c *cli.Context) error {
	log, err := newLogger(c)
	if err != nil {
		return err
	}
	cfg, err := loadSelftestConfig(c)
	if err != nil {
		return err
	}
	report, err := runSelftest(c.Context, cfg, log, c.App.ErrWriter)
	if report != nil {
		fmt.Fprintf(c.App.Writer, "%v: %d of %d round trips failed, key found after %v attempts\n",
			report.Parameters, report.Failures, report.Trials, report.Attempts)
	}
	return err
}

// newSource returns a seeded source for stream, or a crypto/rand source if
// seed is empty.
func newSource(seed string, stream string) random.Source {
	if seed == "" {
		return random.NewCryptoSource()
	}
	return random.NewSeededSource([]byte(seed + "/" + stream))
}

func runSelftest(ctx context.Context, cfg *selftestConfig, log zerolog.Logger, progress io.Writer) (*selftestReport, error) {
	params, err := mceqd.NewParameters(cfg.M, cfg.T, cfg.Discard)
	if err != nil {
		return nil, errors.Wrap(err, "invalid parameters")
	}
	reg := prometheus.NewRegistry()
	metrics := mceqd.NewMetrics(reg)

	log.Info().Stringer("params", params).Int("trials", cfg.Trials).Int("workers", cfg.Workers).Msg("starting selftest")
	pub, priv, err := mceqd.GenerateKey(newSource(cfg.Seed, "keygen"), params, mceqd.WithLogger(log), mceqd.WithMetrics(metrics))
	if err != nil {
		return nil, errors.Wrap(err, "key generation failed")
	}
	if err := priv.Prepare(); err != nil {
		return nil, errors.Wrap(err, "cannot prepare private key")
	}
	attempts, err := counterTotal(reg, "qdmce_keygen_attempts_total")
	if err != nil {
		return nil, err
	}

	bar := progressbar.NewOptions(cfg.Trials,
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("round trips"),
		progressbar.OptionShowCount(),
	)
	var failures atomic.Int64
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := 0; i < cfg.Trials; i++ {
		rng := newSource(cfg.Seed, fmt.Sprintf("trial-%d", i))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := roundTrip(pub, priv, rng); err != nil {
				failures.Add(1)
				log.Warn().Err(err).Int("trial", i).Msg("round trip failed")
			}
			return bar.Add(1)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "selftest interrupted")
	}
	bar.Finish()
	fmt.Fprintln(progress)

	report := &selftestReport{
		Parameters: params,
		Trials:     cfg.Trials,
		Failures:   failures.Load(),
		Attempts:   attempts,
	}
	if report.Failures > 0 {
		return report, errors.Errorf("%d of %d round trips failed", report.Failures, report.Trials)
	}
	log.Info().Int("trials", cfg.Trials).Msg("selftest passed")
	return report, nil
}

func roundTrip(pub *mceqd.PublicKey, priv *mceqd.PrivateKey, rng random.Source) error {
	plaintext := bitvec.New(pub.PlainSize())
	for i := 0; i < plaintext.Len(); i++ {
		plaintext.Set(i, rng.IntN(2) == 1)
	}
	ciphertext, err := pub.Encrypt(plaintext, rng)
	if err != nil {
		return errors.Wrap(err, "encrypt")
	}
	got, err := priv.Decrypt(ciphertext)
	if err != nil {
		return errors.Wrap(err, "decrypt")
	}
	if !got.Equal(plaintext) {
		return errors.New("decrypted plaintext differs")
	}
	return nil
}

// counterTotal sums the counter family name over all its labels.
func counterTotal(g prometheus.Gatherer, name string) (float64, error) {
	families, err := g.Gather()
	if err != nil {
		return 0, errors.Wrap(err, "cannot gather metrics")
	}
	var total float64
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
		for _, m := range f.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total, nil
}
