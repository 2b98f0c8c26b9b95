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

package mceqd

import (
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "qdmce"

// Rejection reasons of a key generation attempt.
const (
	reasonSampleExhausted  = "sample_exhausted"
	reasonDuplicateSupport = "duplicate_support"
	reasonGoppaRoot        = "goppa_root"
	reasonElimination      = "elimination"
)

// Decryption failure reasons.
const (
	failureNotPrepared    = "not_prepared"
	failureLengthMismatch = "length_mismatch"
	failureDecode         = "decode"
)

// Metrics holds the prometheus collectors of this package. A nil *Metrics
// records nothing.
type Metrics struct {
	attempts        prometheus.Counter
	rejections      *prometheus.CounterVec
	keysGenerated   prometheus.Counter
	decryptFailures *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. It panics
// if they are already registered, like prometheus.MustRegister.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		attempts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "keygen",
				Name:      "attempts_total",
				Help:      "Number of key generation attempts",
			},
		),
		rejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "keygen",
				Name:      "rejections_total",
				Help:      "Number of rejected key generation attempts by reason",
			},
			[]string{"reason"},
		),
		keysGenerated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "keygen",
				Name:      "keys_total",
				Help:      "Number of generated key pairs",
			},
		),
		decryptFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "decrypt",
				Name:      "failures_total",
				Help:      "Number of failed decryptions by reason",
			},
			[]string{"reason"},
		),
	}
	reg.MustRegister(m.attempts, m.rejections, m.keysGenerated, m.decryptFailures)
	return m
}

func (m *Metrics) attempt() {
	if m != nil {
		m.attempts.Inc()
	}
}

func (m *Metrics) reject(reason string) {
	if m != nil {
		m.rejections.WithLabelValues(reason).Inc()
	}
}

func (m *Metrics) keyGenerated() {
	if m != nil {
		m.keysGenerated.Inc()
	}
}

func (m *Metrics) decryptFailed(reason string) {
	if m != nil {
		m.decryptFailures.WithLabelValues(reason).Inc()
	}
}
