// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/funkylog/internal/logging"
)

// Emission is one record the emitter writes on each tick.
type Emission struct {
	Module  string
	Level   zerolog.Level
	Message string
}

// EmitterService writes a fixed set of records through the process logger
// on every tick until its context is canceled. It keeps a demo process
// producing output for the console and the collector.
type EmitterService struct {
	interval  time.Duration
	emissions []Emission
}

// NewEmitterService returns an emitter writing emissions every interval.
// A non-positive interval defaults to one second.
func NewEmitterService(interval time.Duration, emissions []Emission) *EmitterService {
	if interval <= 0 {
		interval = time.Second
	}
	return &EmitterService{interval: interval, emissions: emissions}
}

// Serve implements suture.Service.
func (e *EmitterService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(e.interval)
	defer ticker.Stop()

	var tick int
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			tick++
			e.emit(tick)
		}
	}
}

func (e *EmitterService) emit(tick int) {
	for _, em := range e.emissions {
		log := logging.Module(em.Module)
		log.WithLevel(em.Level).Int("tick", tick).Msg(em.Message)
	}
}

// String implements fmt.Stringer.
func (e *EmitterService) String() string {
	return "emitter"
}
