// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package services

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/rs/zerolog"

	"github.com/tomtom215/funkylog/internal/forward"
)

// EventSource is a sink whose forwarded events can be read back.
//
// Satisfied by *forward.PublisherSink over a GoChannel publisher.
type EventSource interface {
	Subscribe(ctx context.Context) (<-chan *message.Message, error)
}

// EventTailService prints every forwarded event on the diagnostic logger.
// It never logs through the console formatter: a tailed record carrying a
// module would be forwarded again.
type EventTailService struct {
	source EventSource
	logger zerolog.Logger
}

// NewEventTailService returns a tail over source.
func NewEventTailService(source EventSource, logger zerolog.Logger) *EventTailService {
	return &EventTailService{
		source: source,
		logger: logger.With().Str("service", "event-tail").Logger(),
	}
}

// Serve implements suture.Service.
func (s *EventTailService) Serve(ctx context.Context) error {
	messages, err := s.source.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("subscribe to forwarded events: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return ctx.Err()
			}
			s.handle(msg)
		}
	}
}

func (s *EventTailService) handle(msg *message.Message) {
	defer msg.Ack()

	payload, err := forward.DecodeEventPayload(msg.Payload)
	if err != nil {
		s.logger.Warn().Err(err).Str("uuid", msg.UUID).Msg("undecodable event")
		return
	}
	s.logger.Info().
		Str("name", payload.Name).
		Str("level", payload.Level).
		Strs("tags", payload.Tags).
		Str("text", payload.Text).
		Msg("event forwarded")
}

// String implements fmt.Stringer.
func (s *EventTailService) String() string {
	return "event-tail"
}
