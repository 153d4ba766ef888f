// Funkylog - Colorized console logging with collector event forwarding
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/funkylog

package forward

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultTopic is the topic events are published to.
const DefaultTopic = "funkylog.events"

// EventPayload is the JSON body of a published event.
type EventPayload struct {
	Name  string    `json:"name"`
	Text  string    `json:"text"`
	Tags  []string  `json:"tags"`
	Level string    `json:"level,omitempty"`
	Time  time.Time `json:"time"`
}

// DecodeEventPayload parses a message body produced by PublisherSink.
func DecodeEventPayload(data []byte) (EventPayload, error) {
	var p EventPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return EventPayload{}, fmt.Errorf("decode event payload: %w", err)
	}
	return p, nil
}

// PublisherSink publishes events as Watermill messages.
type PublisherSink struct {
	publisher message.Publisher
	topic     string
	now       func() time.Time

	mu     sync.RWMutex
	closed bool
}

// NewPublisherSink publishes to topic, prefixed with namespace when set.
func NewPublisherSink(pub message.Publisher, topic, namespace string) (*PublisherSink, error) {
	if pub == nil {
		return nil, ErrNilPublisher
	}
	return &PublisherSink{
		publisher: pub,
		topic:     Topic(namespace, topic),
		now:       time.Now,
	}, nil
}

// NewGoChannelSink builds an in-process sink on a Watermill GoChannel.
// Messages published with no subscriber are dropped.
func NewGoChannelSink(topic, namespace string, logger zerolog.Logger) *PublisherSink {
	pubsub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer: 256,
	}, newWatermillLogger(logger))
	sink, _ := NewPublisherSink(pubsub, topic, namespace)
	return sink
}

// Topic joins namespace and topic. An empty topic uses DefaultTopic.
func Topic(namespace, topic string) string {
	if topic == "" {
		topic = DefaultTopic
	}
	if namespace == "" {
		return topic
	}
	return namespace + "." + topic
}

// Topic returns the topic this sink publishes to.
func (s *PublisherSink) Topic() string {
	return s.topic
}

// Event publishes one message whose UUID is freshly generated.
func (s *PublisherSink) Event(ctx context.Context, name, text string, tags []string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}

	data, err := json.Marshal(EventPayload{
		Name:  name,
		Text:  text,
		Tags:  tags,
		Level: tagValue(tags, "level"),
		Time:  s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("encode event payload: %w", err)
	}

	msg := message.NewMessage(uuid.NewString(), data)
	msg.Metadata.Set("module", name)
	msg.SetContext(ctx)

	if err := s.publisher.Publish(s.topic, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", s.topic, err)
	}
	return nil
}

// CanSubscribe reports whether Subscribe is supported.
func (s *PublisherSink) CanSubscribe() bool {
	_, ok := s.publisher.(message.Subscriber)
	return ok
}

// Subscribe returns the message stream for this sink's topic when the
// underlying publisher can also subscribe (GoChannel can).
func (s *PublisherSink) Subscribe(ctx context.Context) (<-chan *message.Message, error) {
	sub, ok := s.publisher.(message.Subscriber)
	if !ok {
		return nil, fmt.Errorf("publisher %T cannot subscribe", s.publisher)
	}
	return sub.Subscribe(ctx, s.topic)
}

// Close shuts down the publisher. It is safe to call more than once.
func (s *PublisherSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.publisher.Close()
}
