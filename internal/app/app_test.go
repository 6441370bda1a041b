package app

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/GoArmGo/fyyur/internal/messaging/payloads"
)

type fakeConsumer struct {
	events  []payloads.ListingEvent
	handled chan error
}

func (c *fakeConsumer) StartConsumingListingEvents(ctx context.Context, handler func(context.Context, payloads.ListingEvent) error) error {
	go func() {
		for _, e := range c.events {
			c.handled <- handler(ctx, e)
		}
	}()
	return nil
}

func TestNotifyListing(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	notify := notifyListing(logger)

	err := notify(context.Background(), payloads.ListingEvent{
		ID: "e1", Kind: payloads.KindVenue, EntityID: 3, Name: "The Musical Hop",
		OccurredAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if !strings.Contains(buf.String(), `msg="new venue listed: The Musical Hop"`) || !strings.Contains(buf.String(), "entity_id=3") {
		t.Errorf("unexpected log line: %s", buf.String())
	}

	buf.Reset()
	if err := notify(context.Background(), payloads.ListingEvent{ID: "e2", Kind: "photo"}); err != nil {
		t.Errorf("unknown kind should be acked, got %v", err)
	}
	if !strings.Contains(buf.String(), "unknown kind") {
		t.Errorf("unknown kind should be logged: %s", buf.String())
	}
}

func TestRunWorker(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	if err := runWorker(context.Background(), nil, logger); !errors.Is(err, errNoConsumer) {
		t.Fatalf("nil consumer error = %v", err)
	}

	consumer := &fakeConsumer{
		events:  []payloads.ListingEvent{{ID: "e1", Kind: payloads.KindShow, Name: "artist 1 at venue 2"}},
		handled: make(chan error, 1),
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runWorker(ctx, consumer, logger) }()

	select {
	case err := <-consumer.handled:
		if err != nil {
			t.Errorf("handler error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("event was not handled")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("runWorker() = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestShutdownClosesInReverseOrder(t *testing.T) {
	var order []string
	closer := func(name string, err error) Resource {
		return Resource{Name: name, Close: func() error {
			order = append(order, name)
			return err
		}}
	}

	a := NewApp(nil, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil, nil,
		closer("log", nil),
		closer("postgres", errors.New("boom")),
		closer("rabbitmq", nil),
	)

	err := a.Shutdown()
	if err == nil || !strings.Contains(err.Error(), "close postgres: boom") {
		t.Errorf("Shutdown() = %v", err)
	}
	if strings.Join(order, ",") != "rabbitmq,postgres,log" {
		t.Errorf("close order = %v", order)
	}
	if err := a.Shutdown(); err != nil {
		t.Errorf("second Shutdown() = %v", err)
	}
}

func TestRunUnknownMode(t *testing.T) {
	a := NewApp(nil, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), nil, nil)
	if err := a.Run(context.Background(), "batch"); err == nil {
		t.Error("unknown mode should fail")
	}
}
