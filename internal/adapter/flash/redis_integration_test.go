//go:build integration

package flash

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/GoArmGo/fyyur/internal/core/ports"
	"github.com/GoArmGo/fyyur/internal/testinfra"
)

func TestRedisStorePushPop(t *testing.T) {
	url := testinfra.StartRedis(t)
	ctx := context.Background()

	rdb, err := NewRedisClient(ctx, url)
	if err != nil {
		t.Fatalf("NewRedisClient: %v", err)
	}
	defer rdb.Close()

	s := NewRedisStore(rdb, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	if err := s.Push(ctx, "sess", ports.Flash{Category: "info", Message: "Venue X was successfully listed!"}); err != nil {
		t.Fatalf("Push: %v", err)
	}
	if err := s.Push(ctx, "sess", ports.Flash{Category: "error", Message: "second"}); err != nil {
		t.Fatalf("Push: %v", err)
	}

	ttl, err := rdb.TTL(ctx, keyPrefix+"sess").Result()
	if err != nil || ttl <= 0 {
		t.Errorf("expected a TTL on the flash list, got %v (%v)", ttl, err)
	}

	got, err := s.Pop(ctx, "sess")
	if err != nil {
		t.Fatalf("Pop: %v", err)
	}
	if len(got) != 2 || got[0].Message != "Venue X was successfully listed!" || got[1].Category != "error" {
		t.Errorf("Pop = %+v", got)
	}

	got, err = s.Pop(ctx, "sess")
	if err != nil || len(got) != 0 {
		t.Errorf("second Pop = %+v, %v", got, err)
	}
}
