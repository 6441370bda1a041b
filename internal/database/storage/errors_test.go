package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"

	"github.com/GoArmGo/fyyur/internal/domain"
)

func TestLikePattern(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{"", "%%"},
		{"hall", "%hall%"},
		{"50%", `%50\%%`},
		{"a_b", `%a\_b%`},
		{`back\slash`, `%back\\slash%`},
	}
	for _, tt := range tests {
		if got := likePattern(tt.term); got != tt.want {
			t.Errorf("likePattern(%q) = %q, want %q", tt.term, got, tt.want)
		}
	}
}

func TestNotFound(t *testing.T) {
	if err := notFound(sql.ErrNoRows); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("notFound(sql.ErrNoRows) = %v, want ErrNotFound", err)
	}
	other := errors.New("boom")
	if err := notFound(other); err != other {
		t.Errorf("notFound(other) = %v, want passthrough", err)
	}
}

func TestPersistenceAndPQCode(t *testing.T) {
	pgErr := &pq.Error{Code: "23502", Message: "null value in column \"name\""}
	err := persistence("insert venue", fmt.Errorf("exec: %w", pgErr))

	if !domain.IsPersistence(err) {
		t.Fatalf("expected persistence error, got %T", err)
	}
	if code := pqCode(err); code != "23502" {
		t.Errorf("pqCode() = %q, want 23502", code)
	}
	if persistence("noop", nil) != nil {
		t.Error("persistence(nil) should be nil")
	}
}
