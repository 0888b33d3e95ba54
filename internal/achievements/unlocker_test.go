package achievements

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	var got []string
	inner := UnlockerFunc(func(_ context.Context, id string) error {
		got = append(got, id)
		if id == "bad" {
			return errors.New("boom")
		}
		return nil
	})
	u := WithLogging(inner, logger)
	ctx := context.Background()

	if err := u.Unlock(ctx, "good"); err != nil {
		t.Fatalf("Unlock(good): %v", err)
	}
	if err := u.Unlock(ctx, "bad"); err == nil {
		t.Fatal("Unlock(bad) should return the inner error")
	}

	if len(got) != 2 {
		t.Errorf("inner calls = %v, want 2", got)
	}
	out := buf.String()
	if !strings.Contains(out, "achievement unlocked") || !strings.Contains(out, "achievement=good") {
		t.Errorf("missing success log in %q", out)
	}
	if !strings.Contains(out, "unlock achievement failed") || !strings.Contains(out, "achievement=bad") {
		t.Errorf("missing failure log in %q", out)
	}
}
