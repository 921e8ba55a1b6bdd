package integration

import (
	"context"
	"io"
	"testing"
	"time"

	"pcrgen/internal/cli"
)

func TestCtrlC_MidRun_Exit130(t *testing.T) {
	argv := []string{
		"generate", "-n", "4", "--seed", "1",
		"--max-iterations", "100000000",
	}

	ctx, cancel := context.WithCancel(context.Background())
	// Cancel shortly after start.
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	code := cli.Run(ctx, argv, io.Discard, io.Discard)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d", code)
	}
}
