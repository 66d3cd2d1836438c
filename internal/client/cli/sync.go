package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/postkeeper/internal/client/data"
)

func (c *Cli) runSync(ctx context.Context) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	if c.prober == nil {
		return fmt.Errorf("offline mode is forced, unset --offline to sync")
	}
	if !c.prober.Probe(ctx) {
		return fmt.Errorf("cannot sync: %w", data.ErrOffline)
	}

	result, err := c.processor.Drain(ctx)
	if err != nil {
		return fmt.Errorf("synchronization failed: %w", err)
	}

	if result.Skipped {
		c.io.Println("Another synchronization is already running.")
		return nil
	}
	if result.Total == 0 {
		c.io.Println("Nothing to sync: offline queue is empty.")
		return nil
	}

	c.io.Printf("Sent:      %d\n", result.Succeeded)
	if result.Dropped > 0 {
		c.io.Printf("Discarded: %d (rejected by server)\n", result.Dropped)
	}
	if result.Failed > 0 {
		c.io.Printf("Failed:    %d (kept in queue)\n", result.Failed)
		return fmt.Errorf("%d change(s) could not be sent", result.Failed)
	}

	c.io.Println()
	c.io.Println("All offline changes are synchronized.")
	return nil
}
