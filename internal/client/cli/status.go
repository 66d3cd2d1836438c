package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	switch {
	case c.prober == nil:
		c.io.Println("Connection: offline (forced)")
	case c.monitor.Online():
		c.io.Println("Connection: online")
	default:
		c.io.Println("Connection: offline (server unreachable)")
	}
	c.io.Printf("Server:     %s\n", c.serverURL)

	records, err := c.queue.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to read offline queue: %w", err)
	}

	lastSync, err := c.metadataStorage.GetLastSyncTimestamp(ctx)
	if err != nil {
		c.logger.Warn("Failed to get last sync timestamp", "error", err)
	}
	lastRefresh, err := c.metadataStorage.GetLastRefreshTimestamp(ctx)
	if err != nil {
		c.logger.Warn("Failed to get last refresh timestamp", "error", err)
	}

	c.io.Printf("Last sync:    %s\n", formatTimestamp(lastSync))
	c.io.Printf("Last refresh: %s\n", formatTimestamp(lastRefresh))
	c.io.Println()

	if len(records) > 0 {
		c.io.Printf("Pending sync: %d change(s) waiting in offline queue\n", len(records))
		c.io.Println("Run 'postkeeper sync' to send them.")
	} else {
		c.io.Println("All changes synchronized with server")
	}
	return nil
}
