package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runQueue(ctx context.Context) error {
	records, err := c.queue.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to read offline queue: %w", err)
	}

	c.io.Println("=== Offline queue ===")
	c.io.Println()

	if len(records) == 0 {
		c.io.Println("Queue is empty.")
		return nil
	}

	for _, r := range records {
		c.io.Printf("#%d  %-6s  %s\n", r.ID, r.Mutation.Kind(), r.Mutation.Describe())
	}
	c.io.Println()
	c.io.Printf("%d change(s) will be sent in this order.\n", len(records))
	return nil
}
