package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/postkeeper/internal/client/data"
)

func (c *Cli) runGet(ctx context.Context, id int64) error {
	post, err := c.dataService.Post(ctx, id)
	if err != nil {
		if errors.Is(err, data.ErrPostNotFound) {
			return fmt.Errorf("post %d not found", id)
		}
		return err
	}

	c.printPost(post)

	pending, err := c.queue.HasPendingAction(ctx, id)
	if err != nil {
		c.logger.Warn("Failed to read offline queue", "error", err)
	} else if pending {
		c.io.Println()
		c.io.Println("This post has offline changes waiting to be synced.")
	}
	return nil
}
