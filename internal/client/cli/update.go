package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/postkeeper/internal/models"
)

func (c *Cli) runUpdate(ctx context.Context, id int64, patch models.PostPatch) error {
	result, err := c.dataService.UpdatePost(ctx, id, patch)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	c.printResult(result, "Post updated successfully")
	return nil
}
