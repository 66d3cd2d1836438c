package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/postkeeper/internal/models"
)

func (c *Cli) runCreate(ctx context.Context, draft models.PostDraft) error {
	// Недостающие поля спрашиваем только в интерактивном режиме
	if c.io.IsInteractive() {
		if err := c.promptDraft(&draft); err != nil {
			return err
		}
	}

	result, err := c.dataService.CreatePost(ctx, draft)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	c.printResult(result, "Post created successfully")
	return nil
}

func (c *Cli) promptDraft(draft *models.PostDraft) error {
	var err error
	if draft.Title == "" {
		if draft.Title, err = c.io.ReadInput("Title: "); err != nil {
			return fmt.Errorf("failed to read title: %w", err)
		}
	}
	if draft.Body == "" {
		if draft.Body, err = c.io.ReadInput("Body: "); err != nil {
			return fmt.Errorf("failed to read body: %w", err)
		}
	}
	if draft.UserID == 0 {
		raw, err := c.io.ReadInput("User ID: ")
		if err != nil {
			return fmt.Errorf("failed to read user ID: %w", err)
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid user ID %q", raw)
		}
		draft.UserID = id
	}
	return nil
}
