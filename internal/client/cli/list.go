package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/postkeeper/internal/client/data"
)

type listOptions struct {
	Search  string
	Page    int
	All     bool
	Refresh bool
}

func (c *Cli) runList(ctx context.Context, opts listOptions) error {
	if opts.Refresh {
		if !c.monitor.Online() {
			return fmt.Errorf("cannot refresh: %w", data.ErrOffline)
		}
		if err := c.dataService.Refresh(ctx); err != nil {
			return err
		}
	}

	posts, err := c.dataService.Posts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list posts: %w", err)
	}

	pending, err := c.pendingTargets(ctx)
	if err != nil {
		c.logger.Warn("Failed to read offline queue", "error", err)
	}

	c.io.Println("=== Posts ===")
	if !c.monitor.Online() {
		c.io.Println("(offline: showing cached posts)")
	}
	c.io.Println()

	posts = data.Search(posts, opts.Search)
	if len(posts) == 0 {
		if opts.Search != "" {
			c.io.Printf("No posts match %q.\n", opts.Search)
		} else {
			c.io.Println("No posts found.")
		}
		return nil
	}

	page := data.Page{Posts: posts, Page: 1, TotalPages: 1, Total: len(posts)}
	if !opts.All {
		page = data.Paginate(posts, opts.Page, data.PostsPerPage)
	}

	for _, p := range page.Posts {
		mark := ""
		if pending[p.ID] {
			mark = " (pending sync)"
		}
		c.io.Printf("[%d] %s%s\n", p.ID, p.Title, mark)
		c.io.Printf("     by %s, %s\n", authorName(p), p.CreatedAt.Local().Format(timeLayout))
	}

	c.io.Println()
	c.io.Printf("Page %d of %d (%d posts)\n", page.Page, page.TotalPages, page.Total)
	return nil
}

// pendingTargets возвращает id постов, для которых в очереди есть изменения
func (c *Cli) pendingTargets(ctx context.Context) (map[int64]bool, error) {
	records, err := c.queue.List(ctx)
	if err != nil {
		return nil, err
	}

	targets := make(map[int64]bool, len(records))
	for _, r := range records {
		if id, ok := r.Mutation.TargetID(); ok {
			targets[id] = true
		}
	}
	return targets, nil
}
