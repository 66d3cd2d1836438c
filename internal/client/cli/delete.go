package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/postkeeper/internal/client/data"
	"github.com/iudanet/postkeeper/internal/models"
)

// runDelete удаляет пост в два шага: предложение и подтверждение
func (c *Cli) runDelete(ctx context.Context, id int64, yes bool) error {
	proposal, err := c.dataService.Propose(ctx, models.DeletePost{ID: id})
	if err != nil {
		return err
	}

	if !yes {
		if !c.io.IsInteractive() {
			c.discardProposal(proposal)
			return fmt.Errorf("refusing to delete post %d without confirmation: pass --yes", id)
		}

		c.io.Println("About to delete:")
		if proposal.Target != nil {
			c.io.Printf("  [%d] %s\n", proposal.Target.ID, proposal.Target.Title)
			c.io.Printf("  by %s\n", authorName(proposal.Target))
		} else {
			c.io.Printf("  post %d (not in local cache)\n", id)
		}
		c.io.Println()

		ok, err := c.io.Confirm("Are you sure you want to delete this post?")
		if err != nil {
			c.discardProposal(proposal)
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			if err := c.dataService.Cancel(proposal); err != nil {
				return err
			}
			c.io.Println("Deletion cancelled.")
			return nil
		}
	}

	result, err := c.dataService.Confirm(ctx, proposal)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	c.printResult(result, "Post deleted successfully")
	return nil
}

// discardProposal отменяет предложение, когда команда уже завершается с ошибкой
func (c *Cli) discardProposal(p *data.Proposal) {
	if err := c.dataService.Cancel(p); err != nil {
		c.logger.Debug("Failed to cancel delete proposal", "proposal_id", p.ID, "error", err)
	}
}
