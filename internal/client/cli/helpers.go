package cli

import (
	"time"

	"github.com/iudanet/postkeeper/internal/client/data"
	"github.com/iudanet/postkeeper/internal/models"
)

const timeLayout = "2006-01-02 15:04"

func (c *Cli) printPost(p *models.Post) {
	c.io.Printf("ID:      %d\n", p.ID)
	c.io.Printf("Title:   %s\n", p.Title)
	c.io.Printf("Author:  %s\n", authorName(p))
	c.io.Printf("Created: %s\n", p.CreatedAt.Local().Format(timeLayout))
	if !p.UpdatedAt.Equal(p.CreatedAt) {
		c.io.Printf("Updated: %s\n", p.UpdatedAt.Local().Format(timeLayout))
	}
	c.io.Println()
	c.io.Println(p.Body)
}

// printResult сообщает, что произошло с изменением
func (c *Cli) printResult(result *data.Result, done string) {
	switch {
	case result.Skipped:
		c.io.Println("Nothing changed.")
	case result.Duplicate:
		c.io.Println("The same change is already waiting in the offline queue.")
	case result.Queued:
		c.io.Printf("Server unreachable: change saved to offline queue (record #%d).\n", result.RecordID)
		c.io.Println("Run 'postkeeper sync' when the server is back online.")
	default:
		c.io.Println(done)
		if result.Post != nil {
			c.io.Println()
			c.printPost(result.Post)
		}
	}
}

func authorName(p *models.Post) string {
	if p.User != nil && p.User.Name != "" {
		return p.User.Name
	}
	return "unknown"
}

func formatTimestamp(ts int64) string {
	if ts == 0 {
		return "never"
	}
	return time.Unix(ts, 0).Local().Format(timeLayout)
}
