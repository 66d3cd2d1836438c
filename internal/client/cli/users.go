package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runUsers(ctx context.Context) error {
	users, err := c.dataService.Users(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}

	c.io.Println("=== Users ===")
	c.io.Println()

	if len(users) == 0 {
		c.io.Println("No users found.")
		return nil
	}

	for _, u := range users {
		c.io.Printf("[%d] %s (@%s) <%s>\n", u.ID, u.Name, u.Username, u.Email)
	}
	return nil
}
