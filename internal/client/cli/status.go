package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/linkkeeper/internal/client/storage"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if err == storage.ErrSessionNotFound {
			c.io.Println("Status: Not authenticated")
			c.io.Println()
			c.io.Println("Run 'linkkeeper login' to authenticate.")
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", session.Username)
	c.io.Printf("Session saved: %s\n", session.SavedAt.Format(time.RFC3339))
	c.io.Println()
	c.io.Println("Note: the token may have expired on the server. A 401 response means login is required again.")

	return nil
}
