// Package cli реализует команды консольного клиента linkkeeper.
package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/linkkeeper/internal/client/api"
	"github.com/iudanet/linkkeeper/internal/client/iocli"
	"github.com/iudanet/linkkeeper/internal/client/storage"
)

type Cli struct {
	io        iocli.IO
	apiClient *api.Client
	sessions  storage.SessionStorage
}

func New(io iocli.IO, apiClient *api.Client, sessions storage.SessionStorage) *Cli {
	return &Cli{
		io:        io,
		apiClient: apiClient,
		sessions:  sessions,
	}
}

// requireSession загружает сохраненную сессию и устанавливает токен в API клиент
func (c *Cli) requireSession(ctx context.Context) (*storage.Session, error) {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if err == storage.ErrSessionNotFound {
			return nil, fmt.Errorf("not authenticated. Please run 'linkkeeper login' first")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	c.apiClient.SetToken(session.AccessToken)
	return session, nil
}

func PrintUsage() {
	fmt.Println("LinkKeeper Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  linkkeeper [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version      Show version information")
	fmt.Println("  --server URL   Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH      Path to local database (default: linkkeeper-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                      Register new user")
	fmt.Println("  login                         Login to server")
	fmt.Println("  logout                        Remove saved session")
	fmt.Println("  status                        Show authentication status")
	fmt.Println("  collections [asc|desc]        List collections")
	fmt.Println("  create-collection <title>     Create new collection")
	fmt.Println("  items <collection-id>         List items in collection")
	fmt.Println("  add-item <collection-id>      Add item to collection")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  linkkeeper register")
	fmt.Println("  linkkeeper login")
	fmt.Println("  linkkeeper collections desc")
	fmt.Println("  linkkeeper create-collection 'Go Articles'")
	fmt.Println("  linkkeeper items b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  linkkeeper add-item b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5")
	fmt.Println("  linkkeeper --server https://example.com login")
}
