package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/linkkeeper/internal/validation"
	"github.com/iudanet/linkkeeper/pkg/api"
)

func (c *Cli) runCollections(ctx context.Context, args []string) error {
	sortOrder := ""
	if len(args) > 0 {
		switch args[0] {
		case "asc", "desc":
			sortOrder = args[0]
		default:
			return fmt.Errorf("unknown sort order: %s. Use: asc or desc", args[0])
		}
	}

	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	collections, err := c.apiClient.ListCollections(ctx, sortOrder)
	if err != nil {
		return err
	}

	c.io.Println("=== Collections ===")
	c.io.Println()

	if len(collections) == 0 {
		c.io.Println("No collections found.")
		c.io.Println()
		c.io.Println("Use 'linkkeeper create-collection <title>' to add your first collection.")
		return nil
	}

	c.io.Printf("Found %d collection(s):\n", len(collections))
	c.io.Println()

	for i, col := range collections {
		c.io.Printf("%d. %s\n", i+1, col.Title)
		c.io.Printf("   ID: %s\n", col.ID)
		c.io.Println()
	}

	return nil
}

func (c *Cli) runCreateCollection(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing title. Usage: linkkeeper create-collection <title>")
	}

	title := strings.Join(args, " ")
	if err := validation.ValidateTitle(title); err != nil {
		return fmt.Errorf("invalid title: %w", err)
	}

	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	col, err := c.apiClient.CreateCollection(ctx, api.CreateCollectionRequest{Title: title})
	if err != nil {
		return err
	}

	c.io.Println("✓ Collection created!")
	c.io.Printf("Title: %s\n", col.Title)
	c.io.Printf("ID:    %s\n", col.ID)

	return nil
}
