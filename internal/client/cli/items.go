package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/linkkeeper/internal/validation"
	"github.com/iudanet/linkkeeper/pkg/api"
)

func (c *Cli) runItems(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing collection id. Usage: linkkeeper items <collection-id>")
	}
	collectionID := args[0]

	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	items, err := c.apiClient.ListItems(ctx, collectionID)
	if err != nil {
		return err
	}

	c.io.Println("=== Items ===")
	c.io.Println()

	if len(items) == 0 {
		c.io.Println("No items found.")
		c.io.Println()
		c.io.Println("Use 'linkkeeper add-item <collection-id>' to add your first bookmark.")
		return nil
	}

	c.io.Printf("Found %d item(s):\n", len(items))
	c.io.Println()

	for i, item := range items {
		c.io.Printf("%d. %s\n", i+1, item.Title)
		c.io.Printf("   ID:   %s\n", item.ID)
		if item.Link != "" {
			c.io.Printf("   Link: %s\n", item.Link)
		}
		if item.Notes != "" {
			c.io.Printf("   Notes: %s\n", item.Notes)
		}
		c.io.Println()
	}

	return nil
}

func (c *Cli) runAddItem(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing collection id. Usage: linkkeeper add-item <collection-id>")
	}
	collectionID := args[0]

	title, err := c.io.ReadInput("Title: ")
	if err != nil {
		return fmt.Errorf("failed to read title: %w", err)
	}
	if err := validation.ValidateTitle(title); err != nil {
		return fmt.Errorf("invalid title: %w", err)
	}

	link, err := c.io.ReadInput("Link (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read link: %w", err)
	}

	notes, err := c.io.ReadInput("Notes (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read notes: %w", err)
	}

	if _, err := c.requireSession(ctx); err != nil {
		return err
	}

	item, err := c.apiClient.CreateItem(ctx, collectionID, api.CreateItemRequest{
		Title: title,
		Link:  link,
		Notes: notes,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Item added!")
	c.io.Printf("Title: %s\n", item.Title)
	c.io.Printf("ID:    %s\n", item.ID)

	return nil
}
