package cli

import (
	"context"
	"fmt"
)

func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "collections":
		return c.runCollections(ctx, args)
	case "create-collection":
		return c.runCreateCollection(ctx, args)
	case "items":
		return c.runItems(ctx, args)
	case "add-item":
		return c.runAddItem(ctx, args)
	default:
		PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}
