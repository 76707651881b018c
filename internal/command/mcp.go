package command

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/joeycumines/termfolio/internal/mcpserver"
)

// MCPCommand serves the shell as Model Context Protocol tools over stdio.
type MCPCommand struct {
	*BaseCommand
	env *Env
}

// NewMCPCommand creates a new mcp command.
func NewMCPCommand(env *Env) *MCPCommand {
	return &MCPCommand{
		BaseCommand: NewBaseCommand(
			"mcp",
			"Serve the portfolio shell to MCP clients over stdio",
			"mcp",
		),
		env: env,
	}
}

// Server builds the MCP server without starting it.
func (c *MCPCommand) Server() *mcpserver.Server {
	name := c.env.Settings.MCPName
	if name == "" {
		name = "termfolio"
	}
	return mcpserver.New(name, c.env.Version, c.env.NewSession, c.env.logger())
}

// Execute serves until the client disconnects or the process is interrupted.
func (c *MCPCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		_, _ = fmt.Fprintf(stderr, "unexpected arguments: %v\n", args)
		return fmt.Errorf("unexpected arguments")
	}
	c.env.logger().Info("serving mcp on stdio", "name", c.env.Settings.MCPName)
	err := c.Server().RunStdio(c.env.ctx())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
