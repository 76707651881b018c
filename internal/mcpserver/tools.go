package mcpserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/joeycumines/termfolio/internal/shell"
)

// RunCommandInput is the input of the run_command tool.
type RunCommandInput struct {
	Command string `json:"command" jsonschema:"the command line to run, e.g. help, skills or cat resume.txt"`
}

// RunCommandResult is the output of the run_command tool.
type RunCommandResult struct {
	Output       string        `json:"output"`
	Kind         string        `json:"kind"`
	ErrorKind    string        `json:"error_kind,omitempty"`
	Context      string        `json:"context"`
	Effects      []string      `json:"effects,omitempty"`
	QuickActions []QuickAction `json:"quick_actions"`
}

// QuickAction is one suggested follow-up command.
type QuickAction struct {
	Command string `json:"command"`
	Label   string `json:"label"`
}

// EmptyInput is the input of tools that take no arguments.
type EmptyInput struct{}

// QuickActionsResult is the output of the quick_actions and reset_context
// tools.
type QuickActionsResult struct {
	Context string        `json:"context"`
	Actions []QuickAction `json:"actions"`
}

// HistoryResult is the output of the history tool.
type HistoryResult struct {
	Commands []string `json:"commands"`
}

func registerTools(s *Server) {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "run_command",
		Description: "Runs one command in the portfolio shell and returns its plain-text output",
	}, s.runCommand)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "quick_actions",
		Description: "Lists the suggested follow-up commands for the current context",
	}, s.quickActions)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "reset_context",
		Description: "Returns to the main context without running a command",
	}, s.resetContext)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "history",
		Description: "Lists the commands submitted in this connection, oldest first",
	}, s.history)
}

func (s *Server) runCommand(_ context.Context, req *mcp.CallToolRequest, in RunCommandInput) (*mcp.CallToolResult, RunCommandResult, error) {
	sh := s.shellFor(req.Session)
	out := sh.Submit(in.Command)

	res := RunCommandResult{
		Output:  strings.TrimRight(shell.PlainText(out.Entry.Output), "\n"),
		Kind:    out.Entry.Output.Kind.String(),
		Context: out.Context.String(),
	}
	if out.Entry.Output.IsError() {
		res.ErrorKind = out.Entry.Output.ErrorKind().String()
	}
	for _, e := range out.Entry.Output.Effects {
		name := e.Kind.String()
		if e.Value != "" {
			name += ":" + e.Value
		}
		res.Effects = append(res.Effects, name)
		if e.Kind == shell.EffectReboot {
			s.reboot(req.Session)
			sh = s.shellFor(req.Session)
			res.Context = sh.Context().String()
		}
	}
	res.QuickActions = toQuickActions(sh.QuickActions())

	text := res.Output
	if strings.TrimSpace(text) == "" {
		text = "(no output)"
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: out.Entry.Output.IsError(),
	}, res, nil
}

func (s *Server) quickActions(_ context.Context, req *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, QuickActionsResult, error) {
	sh := s.shellFor(req.Session)
	return nil, QuickActionsResult{
		Context: sh.Context().String(),
		Actions: toQuickActions(sh.QuickActions()),
	}, nil
}

func (s *Server) resetContext(_ context.Context, req *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, QuickActionsResult, error) {
	sh := s.shellFor(req.Session)
	sh.ResetContext()
	return nil, QuickActionsResult{
		Context: sh.Context().String(),
		Actions: toQuickActions(sh.QuickActions()),
	}, nil
}

func (s *Server) history(_ context.Context, req *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, HistoryResult, error) {
	commands := s.shellFor(req.Session).History()
	if commands == nil {
		commands = []string{}
	}
	return nil, HistoryResult{Commands: commands}, nil
}

func toQuickActions(actions []shell.QuickAction) []QuickAction {
	out := make([]QuickAction, 0, len(actions))
	for _, a := range actions {
		out = append(out, QuickAction{Command: a.Command, Label: a.Label})
	}
	return out
}
