package mcpserver

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/joeycumines/termfolio/internal/portfolio"
	"github.com/joeycumines/termfolio/internal/shell"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	catalog := portfolio.DefaultCatalog()
	return New("termfolio", "test", func() *shell.Session {
		return portfolio.NewSession(catalog)
	}, nil)
}

// connect opens a client connection to s over in-memory transports.
func connect(t *testing.T, s *Server) *mcp.ClientSession {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ss, err := s.MCP().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = cs.Close()
		_ = ss.Wait()
	})
	return cs
}

func call[T any](t *testing.T, cs *mcp.ClientSession, name string, args any) (*mcp.CallToolResult, T) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	res, err := cs.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)

	var out T
	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out))
	return res, out
}

func text(res *mcp.CallToolResult) string {
	for _, c := range res.Content {
		if tc, ok := c.(*mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestListTools(t *testing.T) {
	s := newTestServer(t)
	cs := connect(t, s)

	res, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)
	var names []string
	for _, tool := range res.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"run_command", "quick_actions", "reset_context", "history"}, names)
}

func TestRunCommand(t *testing.T) {
	s := newTestServer(t)
	cs := connect(t, s)

	res, out := call[RunCommandResult](t, cs, "run_command", map[string]any{"command": "skills"})
	assert.False(t, res.IsError)
	assert.Equal(t, "groups", out.Kind)
	assert.Equal(t, "skills", out.Context)
	assert.Empty(t, out.ErrorKind)
	assert.Contains(t, out.Output, "Frontend:")
	assert.Equal(t, out.Output, text(res))
	require.NotEmpty(t, out.QuickActions)
	assert.Equal(t, QuickAction{Command: shell.HomeCommand, Label: "⌂ Main"}, out.QuickActions[0])
}

func TestRunCommandErrors(t *testing.T) {
	s := newTestServer(t)
	cs := connect(t, s)

	res, out := call[RunCommandResult](t, cs, "run_command", map[string]any{"command": "frobnicate"})
	assert.True(t, res.IsError)
	assert.Equal(t, "error", out.Kind)
	assert.Equal(t, "unknown-command", out.ErrorKind)
	assert.Contains(t, out.Output, "frobnicate")

	res, out = call[RunCommandResult](t, cs, "run_command", map[string]any{"command": "cat nope.txt"})
	assert.True(t, res.IsError)
	assert.Equal(t, "not-found", out.ErrorKind)
	assert.Equal(t, "Error: File nope.txt not found.", out.Output)
}

func TestRunCommandEffects(t *testing.T) {
	s := newTestServer(t)
	cs := connect(t, s)

	_, out := call[RunCommandResult](t, cs, "run_command", map[string]any{"command": "theme hacker"})
	assert.Equal(t, []string{"set-theme:hacker"}, out.Effects)

	res, out := call[RunCommandResult](t, cs, "run_command", map[string]any{"command": "clear"})
	assert.Equal(t, []string{"clear"}, out.Effects)
	assert.Equal(t, "(no output)", text(res))

	_, out = call[RunCommandResult](t, cs, "run_command", map[string]any{"command": "skills"})
	assert.Equal(t, "skills", out.Context)
	_, out = call[RunCommandResult](t, cs, "run_command", map[string]any{"command": "reboot"})
	assert.Equal(t, []string{"reboot"}, out.Effects)
	assert.Equal(t, "main", out.Context)

	_, hist := call[HistoryResult](t, cs, "history", map[string]any{})
	assert.Empty(t, hist.Commands)
}

func TestQuickActionsAndReset(t *testing.T) {
	s := newTestServer(t)
	cs := connect(t, s)

	_, qa := call[QuickActionsResult](t, cs, "quick_actions", map[string]any{})
	assert.Equal(t, "main", qa.Context)
	assert.Equal(t, "whoami", qa.Actions[0].Command)

	call[RunCommandResult](t, cs, "run_command", map[string]any{"command": "help"})
	_, qa = call[QuickActionsResult](t, cs, "quick_actions", map[string]any{})
	assert.Equal(t, "help", qa.Context)
	assert.True(t, qa.Actions[0].Command == shell.HomeCommand)

	_, qa = call[QuickActionsResult](t, cs, "reset_context", map[string]any{})
	assert.Equal(t, "main", qa.Context)
	assert.Equal(t, "whoami", qa.Actions[0].Command)
}

func TestHistory(t *testing.T) {
	s := newTestServer(t)
	cs := connect(t, s)

	for _, cmd := range []string{"help", "", "whoami"} {
		call[RunCommandResult](t, cs, "run_command", map[string]any{"command": cmd})
	}
	_, hist := call[HistoryResult](t, cs, "history", map[string]any{})
	assert.Equal(t, []string{"help", "whoami"}, hist.Commands)
}

func TestConnectionsAreIndependent(t *testing.T) {
	s := newTestServer(t)
	a := connect(t, s)
	b := connect(t, s)

	call[RunCommandResult](t, a, "run_command", map[string]any{"command": "skills"})
	_, qa := call[QuickActionsResult](t, b, "quick_actions", map[string]any{})
	assert.Equal(t, "main", qa.Context)

	_, hist := call[HistoryResult](t, b, "history", map[string]any{})
	assert.Empty(t, hist.Commands)
	assert.Equal(t, 2, s.Sessions())
}

func TestSessionReleasedOnClose(t *testing.T) {
	s := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	ss, err := s.MCP().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	cs, err := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil).Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	call[RunCommandResult](t, cs, "run_command", map[string]any{"command": "help"})
	require.Equal(t, 1, s.Sessions())

	require.NoError(t, cs.Close())
	_ = ss.Wait()
	assert.Eventually(t, func() bool { return s.Sessions() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, serverTransport) }()

	cs, err := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil).Connect(context.Background(), clientTransport, nil)
	require.NoError(t, err)
	defer cs.Close()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
