// Package mcpserver exposes the portfolio shell as Model Context Protocol
// tools. Every MCP connection gets its own independent shell session.
package mcpserver

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/joeycumines/termfolio/internal/shell"
)

// Server owns the MCP server and the shell session of each connection.
type Server struct {
	server     *mcp.Server
	newSession func() *shell.Session
	logger     *slog.Logger

	mu       sync.Mutex
	sessions map[*mcp.ServerSession]*shell.Session
}

// New creates a server. newSession is called once per MCP connection, and
// again when that connection's shell reboots.
func New(name, version string, newSession func() *shell.Session, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		server:     mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil),
		newSession: newSession,
		logger:     logger,
		sessions:   make(map[*mcp.ServerSession]*shell.Session),
	}
	registerTools(s)
	return s
}

// MCP returns the underlying server, for connecting custom transports.
func (s *Server) MCP() *mcp.Server { return s.server }

// Run serves on the transport until the client disconnects or ctx is done.
func (s *Server) Run(ctx context.Context, t mcp.Transport) error {
	if err := s.server.Run(ctx, t); err != nil {
		return fmt.Errorf("mcp server: %w", err)
	}
	return nil
}

// RunStdio serves over stdin/stdout.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.Run(ctx, &mcp.StdioTransport{})
}

// Sessions reports the number of connections holding a shell.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// shellFor returns the shell of a connection, creating it on first use. The
// shell is dropped when the connection ends.
func (s *Server) shellFor(ss *mcp.ServerSession) *shell.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sh, ok := s.sessions[ss]; ok {
		return sh
	}
	sh := s.newSession()
	s.sessions[ss] = sh
	s.logger.Debug("mcp shell created", "session", sh.ID())
	if ss != nil {
		go func() {
			_ = ss.Wait()
			s.mu.Lock()
			delete(s.sessions, ss)
			s.mu.Unlock()
			s.logger.Debug("mcp shell released", "session", sh.ID())
		}()
	}
	return sh
}

// reboot replaces the shell of a connection with a fresh one.
func (s *Server) reboot(ss *mcp.ServerSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[ss]; ok {
		s.sessions[ss] = s.newSession()
	}
}
