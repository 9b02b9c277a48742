package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/cmdform"
	"github.com/aretw0/cmdform/internal/dto"
	"github.com/aretw0/cmdform/pkg/domain"
	"github.com/aretw0/cmdform/pkg/ports"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// TreeURI is the resource URI of the command tree.
const TreeURI = "cmdform://tree"

// Server wraps a FormEngine and exposes it as an MCP Server.
type Server struct {
	engine    ports.FormEngine
	mcpServer *server.MCPServer
	logger    *slog.Logger
}

// NewServer creates a new MCP Server instance.
func NewServer(engine ports.FormEngine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		engine:    engine,
		logger:    logger,
		mcpServer: server.NewMCPServer("cmdform-mcp", strings.TrimSpace(cmdform.Version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and stops when ctx
// is cancelled.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(fmt.Sprintf("http://localhost:%d", port)))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// MCPServer returns the underlying server, e.g. to mount other transports.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	// TOOL: describe_command
	describeTool := mcp.NewTool("describe_command",
		mcp.WithDescription("Describe a command as a form: help text (HTML) and input fields for every level of the path."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Slash separated command path, starting with the root command (e.g. 'cli/db/migrate')")),
	)
	s.mcpServer.AddTool(describeTool, s.handleDescribe)

	// TOOL: list_commands
	listTool := mcp.NewTool("list_commands",
		mcp.WithDescription("List the sub-commands available under a command path."),
		mcp.WithString("path", mcp.Description("Slash separated command path (defaults to the root command)")),
	)
	s.mcpServer.AddTool(listTool, s.handleList)
}

func (s *Server) handleDescribe(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	form, err := s.engine.Form(ctx, path, domain.WebRenderOptions())
	if err != nil {
		return s.toolError("describe", path, err)
	}

	jsonBytes, err := json.Marshal(dto.NewFormResponse(form))
	if err != nil {
		return nil, fmt.Errorf("failed to encode form: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := request.GetString("path", "")
	if path == "" {
		path = s.engine.Root().Name
	}

	chain, err := s.engine.Resolve(ctx, path)
	if err != nil {
		return s.toolError("list", path, err)
	}

	jsonBytes, err := json.Marshal(chain.Leaf().Command.ListCommands())
	if err != nil {
		return nil, fmt.Errorf("failed to encode commands: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// toolError reports unknown paths to the model; other failures are protocol
// errors.
func (s *Server) toolError(op, path string, err error) (*mcp.CallToolResult, error) {
	if errors.Is(err, domain.ErrCommandNotFound) {
		s.logger.Debug("MCP: command not found", "op", op, "path", path)
		return mcp.NewToolResultError(err.Error()), nil
	}
	s.logger.Error("MCP: tool failed", "op", op, "path", path, "error", err)
	return nil, fmt.Errorf("%s failed: %w", op, err)
}

func (s *Server) registerResources() {
	// EXPOSE: cmdform://tree
	s.mcpServer.AddResource(mcp.NewResource(TreeURI, "Command Tree",
		mcp.WithResourceDescription("The full command tree served by cmdform"),
		mcp.WithMIMEType("application/json"),
	), s.handleTree)
}

func (s *Server) handleTree(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	jsonBytes, err := json.Marshal(s.engine.Root())
	if err != nil {
		return nil, fmt.Errorf("failed to encode tree: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      TreeURI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
