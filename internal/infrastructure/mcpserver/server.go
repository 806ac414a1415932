package mcpserver

import (
	"context"
	"errors"

	"goldquote-service/internal/tools"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

const (
	ServerName    = "mcp-tw-gold-price"
	ServerVersion = "1.0.0"
)

// New builds an MCP server exposing every tool in reg.
func New(reg *tools.Registry, log *zap.Logger) *mcp.Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: ServerVersion}, nil)
	for _, t := range reg.Tools() {
		def := t.Tool
		s.AddTool(&def, handler(reg, def.Name, log))
	}
	return s
}

func handler(reg *tools.Registry, name string, log *zap.Logger) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args []byte
		if req != nil && req.Params != nil {
			args = req.Params.Arguments
		}
		resp, err := reg.Call(ctx, name, args)
		if err != nil {
			log.Warn("mcp.call_rejected", zap.String("tool", name), zap.Error(err))
			return nil, err
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: resp.Text}},
			IsError: resp.IsError,
		}, nil
	}
}

// ServeStdio runs s over stdin/stdout until ctx is done or the peer hangs up.
func ServeStdio(ctx context.Context, s *mcp.Server, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("mcp_server_started", zap.String("name", ServerName), zap.String("transport", "stdio"))
	err := s.Run(ctx, &mcp.StdioTransport{})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	log.Info("mcp_server_stopped")
	return nil
}
