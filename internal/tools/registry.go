// Package tools defines the named operations exposed to agent hosts and
// dispatches calls to them.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"goldquote-service/internal/domain"
	"goldquote-service/internal/infrastructure/logx"
	"goldquote-service/internal/infrastructure/metrics"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
)

var (
	ErrUnknownTool      = errors.New("unknown tool")
	ErrInvalidArguments = errors.New("invalid arguments")
)

// GoldService is the part of application.GoldService the tools call.
type GoldService interface {
	GetQuote(ctx context.Context) (domain.Quote, error)
	CalculateValue(ctx context.Context, grams float64, rateType domain.RateType) (domain.Valuation, error)
}

// Tool wraps an MCP tool definition with its implementation. Execute returns
// the success payload; any error is rendered as an error payload.
type Tool struct {
	mcp.Tool
	Execute func(ctx context.Context, args map[string]any) (any, error)
}

// Response is the rendered outcome of a call.
type Response struct {
	Text    string
	IsError bool
}

type Registry struct {
	byName map[string]*Tool
	log    *zap.Logger
}

// NewRegistry registers the gold quote tools backed by svc.
func NewRegistry(svc GoldService, log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Registry{byName: make(map[string]*Tool), log: log}
	for _, t := range goldTools(svc) {
		if err := r.Register(t); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds t. Names must be unique.
func (r *Registry) Register(t *Tool) error {
	if t == nil || t.Name == "" || t.Execute == nil {
		return errors.New("tools: tool needs a name and an Execute func")
	}
	if _, dup := r.byName[t.Name]; dup {
		return fmt.Errorf("tools: duplicate tool %q", t.Name)
	}
	r.byName[t.Name] = t
	return nil
}

// Tools lists registered tools sorted by name.
func (r *Registry) Tools() []*Tool {
	out := make([]*Tool, 0, len(r.byName))
	for _, t := range r.byName {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (r *Registry) Lookup(name string) (*Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Call runs the named tool with JSON-encoded arguments. The only error it
// returns is ErrUnknownTool; every other failure, panics included, becomes an
// error Response.
func (r *Registry) Call(ctx context.Context, name string, rawArgs json.RawMessage) (resp Response, err error) {
	t, ok := r.byName[name]
	if !ok {
		metrics.ToolCallsTotal.WithLabelValues("unknown", "rejected").Inc()
		return Response{}, fmt.Errorf("%w %q", ErrUnknownTool, name)
	}
	ctx = logx.WithTool(ctx, name)
	log := logx.From(ctx, r.log)

	defer func() {
		if rec := recover(); rec != nil {
			log.Error("tool.panic", zap.Any("panic", rec))
			metrics.ToolCallsTotal.WithLabelValues(name, "panic").Inc()
			resp, err = Response{Text: fmt.Sprintf("Error: %v", rec), IsError: true}, nil
		}
	}()

	args, err := decodeArgs(rawArgs)
	if err != nil {
		return r.fail(log, name, err), nil
	}
	out, err := t.Execute(ctx, args)
	if err != nil {
		return r.fail(log, name, err), nil
	}
	text, err := Render(out)
	if err != nil {
		return r.fail(log, name, fmt.Errorf("render result: %w", err)), nil
	}
	metrics.ToolCallsTotal.WithLabelValues(name, "ok").Inc()
	return Response{Text: text}, nil
}

func (r *Registry) fail(log *zap.Logger, name string, err error) Response {
	log.Warn("tool.failed", zap.Error(err))
	metrics.ToolCallsTotal.WithLabelValues(name, "error").Inc()
	text, rerr := Render(ErrorResult{Error: err.Error()})
	if rerr != nil {
		text = "Error: " + err.Error()
	}
	return Response{Text: text, IsError: true}
}

func decodeArgs(raw json.RawMessage) (map[string]any, error) {
	args := map[string]any{}
	if len(raw) == 0 || string(raw) == "null" {
		return args, nil
	}
	if err := json.Unmarshal(raw, &args); err != nil {
		return nil, fmt.Errorf("%w: arguments must be a JSON object", ErrInvalidArguments)
	}
	if args == nil {
		args = map[string]any{}
	}
	return args, nil
}
