package tools

import (
	"context"
	"fmt"

	"goldquote-service/internal/domain"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	GetGoldPassbook    = "get_gold_passbook_twd"
	CalculateGoldValue = "calculate_gold_value"
)

func goldTools(svc GoldService) []*Tool {
	return []*Tool{
		{
			Tool: mcp.Tool{
				Name:        GetGoldPassbook,
				Description: "Get current Gold Passbook buying and selling prices in TWD from Bank of Taiwan.",
				Annotations: &mcp.ToolAnnotations{Title: "Gold passbook quote", ReadOnlyHint: true},
				InputSchema: map[string]any{
					"type":       "object",
					"properties": map[string]any{},
				},
			},
			Execute: func(ctx context.Context, _ map[string]any) (any, error) {
				return svc.GetQuote(ctx)
			},
		},
		{
			Tool: mcp.Tool{
				Name:        CalculateGoldValue,
				Description: "Calculate the total value of gold in TWD based on weight (grams).",
				Annotations: &mcp.ToolAnnotations{Title: "Gold value", ReadOnlyHint: true},
				InputSchema: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"grams": map[string]any{
							"type":        "number",
							"description": "Weight of gold in grams.",
						},
						"rate_type": map[string]any{
							"type":        "string",
							"enum":        []string{string(domain.RateBuying), string(domain.RateSelling)},
							"description": "Rate type: 'buying' (Bank buys from you) or 'selling' (Bank sells to you). Default is 'buying'.",
							"default":     string(domain.DefaultRateType),
						},
					},
					"required": []string{"grams"},
				},
			},
			Execute: func(ctx context.Context, args map[string]any) (any, error) {
				grams, err := readNumber(args, "grams")
				if err != nil {
					return nil, err
				}
				raw, err := readOptionalString(args, "rate_type")
				if err != nil {
					return nil, err
				}
				if raw == "" {
					// camelCase alias accepted from hosts that rename arguments.
					if raw, err = readOptionalString(args, "rateType"); err != nil {
						return nil, err
					}
				}
				rt, err := domain.ParseRateType(raw)
				if err != nil {
					return nil, err
				}
				return svc.CalculateValue(ctx, grams, rt)
			},
		},
	}
}

func readNumber(args map[string]any, key string) (float64, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("%w: %s is required", ErrInvalidArguments, key)
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %s must be a number", ErrInvalidArguments, key)
	}
	return f, nil
}

func readOptionalString(args map[string]any, key string) (string, error) {
	v, ok := args[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s must be a string", ErrInvalidArguments, key)
	}
	return s, nil
}
