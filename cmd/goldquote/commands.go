package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"goldquote-service/internal/domain"
	"goldquote-service/internal/tools"

	"github.com/spf13/cobra"
)

var errToolFailed = errors.New("tool returned an error")

// caller is the slice of tools.Registry the commands need.
type caller interface {
	Call(ctx context.Context, name string, rawArgs json.RawMessage) (tools.Response, error)
	Tools() []*tools.Tool
}

func newRootCmd(reg caller) *cobra.Command {
	root := &cobra.Command{
		Use:           "goldquote",
		Short:         "Bank of Taiwan gold passbook quotes",
		SilenceUsage:  true,
	}
	root.AddCommand(newQuoteCmd(reg), newValueCmd(reg), newToolsCmd(reg))
	return root
}

func newQuoteCmd(reg caller) *cobra.Command {
	return &cobra.Command{
		Use:   "quote",
		Short: "Print the current gold passbook quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return callAndPrint(cmd, reg, tools.GetGoldPassbook, nil)
		},
	}
}

func newValueCmd(reg caller) *cobra.Command {
	var (
		grams    float64
		rateType string
	)
	cmd := &cobra.Command{
		Use:   "value",
		Short: "Value a weight of gold in TWD",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args, err := json.Marshal(map[string]any{"grams": grams, "rate_type": rateType})
			if err != nil {
				return err
			}
			return callAndPrint(cmd, reg, tools.CalculateGoldValue, args)
		},
	}
	cmd.Flags().Float64Var(&grams, "grams", 0, "weight of gold in grams")
	cmd.Flags().StringVar(&rateType, "rate-type", string(domain.DefaultRateType), "buying or selling")
	_ = cmd.MarkFlagRequired("grams")
	return cmd
}

func newToolsCmd(reg caller) *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the available tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, t := range reg.Tools() {
				fmt.Fprintf(w, "%s\t%s\n", t.Name, t.Description)
			}
			return nil
		},
	}
}

func callAndPrint(cmd *cobra.Command, reg caller, name string, args json.RawMessage) error {
	resp, err := reg.Call(cmd.Context(), name, args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if resp.IsError {
		out = cmd.ErrOrStderr()
	}
	if _, err := io.WriteString(out, strings.TrimRight(resp.Text, "\n")+"\n"); err != nil {
		return err
	}
	if resp.IsError {
		return errToolFailed
	}
	return nil
}
