package main

import (
	"fmt"
	"os"

	"goldquote-service/internal/bootstrap"

	"github.com/joho/godotenv"
)

func init() { _ = godotenv.Load() }

func main() {
	app, err := bootstrap.Build(bootstrap.ProvideConfig(), bootstrap.ProvideLogger())
	if err != nil {
		fmt.Fprintln(os.Stderr, "bootstrap:", err)
		os.Exit(1)
	}
	if err := newRootCmd(app.Registry).Execute(); err != nil {
		os.Exit(1)
	}
}
