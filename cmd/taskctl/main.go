// Command taskctl lists and edits tasks through the tasks API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/adanyl0v/go-task-manager/internal/cli"
	"github.com/adanyl0v/go-task-manager/internal/client"
	"github.com/adanyl0v/go-task-manager/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.ReadClientEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to read env: %v\n", err)
		os.Exit(cli.ExitUsage)
	}

	api := client.New(cfg.BaseURL, cfg.Timeout)
	code := cli.NewRunner(api, os.Stdout, os.Stderr).Run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
