package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roivaz/loco-mcp/internal/config"
	"github.com/roivaz/loco-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:   "loco-mcp",
		Short: "MCP server exposing the Loco translation API as tools",
		RunE:  run,
	}

	root.PersistentFlags().String("api-url", "", "Loco API base URL")
	root.PersistentFlags().String("auth-scheme", "", "Authorization header scheme")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("transport", "", "Transport: stdio or http")
	root.PersistentFlags().String("host", "", "HTTP host (http transport only)")
	root.PersistentFlags().Int("port", 0, "HTTP port (http transport only)")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := mcp.DefaultConfig()
	srv := mcp.New(cfg)
	logger := cfg.Logger.WithName("main")

	switch config.Transport() {
	case "stdio":
		logger.Info("serving MCP over stdio")
		return srv.ServeStdio()
	case "http":
		return serveHTTP(srv, cfg)
	default:
		return fmt.Errorf("unknown transport %q", config.Transport())
	}
}

func serveHTTP(srv *mcp.Server, cfg mcp.Config) error {
	addr := config.Host() + ":" + strconv.Itoa(config.Port())
	logger := cfg.Logger.WithName("http")

	httpServer := &http.Server{
		Addr:    addr,
		Handler: srv.Handler,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("MCP server listening", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(ctx)
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}
