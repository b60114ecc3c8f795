package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/foomo/notion-jarkup/config"
	"github.com/foomo/notion-jarkup/mcp"
	"github.com/foomo/notion-jarkup/notion"
	"github.com/foomo/notion-jarkup/service/vo"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "notion-jarkup"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Convert Notion pages into jarkup components",
		Long: `notion-jarkup reads the block tree of a Notion page and converts it into
jarkup components, HTML or markdown. It runs as a one-shot CLI or as an
MCP server.

The Notion integration token is read from NOTION_TOKEN.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (YAML)")

	cmd.AddCommand(
		convertCmd(&configPath),
		previewCmd(&configPath),
		serveCmd(&configPath),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, mcp.Version)
			},
		},
	)

	return cmd
}

func convertCmd(configPath *string) *cobra.Command {
	var (
		format      string
		unsupported bool
		fixture     string
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "convert <block-id>",
		Short: "Convert the children of a page or block and print them",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFormat, err := vo.ParseFormat(format)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("unsupported") {
				cfg.Converter.EnableUnsupportedBlock = unsupported
			}

			source, err := blockSource(cfg, fixture)
			if err != nil {
				return err
			}
			a, err := newApp(cfg, source)
			if err != nil {
				return err
			}
			defer a.close()

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			doc, err := a.service.GetDocument(ctx, args[0], outputFormat)
			if err != nil {
				return err
			}
			return printDocument(cmd, doc)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(vo.FormatJSON), "Output format (json, html, markdown)")
	cmd.Flags().BoolVar(&unsupported, "unsupported", false, "Emit placeholders for unsupported blocks")
	cmd.Flags().StringVar(&fixture, "fixture", "", "Read blocks from a JSON fixture instead of the Notion API")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort the conversion after this duration")

	return cmd
}

func previewCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <url>",
		Short: "Print the bookmark preview of a web page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			// previews never talk to Notion
			a, err := newApp(cfg, notion.MapSource{})
			if err != nil {
				return err
			}
			defer a.close()

			preview, err := a.service.GetBookmarkPreview(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, preview)
		},
	}
}

func serveCmd(configPath *string) *cobra.Command {
	var (
		httpAddr  string
		stdioMode bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if httpAddr != "" {
				cfg.Server.Addr = httpAddr
			}

			source, err := blockSource(cfg, "")
			if err != nil {
				return err
			}
			a, err := newApp(cfg, source)
			if err != nil {
				return err
			}
			defer a.close()

			s := mcp.NewServer(a.service)
			if stdioMode {
				a.logger.Info("starting MCP server in stdio mode")
				return server.ServeStdio(s)
			}
			return serveHTTP(cmd.Context(), a, s)
		},
	}

	cmd.Flags().StringVar(&httpAddr, "http", "", "HTTP server address (e.g., ':8080')")
	cmd.Flags().BoolVar(&stdioMode, "stdio", false, "Run in stdio mode")

	return cmd
}

func serveHTTP(ctx context.Context, a *app, s *server.MCPServer) error {
	handler := mcp.NewMcpHTTPSSEServer(a.logger, s, a.service, a.registry, a.cfg.Server.Endpoint, nil)
	defer handler.GetSSEServer().Close()

	httpServer := &http.Server{
		Addr:              a.cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("starting MCP server", zap.String("addr", a.cfg.Server.Addr), zap.String("endpoint", a.cfg.Server.Endpoint))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info("shutting down MCP server")
	// SSE subscribers only leave once their streams are closed
	handler.GetSSEServer().Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func printDocument(cmd *cobra.Command, doc *vo.Document) error {
	switch doc.Format {
	case vo.FormatHTML:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), doc.HTML)
		return err
	case vo.FormatMarkdown:
		_, err := fmt.Fprintln(cmd.OutOrStdout(), doc.Markdown)
		return err
	default:
		return printJSON(cmd, doc.Components)
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
