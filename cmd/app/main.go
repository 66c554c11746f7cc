package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/sowilo/internal"
	"github.com/starford/sowilo/internal/auditservice"
	"github.com/starford/sowilo/internal/fetch"
	"github.com/starford/sowilo/internal/mcpserver"
	"github.com/starford/sowilo/internal/storage"
	pkgconfig "github.com/starford/sowilo/pkg/config"
)

func loadConfig(cmd *cli.Command) (*internal.Config, error) {
	configPath := cmd.String("config")

	cfg := internal.NewDefaultConfig()
	if _, err := os.Stat(configPath); err == nil {
		if err := pkgconfig.Load(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newService(cfg *internal.Config) (*auditservice.Service, error) {
	var store storage.Provider
	if cfg.Docs.Path != "" {
		fs, err := storage.NewFS(cfg.Docs.Path)
		if err != nil {
			return nil, fmt.Errorf("init storage: %w", err)
		}
		store = fs
	}

	fetcher := fetch.New(fetch.Options{
		Timeout:   cfg.Fetch.Timeout,
		CacheSize: cfg.Fetch.CacheSize,
		CacheTTL:  cfg.Fetch.CacheTTL,
		UserAgent: cfg.Fetch.UserAgent,
	})

	return auditservice.NewService(fetcher, store, auditservice.Options{
		Keyword:                cfg.Audit.Keyword,
		Audience:               cfg.Audit.Audience,
		PageType:               cfg.Audit.PageType,
		LongSentenceWords:      cfg.Audit.LongSentenceWords,
		LongParagraphSentences: cfg.Audit.LongParagraphSentences,
	}), nil
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := internal.Run(ctx, internal.WithConfig(cfg)); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}
	return nil
}

func runMCP(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	return mcpserver.New(svc).ServeStdio()
}

// runAudit performs a one-shot audit of a URL or a local markdown file
// and prints the result as JSON to stdout.
func runAudit(ctx context.Context, cmd *cli.Command) error {
	target := cmd.Args().First()
	if target == "" {
		return fmt.Errorf("usage: sowilo audit <url-or-file>")
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	svc, err := newService(cfg)
	if err != nil {
		return err
	}

	opts := auditservice.Options{
		Keyword:  cmd.String("keyword"),
		Audience: cmd.String("audience"),
		PageType: cmd.String("page-type"),
	}

	var result any
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		result, err = svc.AuditPage(ctx, target, opts)
	} else {
		var data []byte
		data, err = os.ReadFile(target)
		if err != nil {
			return fmt.Errorf("read %s: %w", target, err)
		}
		result, err = svc.AuditContent(ctx, string(data), opts)
	}
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	configFlag := &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "Path to config file",
		DefaultText: "config/config.yaml",
		Value:       "config/config.yaml",
		Sources:     cli.EnvVars("APP_CONFIG_FILE"),
	}

	cmd := &cli.Command{
		Name:  "sowilo",
		Usage: "Content quality and SEO audit toolkit: readability scoring, improvement instructions, and structured-data validation",
		Flags: []cli.Flag{configFlag},
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Start the HTTP API server",
				Action: runServe,
				Flags:  []cli.Flag{configFlag},
			},
			{
				Name:   "mcp",
				Usage:  "Start the MCP server on stdio",
				Action: runMCP,
				Flags:  []cli.Flag{configFlag},
			},
			{
				Name:   "audit",
				Usage:  "Audit a URL or a local markdown file and print the result as JSON",
				Action: runAudit,
				Flags: []cli.Flag{
					configFlag,
					&cli.StringFlag{Name: "keyword", Usage: "Target keyword"},
					&cli.StringFlag{Name: "audience", Usage: "Target audience: general, technical, or beginner"},
					&cli.StringFlag{Name: "page-type", Usage: "Page type: blog, product, or landing"},
				},
			},
		},
		Action: runServe,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
