package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/site"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"site.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Output string `short:"o" help:"Output directory for the generated site (overrides config)"`
	} `cmd:"" help:"Build the static site from content, templates, and static assets"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`

	Discover struct{} `cmd:"" help:"List discovered documents and their slugs without building"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	switch ctx.Command() {
	case "build":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		assembler := site.New(cfg, CLI.Build.Output)
		if _, err := assembler.Build(context.Background()); err != nil {
			slog.Error("Build failed", "error", err)
			os.Exit(1)
		}

	case "init":
		if err := config.Init(CLI.Config, CLI.Init.Force); err != nil {
			slog.Error("Init failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Wrote configuration file", "path", CLI.Config)

	case "discover":
		cfg, err := config.Load(CLI.Config)
		if err != nil {
			slog.Error("Failed to load configuration", "error", err)
			os.Exit(1)
		}
		docs, err := site.Discover(context.Background(), cfg)
		if err != nil {
			slog.Error("Discovery failed", "error", err)
			os.Exit(1)
		}
		for _, d := range docs {
			fmt.Printf("%-8s %-40s %-30s %s\n", d.Kind, d.Source, d.Slug, d.URL)
		}

	default:
		slog.Error("Unknown command", "command", ctx.Command())
		os.Exit(1)
	}
}
