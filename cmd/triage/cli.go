package main

import (
	"context"
	"io"
	"log/slog"
)

// Dependencies holds the context and writers for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong. Serve is the
// default command, so a bare "triage" launches the server.
type CLI struct {
	Serve ServeCmd `cmd:"" default:"withargs" help:"Start the guide server"`
}

// ServeCmd is the "serve" command. Flags override config-file values,
// which override the built-in defaults.
type ServeCmd struct {
	Addr   string `help:"Listen address (default :8000)" env:"TRIAGE_ADDR"`
	Guide  string `help:"Path to the guide text file (default steps.txt)" env:"TRIAGE_GUIDE"`
	Title  string `help:"Page title" env:"TRIAGE_TITLE"`
	Config string `help:"Path to a YAML config file" env:"TRIAGE_CONFIG"`
}
