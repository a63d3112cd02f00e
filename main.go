package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/lazharichir/blackjack/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" env:"BLACKJACK_CONFIG" default:"blackjack.hcl" help:"HCL settings file (optional)"`
	LogLevel string           `env:"BLACKJACK_LOG_LEVEL" help:"Override the configured log level"`

	Play     PlayCmd     `cmd:"" default:"1" help:"Play at the table"`
	Simulate SimulateCmd `cmd:"" help:"Run basic-strategy sessions and report the results"`
	Profiles ProfilesCmd `cmd:"" help:"List the table profiles"`
}

// Globals is what every subcommand receives
type Globals struct {
	Config *config.Config
	Logger *log.Logger
}

func main() {
	// a missing .env is fine
	_ = godotenv.Load()

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjack"),
		kong.Description("Single-player blackjack against a house dealer"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	cfg, err := config.Load(cli.Config)
	ctx.FatalIfErrorf(err)
	if cli.LogLevel != "" {
		cfg.LogLevel = cli.LogLevel
		ctx.FatalIfErrorf(cfg.Validate())
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           cfg.Level(),
		Prefix:          "blackjack",
	})

	err = ctx.Run(&Globals{Config: cfg, Logger: logger})
	ctx.FatalIfErrorf(err)
}
