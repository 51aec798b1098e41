/*
Package main implements an interactive Google autocomplete CLI.

Autosuggest fetches ranked autocomplete suggestions for typed keywords,
with right-to-left languages reshaped for correct terminal display. It can
also run as a msgpack IPC server over stdin/stdout for editor integration.

# Usage

Run the interactive prompt:

	autosuggest

Enable debug logging and a custom language table:

	autosuggest -d -langs /path/to/language_config.json

Run in IPC server mode:

	autosuggest -serve

# Configuration

Endpoint settings live in a TOML file that is created with defaults on
first run:

	[http]
	base_url = "http://suggestqueries.google.com/complete/search"
	client = "firefox"
	timeout_seconds = 10

	[cli]
	max_display = 0

The selectable languages live in a separate JSON table, also seeded on
first use with English and Hebrew entries:

	{"languages": {"1": {"code": "en", "name": "English", "rtl": false},
	               "2": {"code": "he", "name": "Hebrew", "rtl": true}}}

Editing the JSON file and re-entering the selection prompt (the "lang"
command) picks up new entries without a restart. A table that exists but
does not parse is a fatal error.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/orenagassy/google-autocomplete-scraper/internal/cli"
	"github.com/orenagassy/google-autocomplete-scraper/internal/logger"
	"github.com/orenagassy/google-autocomplete-scraper/internal/utils"
	"github.com/orenagassy/google-autocomplete-scraper/pkg/config"
	"github.com/orenagassy/google-autocomplete-scraper/pkg/language"
	"github.com/orenagassy/google-autocomplete-scraper/pkg/server"
	"github.com/orenagassy/google-autocomplete-scraper/pkg/suggest"
)

const (
	Version = "1.0.0"
	AppName = "autosuggest"
	gh      = "https://github.com/orenagassy/google-autocomplete-scraper"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting... Goodbye!\n")
		os.Exit(0)
	}()
}

// main wires config, fetcher and the chosen front end together.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "config.toml", "Path to the TOML settings file")
	langsPath := flag.String("langs", language.DefaultPath, "Path to the JSON language table")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	serveMode := flag.Bool("serve", false, "Run the msgpack IPC server instead of the interactive prompt")

	flag.Parse()

	if *showVersion {
		showVersionInfo()
		os.Exit(0)
	}

	logger.Setup(*debugMode)

	log.Debugf("Using config file: (%s)", utils.GetAbsolutePath(*configPath))
	cfg, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Endpoint: %s (client=%s, timeout=%ds)",
		cfg.HTTP.BaseURL, cfg.HTTP.Client, cfg.HTTP.TimeoutSeconds)

	fetcher := suggest.NewFetcher(cfg.HTTP)

	if *serveMode {
		srv := server.NewServer(fetcher, language.English().Code)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	showBanner()
	session := cli.NewSession(*langsPath, fetcher, cfg.CLI.MaxDisplay, os.Stdin, os.Stdout)
	if err := session.Start(); err != nil {
		log.Fatalf("%v", err)
	}
}

// showBanner prints the interactive mode greeting.
func showBanner() {
	title := lipgloss.NewStyle().Bold(true).Render("Google Autocomplete Suggestion Tool")
	fmt.Println(title)
	fmt.Println("========================================")
}

// showVersionInfo displays version details with the styled logger.
func showVersionInfo() {
	vlog := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	vlog.SetStyles(styles)

	vlog.Print("")
	vlog.Printf("[ %s ] Google autocomplete suggestions in your terminal", AppName)
	vlog.Print("", "version", Version)
	vlog.Print("use -h or --help to see available options")
	vlog.Print("Github Repo", "gh", gh)
}
