// Package main is the entry point for the planner TUI application.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hy4ri/planner-tui/internal/api"
	"github.com/hy4ri/planner-tui/internal/config"
	"github.com/hy4ri/planner-tui/internal/tui"
)

const version = "0.1.0"

const helpText = `planner-tui - Terminal calendar and kanban board for the planner API

USAGE:
    planner-tui [OPTIONS]

OPTIONS:
    -h, --help            Show this help message
    -v, --version         Show version information
    --init                Create a template config file
    --calendar            Start in the calendar view
    --kanban              Start in the kanban board
    --api URL             Use this API base URL for this run
    --save-token TOKEN    Store the session token in the system keyring
    --logout              Remove the stored session token

CONFIGURATION:
    Config file: ~/.config/planner-tui/config.yaml
    A .env file in the working directory is loaded on start.

    Environment:
        PLANNER_API_URL   API base URL (overrides the config file)
        PLANNER_TOKEN     Session token (overrides the stored one)
        PLANNER_DEBUG     Write a debug log to debug.log

KEYBINDINGS:
    Navigation:
        h/j/k/l     Move
        gg/G        Go to top/bottom
        Tab         Switch calendar/board
        c/1, b/2    Calendar / Board
        Enter       Open day / edit task
        Esc         Go back

    Calendar:
        [ ]         Previous/next month
        t           Today
        v           Compact/expanded view

    Task Actions:
        a           Add task (dated when a day is open)
        n           Add task to inbox
        e           Edit task
        x           Toggle done
        Space       Pick up / drop card on the board
        dd          Delete task
        yy          Copy link or title

    Other:
        r           Refresh
        ?           Show help
        q           Quit
`

const configTemplate = `# Planner TUI Configuration
# Location: ~/.config/planner-tui/config.yaml

api:
  # Planner API root; PLANNER_API_URL overrides it
  base_url: "http://localhost:5000"
  timeout: 30s

ui:
  # "calendar" or "kanban"
  start_view: calendar
  # "compact" or "expanded"
  calendar_default_view: compact
  # Reload tasks periodically, e.g. 5m (0 disables)
  refresh_interval: 0s
  # Desktop notification for tasks due today
  notifications: true
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		showHelp     bool
		showVersion  bool
		initConfig   bool
		viewCalendar bool
		viewKanban   bool
		logout       bool
		apiURL       string
		saveToken    string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.BoolVar(&viewCalendar, "calendar", false, "Start in calendar view")
	flag.BoolVar(&viewKanban, "kanban", false, "Start in kanban view")
	flag.BoolVar(&logout, "logout", false, "Remove the stored session token")
	flag.StringVar(&apiURL, "api", "", "API base URL")
	flag.StringVar(&saveToken, "save-token", "", "Store a session token")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("planner-tui version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate()
	}

	if logout {
		if err := config.ClearToken(); err != nil {
			return err
		}
		fmt.Println("Session token removed.")
		return nil
	}

	if saveToken != "" {
		if err := config.SaveToken(saveToken); err != nil {
			return err
		}
		fmt.Println("Session token saved.")
		return nil
	}

	initialView := ""
	if viewKanban {
		initialView = "kanban"
	} else if viewCalendar {
		initialView = "calendar"
	}

	return runApp(initialView, apiURL)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path, err := config.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Set api.base_url to your planner server")
	fmt.Println("  2. Run 'planner-tui --save-token <token>' if the server needs a login")
	fmt.Println("  3. Run 'planner-tui' to start")

	return nil
}

// runApp starts the main TUI application.
func runApp(initialView, apiURL string) error {
	if err := config.LoadEnvFile(".env"); err != nil {
		return err
	}

	// Anything logged while the alt screen is up would garble it.
	if config.DebugEnabled() {
		f, err := tea.LogToFile("debug.log", "debug")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if apiURL != "" {
		cfg.API.BaseURL = apiURL
	}

	token, err := config.GetToken()
	if err != nil {
		return fmt.Errorf("failed to read session token: %w", err)
	}

	client := api.NewClient(cfg.API.BaseURL, token)
	client.SetTimeout(cfg.API.Timeout)
	log.Printf("planner-tui %s talking to %s", version, client.BaseURL())

	app := tui.NewApp(client, cfg, initialView)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
