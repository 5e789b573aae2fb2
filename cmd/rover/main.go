package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	apppkg "github.com/kk-code-lab/rover/internal/app"
	"github.com/kk-code-lab/rover/internal/config"
)

func printHelp() {
	fmt.Print(`rover - Terminal directory browser

USAGE:
    rover [OPTIONS] [DIR...]

    Up to nine directories open in tabs 1-9; tab 0 starts at $HOME.

OPTIONS:
    -h, --help            Show this help message and exit

ENVIRONMENT:
    SHELL, PAGER, EDITOR  Programs started by the shell, pager and editor keys
    ROVER_CONFIG          Configuration file (default $XDG_CONFIG_HOME/rover/config.yaml)
    ROVER_LOG             Append debug logs to this file
`)
}

func main() {
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "-h", "--help":
			printHelp()
			os.Exit(0)
		case "--":
			args = args[1:]
		}
	}

	cfg, err := config.Load(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	app, err := apppkg.NewApplication(apppkg.Options{Args: args, Config: cfg})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	app.Run()
}
