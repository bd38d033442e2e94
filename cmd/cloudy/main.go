/*
File   : cloudy/cmd/cloudy/main.go
Package: main
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nandu-not-bot/cloudy"
	"github.com/nandu-not-bot/cloudy/config"
	"github.com/nandu-not-bot/cloudy/repl"
	"github.com/nandu-not-bot/cloudy/value"
)

var (
	noColor    bool
	configPath string
)

func main() {
	root := &cobra.Command{
		Use:   "cloudy [script]",
		Short: "Cloudy language interpreter",
		Long:  "Cloudy is a small dynamically-typed, indentation-sensitive scripting language.\nRun with no arguments for an interactive REPL, or pass a .cdy script to execute it.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}

	root.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")
	root.Flags().StringVar(&configPath, "config", "", "path to a .cloudyrc.yaml config file")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		repl.New(cfg, !noColor).Start(os.Stdout)
		return nil
	}

	filename := args[0]
	result, cerrErr := cloudy.RunFile(filename)
	if cerrErr != nil {
		printError(cerrErr.String())
		os.Exit(1)
	}
	if result != nil {
		if _, isNull := result.(*value.Null); !isNull {
			fmt.Println(result.String())
		}
	}
	return nil
}

func printError(msg string) {
	if noColor {
		fmt.Fprintln(os.Stderr, msg)
		return
	}
	color.New(color.FgRed).Fprintln(os.Stderr, msg)
}
