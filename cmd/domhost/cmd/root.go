// Package cmd implements the domhost CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (types, trace, sample).
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-drift/domhost/pkg/config"
	"github.com/go-drift/domhost/pkg/errors"
	"github.com/go-drift/domhost/pkg/log"
	"github.com/go-drift/domhost/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// Version information set at build time.
var (
	Version   = "v0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "domhost",
	Short: "domhost - host a component tree in a DOM",
	Long: `domhost maps the components of a layout engine onto DOM views and
drives media playback for video components.

Use "domhost <command> --help" for more information about a command.`,
	Usage: "domhost <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// stdout receives command output. Tests replace it.
var stdout io.Writer = os.Stdout

// configDir is where domhost.yaml is looked up.
var configDir = "."

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	// Handle no arguments
	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Handle global flags and extract --config-dir
	var filteredArgs []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-h", "--help", "help":
			if len(filteredArgs) == 0 {
				printHelp(rootCmd)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "-v", "--version", "version":
			if len(filteredArgs) == 0 {
				fmt.Fprintf(stdout, "domhost version %s (built %s)\n", Version, BuildTime)
				return nil
			}
			filteredArgs = append(filteredArgs, arg)
		case "--config-dir":
			if i+1 < len(args) {
				configDir = args[i+1]
				i++
			} else {
				return fmt.Errorf("--config-dir requires a directory path")
			}
		default:
			if strings.HasPrefix(arg, "--config-dir=") {
				configDir = strings.TrimPrefix(arg, "--config-dir=")
				continue
			}
			filteredArgs = append(filteredArgs, arg)
		}
	}
	args = filteredArgs

	if len(args) == 0 {
		printHelp(rootCmd)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", cmdName)
		printHelp(rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs)
}

// setup resolves domhost.yaml and configures logging and error reporting
// from it. The returned registry is nil unless renderer.metrics is set.
func setup() (*config.Resolved, *prometheus.Registry, *metrics.Metrics, error) {
	cfg, err := config.Resolve(configDir, Version)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log.Configure(log.Config{Level: cfg.LogLevel})
	logger := log.WithComponent("errors")
	errors.SetHandler(&errors.LogHandler{Logger: &logger})

	if !cfg.Metrics {
		return cfg, nil, nil, nil
	}
	reg := prometheus.NewRegistry()
	return cfg, reg, metrics.New(reg), nil
}

// printMetrics writes every counter in reg as "name{labels} value".
func printMetrics(reg *prometheus.Registry) error {
	if reg == nil {
		return nil
	}
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%q", lp.GetName(), lp.GetValue()))
			}
			fmt.Fprintf(stdout, "%s{%s} %g\n", mf.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
		}
	}
	return nil
}

func printHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(stdout, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Flags:")
	fmt.Fprintln(stdout, "  -h, --help           Show help for a command")
	fmt.Fprintln(stdout, "  -v, --version        Show version information")
	fmt.Fprintln(stdout, "  --config-dir DIR     Directory holding domhost.yaml (default: .)")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Environment:")
	fmt.Fprintln(stdout, "  DOMHOST_LOG_LEVEL    Log level when domhost.yaml sets none")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Examples:")
	fmt.Fprintln(stdout, "  domhost types                          List supported component types")
	fmt.Fprintln(stdout, "  domhost trace loadeddata playing       Show the states a player emits")
	fmt.Fprintln(stdout, "  domhost sample                         Render a sample tree as HTML")
}

func printCommandHelp(cmd *Command) {
	fmt.Fprintln(stdout, cmd.Long)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Usage:")
	fmt.Fprintf(stdout, "  %s\n", cmd.Usage)
}
