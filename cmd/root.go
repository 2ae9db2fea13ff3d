package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lone-faerie/thermo"
	"github.com/lone-faerie/thermo/config"
	"github.com/lone-faerie/thermo/internal/build"
	"github.com/lone-faerie/thermo/log"
)

const rootLong = `Check that temperature conversions survive a round trip.

Each sample is converted to each of the other two scales and back again. The
result must equal the original within 0.001 of the original scale. By default
the samples are 36.5°C, 79°F and 100K.

Configuration can be loaded from multiple YAML files, including from
directories, with later files overriding earlier ones. The exit code is 0 if
every round trip holds and 1 otherwise.`

const fullDocsFooter = `Full documentation is available at:
https://pkg.go.dev/github.com/lone-faerie/thermo`

// VersionTemplate returns the template used for --version.
func VersionTemplate() string {
	return `{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
build time: ` + orUnknown(build.BuildTime()) + `
package: ` + orUnknown(build.Package()) + "\n"
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

type rootOptions struct {
	ConfigPath []string      // Path(s) to config file/directory
	LogLevel   log.LevelFlag // Log level
	LogFormat  string        // Log format
	Quiet      bool          // Only report failures

	cfg     *config.Config
	cleanup []func() error
}

// subcommands are added to the root command by build-tagged files.
var subcommands []func(root *cobra.Command) *cobra.Command

// NewRootCommand returns the [cobra.Command] that runs the self-check.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:     "thermo [-c config]... [flags]",
		Short:   "Check temperature conversion round trips",
		Long:    rootLong,
		Example: "  thermo\n  thermo --config thermo.yaml --log debug",
		Version: build.Version(),
		Args:    cobra.NoArgs,
		PreRunE: opts.loadConfig,
		RunE:    opts.runCheck,

		CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	cmd.Flags().SortFlags = false
	cmd.Flags().StringSliceVarP(&opts.ConfigPath, "config", "c", nil, "Path(s) to config file/directory")
	cmd.Flags().VarP(&opts.LogLevel, "log", "l", "Log level")
	cmd.Flags().StringVar(&opts.LogFormat, "log-format", "", "Log format (text, json)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Only report failures")

	cmd.MarkFlagFilename("config", "yaml", "yml")
	cmd.RegisterFlagCompletionFunc("log-format", cobra.FixedCompletions(
		[]cobra.Completion{"text", "json"}, cobra.ShellCompDirectiveNoFileComp,
	))

	cmd.SetHelpTemplate(cmd.HelpTemplate() + "\n" + fullDocsFooter + "\n")
	cmd.SetVersionTemplate(VersionTemplate())

	for _, sub := range subcommands {
		cmd.AddCommand(sub(cmd))
	}

	return cmd
}

func (opts *rootOptions) loadConfig(cmd *cobra.Command, _ []string) (err error) {
	opts.cfg, err = config.Load(opts.ConfigPath...)
	if err != nil {
		return
	}

	if cmd.Flags().Changed("log") {
		opts.cfg.Log.Level = log.Level(opts.LogLevel)
	}

	if opts.LogFormat != "" {
		opts.cfg.Log.Format = opts.LogFormat
	}

	return opts.setLogHandler(cmd)
}

func (opts *rootOptions) setLogHandler(cmd *cobra.Command) error {
	cfg := opts.cfg.Log

	switch strings.ToLower(cfg.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", cfg.Format)
	}

	var w io.Writer

	switch strings.ToLower(cfg.Output) {
	case "", "stderr":
		w = cmd.ErrOrStderr()
	case "stdout":
		w = cmd.OutOrStdout()
	case "discard":
		log.SetHandler(log.DiscardHandler)
		return nil
	default:
		f, err := os.OpenFile(cfg.Output, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			log.Error("Unable to open log file, deferring to stderr", err, "path", cfg.Output)
			w = cmd.ErrOrStderr()
			break
		}

		w = f

		opts.cleanup = append(opts.cleanup, f.Close)
	}

	log.SetLogLevel(cfg.Level)

	switch strings.ToLower(cfg.Format) {
	case "json":
		log.SetJSONHandler(w)
	default:
		log.SetTextHandler(w)
	}

	return nil
}

func (opts *rootOptions) runCheck(cmd *cobra.Command, _ []string) error {
	defer opts.runCleanup()

	samples := make([]thermo.Sample, len(opts.cfg.Samples))
	for i, s := range opts.cfg.Samples {
		samples[i] = thermo.Sample(s)
	}

	results, err := thermo.Check(samples...)

	out := cmd.OutOrStdout()
	for _, r := range results {
		if opts.Quiet && r.OK() {
			continue
		}
		fmt.Fprintln(out, r)
	}

	if err != nil {
		for _, e := range unwrapAll(err) {
			cmd.PrintErrln("Error:", e)
		}
		return &ExitError{err, 1}
	}

	return nil
}

// runCleanup closes what setLogHandler opened. Logging is discarded first
// so no record is written to a closed file.
func (opts *rootOptions) runCleanup() {
	if len(opts.cleanup) == 0 {
		return
	}
	log.SetHandler(log.DiscardHandler)
	for _, f := range opts.cleanup {
		f()
	}
	opts.cleanup = nil
}

func unwrapAll(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
