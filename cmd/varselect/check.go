package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/opendap-go/varselect/internal/config"
	"github.com/opendap-go/varselect/internal/formstate"
	"github.com/opendap-go/varselect/internal/logging"
	"github.com/opendap-go/varselect/pkg/guard"
	"github.com/opendap-go/varselect/pkg/middleware"
	"github.com/opendap-go/varselect/pkg/notify"
)

func checkCmd() *cobra.Command {
	var opts checkOptions

	cmd := &cobra.Command{
		Use:   "check <state.yaml>",
		Short: "Run the submission guard against a saved form state",
		Long: `Load a form state, click its submit button and report what the
submission guard decided.

Prints "allowed" when at least one checkbox is checked; otherwise prints
the alert message and exits with status 2.

A form state is YAML or JSON:

  container: tabs      # optional, default guard.container_id
  button: submit       # optional, default guard.button_id
  inputs:
    - {type: checkbox, checked: true}
    - {type: text}

Examples:
  varselect check state.yaml
  varselect check --quiet state.json && echo ok
  varselect check --metrics-file guard.prom state.yaml
  varselect check --config server.yaml state.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Config file (YAML) supplying default guard ids")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Print nothing; report through the exit status only")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log the guard decision to stderr")
	cmd.Flags().StringVar(&opts.metricsFile, "metrics-file", "", "Write guard outcome counters to this file in Prometheus text format")

	return cmd
}

type checkOptions struct {
	configFile  string
	quiet       bool
	verbose     bool
	metricsFile string
}

func runCheck(stdout, stderr io.Writer, path string, o checkOptions) error {
	level := "warn"
	if o.verbose {
		level = "debug"
	}
	logger := logging.New(level, "text", stderr)

	cfg, err := config.Load(o.configFile)
	if err != nil {
		return err
	}
	state, err := formstate.Load(path, formstate.WithDefaultIDs(cfg.Guard.ContainerID, cfg.Guard.ButtonID))
	if err != nil {
		return err
	}
	logger.Debug("form state loaded",
		"path", path,
		"container", state.Container,
		"button", state.Button,
		"inputs", len(state.Inputs),
	)

	var notifier guard.Notifier = notify.Writer{W: stdout}
	if o.quiet {
		notifier = &notify.Recorder{}
	}

	guardOpts := []guard.Option{guard.WithLogger(logger)}

	var reg *prometheus.Registry
	if o.metricsFile != "" {
		reg = prometheus.NewRegistry()
		m := middleware.NewMetrics(middleware.WithRegistry(reg))
		guardOpts = append(guardOpts, guard.WithObserver(m.GuardObserver()))
	}

	doc := state.Document()
	binding, err := guard.Attach(doc, guard.New(notifier, guardOpts...), state.Options()...)
	if err != nil {
		return err
	}
	defer binding.Detach()

	ev := doc.GetElementByID(state.Button).Click()

	if reg != nil {
		if err := prometheus.WriteToTextfile(o.metricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	if ev.DefaultPrevented() {
		return errBlocked
	}
	if !o.quiet {
		fmt.Fprintln(stdout, guard.Allowed)
	}
	return nil
}
