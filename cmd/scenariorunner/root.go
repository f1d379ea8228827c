package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/adest/scenariorunner/scenario"
	"github.com/adest/scenariorunner/scenarioconfig"
)

const appName = "scenariorunner"

// remoteSudoOutputLimit caps how much RemoteSudo output this renderer will
// print. The engine itself never truncates output; truncation is a concern
// of whoever is displaying it.
const remoteSudoOutputLimit = 1000

var (
	flagConfig          string
	flagKnownHosts      string
	flagInsecureHostKey bool
	flagDryRun          bool
	flagVerbose         bool
	flagProbe           bool
	flagInteractive     bool
)

var rootCmd = &cobra.Command{
	Use:   appName + " -c scenario.yaml [KEY=VALUE ...]",
	Short: "Run a declarative remote SSH/SFTP automation scenario",
	Long: appName + " loads a YAML scenario describing SSH commands and SFTP\n" +
		"transfers, resolves its variables, and executes its steps against a\n" +
		"remote server, printing progress as it goes.",
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagConfig == "" {
			return fmt.Errorf("missing required flag --config")
		}

		supplied, extra := splitVariableArgs(args)
		if len(extra) > 0 {
			return fmt.Errorf("unrecognized arguments: %v (expected KEY=VALUE pairs)", extra)
		}

		config, err := scenarioconfig.Load(flagConfig)
		if err != nil {
			return err
		}

		if flagProbe {
			if err := runProbe(config); err != nil {
				return err
			}
		}

		if flagInteractive && len(supplied) == 0 {
			supplied, err = runInteractivePrompt(config)
			if err != nil {
				return err
			}
		}

		s, err := scenarioconfig.FromConfig(config, supplied)
		if err != nil {
			return err
		}

		if flagDryRun {
			printDryRun(s)
			return nil
		}

		factory, err := liveFactory()
		if err != nil {
			return err
		}

		sink := scenario.NewChannelEventSink(32, func(e scenario.Event) {
			fmt.Fprintln(os.Stderr, "warning: dropped event, consumer too slow")
		})
		defer sink.Close()

		done := make(chan struct{})
		go func() {
			defer close(done)
			for e := range sink.Events() {
				renderEvent(e, flagVerbose)
			}
		}()

		execErr := s.Execute(factory, sink)
		sink.Close()
		<-done
		return execErr
	},
}

func liveFactory() (scenario.SessionFactory, error) {
	knownHosts := flagKnownHosts
	if knownHosts == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			knownHosts = home + "/.ssh/known_hosts"
		}
	}

	opts := scenario.LiveSessionOptions{}
	if !flagInsecureHostKey && knownHosts != "" {
		callback, err := scenario.NewKnownHostsCallback(knownHosts)
		if err == nil {
			opts.HostKeyCallback = callback
		} else {
			fmt.Fprintf(os.Stderr, "warning: could not load known_hosts (%v); falling back to insecure host key checking\n", err)
		}
	}

	return scenario.LiveSessionFactory(opts), nil
}

// variableArgRe matches KEY=VALUE command-line arguments used to supply
// required variables.
var variableArgRe = regexp.MustCompile(`^([A-Za-z0-9_][A-Za-z0-9_-]*)=(.*)$`)

// splitVariableArgs separates KEY=VALUE variable overrides from anything
// else on the command line, so unrecognized positional args are reported.
func splitVariableArgs(args []string) (supplied map[string]string, extra []string) {
	for _, arg := range args {
		if m := variableArgRe.FindStringSubmatch(arg); m != nil {
			if supplied == nil {
				supplied = make(map[string]string)
			}
			supplied[m[1]] = m[2]
		} else {
			extra = append(extra, arg)
		}
	}
	return supplied, extra
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to the scenario YAML file")
	rootCmd.Flags().StringVar(&flagKnownHosts, "known-hosts", "", "known_hosts file for host key verification (default: ~/.ssh/known_hosts)")
	rootCmd.Flags().BoolVar(&flagInsecureHostKey, "insecure-host-key", false, "skip host key verification (dangerous)")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "print the resolved plan without connecting to anything")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "print every event, not just milestones")
	rootCmd.Flags().BoolVar(&flagProbe, "probe", false, "print local host diagnostics before running")
	rootCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "prompt for required variables instead of requiring KEY=VALUE args")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(initCmd)
}
