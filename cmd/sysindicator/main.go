package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/go-tangra/go-tangra-sysindicator/internal/codec"
	"github.com/go-tangra/go-tangra-sysindicator/internal/collector"
	"github.com/go-tangra/go-tangra-sysindicator/internal/config"
	"github.com/go-tangra/go-tangra-sysindicator/internal/console"
)

var (
	version    = "dev"
	commitHash = "unknown"
	buildDate  = "unknown"
)

var cfgFile string

// query is replaced in tests.
var query = collector.QueryInformation

var rootCmd = &cobra.Command{
	Use:   "sysindicator",
	Short: "Sysindicator - print OS, processor, cache and memory information",
	Long: `Sysindicator queries the local host once for its operating system,
toolchain, processor identity and extensions, core and cache topology and
physical memory, and prints the result as a report, JSON or YAML.`,
	SilenceUsage: true,
	RunE:         runReport,
}

var getCmd = &cobra.Command{
	Use:   "get KEY...",
	Short: "Print the raw value of one or more information keys",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runGet,
}

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List all information keys",
	Run: func(cmd *cobra.Command, args []string) {
		for _, k := range collector.Keys {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "sysindicator %s (commit: %s, built: %s)\n", version, commitHash, buildDate)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/sysindicator.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error (default warn)")
	rootCmd.Flags().String("format", "", "output format: "+strings.Join(codec.Formats(), ", ")+" (default text)")
	rootCmd.Flags().String("pause", "", "wait for Enter before exiting: auto, always, never (default auto)")
	rootCmd.Flags().Bool("no-color", false, "disable coloured labels")

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configuration, applies CLI flag overrides and sets
// up logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if f := cmd.Flags().Lookup("format"); f != nil && f.Value.String() != "" {
		cfg.Format = f.Value.String()
	}
	if f := cmd.Flags().Lookup("pause"); f != nil && f.Value.String() != "" {
		cfg.Pause = f.Value.String()
	}
	if v, _ := cmd.Flags().GetBool("no-color"); v {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	setupLogging(cmd.ErrOrStderr(), cfg.LogLevel)
	return cfg, nil
}

func setupLogging(w io.Writer, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w})
	if err != nil {
		log.Warn().Str("level", level).Msg("unknown log level, using warn")
	}
}

func runReport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	m := query()
	log.Debug().Int("keys", len(m)).Msg("information collected")

	out := cmd.OutOrStdout()
	data, err := codec.Marshal(cfg.Format, m, cfg.Color && isTerminal(out))
	if err != nil {
		return err
	}
	if len(data) > 0 && !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	if _, err := out.Write(data); err != nil {
		return err
	}

	if console.ShouldPause(cfg.Pause) {
		return console.Pause(cmd.InOrStdin(), out)
	}
	return nil
}

func runGet(cmd *cobra.Command, args []string) error {
	if _, err := loadConfig(cmd); err != nil {
		return err
	}

	keys := make([]collector.Key, len(args))
	for i, a := range args {
		k, ok := collector.ParseKey(strings.ToUpper(a))
		if !ok {
			return fmt.Errorf("unknown key %q (see 'sysindicator keys')", a)
		}
		keys[i] = k
	}

	m := query()
	out := cmd.OutOrStdout()
	for _, k := range keys {
		v, ok := m.Get(k)
		if !ok {
			log.Debug().Str("key", string(k)).Msg("value not available")
		}
		if len(keys) > 1 {
			fmt.Fprintf(out, "%s=%s\n", k, v)
			continue
		}
		fmt.Fprintln(out, v)
	}
	return nil
}
