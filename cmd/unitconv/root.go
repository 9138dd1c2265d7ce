// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvunits/catalog"
)

// Configuration keys; each is a persistent flag, an UNITCONV_* environment
// variable and a key of the optional config file.
const (
	keyOutput     = "output"
	keyLogLevel   = "log-level"
	keyConfig     = "config"
	keySystems    = "systems"
	keyNoBinary   = "no-binary-prefixes"
	envPrefix     = "UNITCONV"
	outputText    = "text"
	outputYAML    = "yaml"
	defaultOutput = outputText
)

// rootOptions is shared by every subcommand.
type rootOptions struct {
	v      *viper.Viper
	log    *logrus.Logger
	out    io.Writer
	output string
	cat    *catalog.Catalog
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	o := &rootOptions{v: viper.New(), log: logrus.New(), out: out}
	o.log.SetOutput(errOut)

	cmd := &cobra.Command{
		Use:   "unitconv",
		Short: "Exact unit conversions",
		Long: heredoc.Doc(`
			Convert values between units with exact conversion factors.

			Units are looked up verbatim by symbol ("km", "lbf", "°") or by name
			("kilometre"). Settings may also come from UNITCONV_* environment
			variables or a YAML config file given with --config.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.complete()
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.StringP(keyOutput, "o", defaultOutput, "output format: text or yaml")
	flags.String(keyLogLevel, logrus.WarnLevel.String(), "log level (panic, fatal, error, warn, info, debug, trace)")
	flags.String(keyConfig, "", "path to a YAML config file")
	flags.StringSlice(keySystems, nil, "restrict the catalog to these systems (si, iec, international, cgs)")
	flags.Bool(keyNoBinary, false, "omit kibi…yobi prefixed units")
	bindFlags(o.v, flags)

	cmd.AddCommand(
		newConvertCommand(o),
		newFactorCommand(o),
		newCommonCommand(o),
		newListCommand(o),
	)

	return cmd
}

// bindFlags makes every flag readable through v, overridable by UNITCONV_*.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	flags.VisitAll(func(f *pflag.Flag) {
		// BindPFlag only fails on a nil flag.
		_ = v.BindPFlag(f.Name, f)
	})
}

// complete reads the config file, configures logging and builds the catalog.
func (o *rootOptions) complete() error {
	if path := o.v.GetString(keyConfig); path != "" {
		o.v.SetConfigFile(path)
		if err := o.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	level, err := logrus.ParseLevel(o.v.GetString(keyLogLevel))
	if err != nil {
		return err
	}
	o.log.SetLevel(level)

	o.output = o.v.GetString(keyOutput)
	if o.output != outputText && o.output != outputYAML {
		return fmt.Errorf("unknown output format %q", o.output)
	}

	opts := []catalog.Option{catalog.WithLogger(o.log)}
	if names := splitList(o.v.GetStringSlice(keySystems)); len(names) > 0 {
		systems := make([]catalog.System, 0, len(names))
		for _, n := range names {
			s, err := catalog.ParseSystem(strings.ToLower(n))
			if err != nil {
				return err
			}
			systems = append(systems, s)
		}
		opts = append(opts, catalog.WithSystems(systems...))
	}
	if o.v.GetBool(keyNoBinary) {
		opts = append(opts, catalog.WithoutBinaryPrefixes())
	}

	o.cat, err = catalog.New(opts...)
	if err != nil {
		return err
	}
	o.log.WithFields(logrus.Fields{"units": o.cat.Len(), "output": o.output}).Debug("configured")

	return nil
}

// splitList flattens comma separated items; environment values arrive as a
// single "si,cgs" element.
func splitList(items []string) []string {
	var out []string
	for _, it := range items {
		for _, f := range strings.Split(it, ",") {
			if f = strings.TrimSpace(f); f != "" {
				out = append(out, f)
			}
		}
	}

	return out
}
