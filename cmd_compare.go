package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datawire/versio/pkg/cliutil"
	"github.com/datawire/versio/pkg/compare"
)

func init() {
	var (
		flagScheme string
		flagExpect string
	)
	cmd := &cobra.Command{
		Use:   "compare [flags] VERSION1 VERSION2",
		Short: "Compare two versions",
		Long: "Print \"-1\", \"0\", or \"1\" as VERSION1 orders before, equal to, " +
			"or after VERSION2.  VERSION2 is parsed with the scheme that accepted " +
			"VERSION1.  With --expect, additionally exit non-zero unless the " +
			"given relation holds.",
		Args: cliutil.WrapPositionalArgs(cobra.ExactArgs(2)),
		RunE: func(flags *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			parser, err := cfg.parser(flagScheme)
			if err != nil {
				return err
			}
			lhs, err := parser.Parse(args[0])
			if err != nil {
				return err
			}
			d, err := lhs.Compare(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(flags.OutOrStdout(), d)
			if flagExpect != "" {
				op, err := compare.ParseOp(flagExpect)
				if err != nil {
					return flags.FlagErrorFunc()(flags, err)
				}
				if !op.Holds(d) {
					return fmt.Errorf("%q %s %q does not hold", args[0], op, args[1])
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flagScheme, "scheme", "",
		"Only accept versions in the named scheme")
	cmd.Flags().StringVar(&flagExpect, "expect", "",
		"Relation to assert: one of <, <=, ==, >=, >, != (or lt, le, eq, ge, gt, ne)")
	argparser.AddCommand(cmd)
}
