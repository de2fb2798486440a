package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/datawire/versio/pkg/cliutil"
)

func init() {
	var flagScheme string
	cmd := &cobra.Command{
		Use:   "check [flags] VERSION...",
		Short: "Check that version strings parse",
		Long: "Parse each VERSION argument, and for each print the canonical " +
			"rendering and the name of the scheme that accepted it.  The first " +
			"argument that no scheme accepts aborts with an error.",
		Args: cliutil.WrapPositionalArgs(cobra.MinimumNArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			parser, err := cfg.parser(flagScheme)
			if err != nil {
				return err
			}
			for _, arg := range args {
				v, err := parser.Parse(arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(flags.OutOrStdout(), "%s\t%s\n", v, v.Scheme().Name())
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flagScheme, "scheme", "",
		"Only accept versions in the named scheme")
	argparser.AddCommand(cmd)
}
