package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"sigs.k8s.io/yaml"

	"github.com/datawire/versio/pkg/cliutil"
	"github.com/datawire/versio/pkg/scheme"
)

type outputFormat string

var _ pflag.Value = (*outputFormat)(nil)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(val string) error {
	switch val {
	case "table", "yaml":
		*f = outputFormat(val)
		return nil
	default:
		return fmt.Errorf("invalid output format: %q", val)
	}
}

func (f *outputFormat) Type() string { return "table|yaml" }

type schemeInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func init() {
	flagOutput := outputFormat("table")
	cmd := &cobra.Command{
		Use:   "schemes [flags]",
		Short: "List the built-in version schemes",
		Args:  cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(flags *cobra.Command, _ []string) error {
			infos := make([]schemeInfo, 0, len(scheme.Builtin().Schemes()))
			for _, s := range scheme.Builtin().Schemes() {
				infos = append(infos, schemeInfo{
					Name:        s.Name(),
					Description: s.Description(),
				})
			}
			switch flagOutput {
			case "yaml":
				body, err := yaml.Marshal(infos)
				if err != nil {
					return err
				}
				fmt.Fprint(flags.OutOrStdout(), string(body))
			default:
				table := tabwriter.NewWriter(flags.OutOrStdout(), 0, 8, 3, ' ', 0)
				fmt.Fprintln(table, "NAME\tDESCRIPTION")
				for _, info := range infos {
					// Multi-line descriptions get just their first line.
					desc := info.Description
					if i := strings.IndexByte(desc, '\n'); i >= 0 {
						desc = desc[:i]
					}
					fmt.Fprintf(table, "%s\t%s\n", info.Name, desc)
				}
				if err := table.Flush(); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().VarP(&flagOutput, "output", "o", "Output format")
	argparser.AddCommand(cmd)
}
