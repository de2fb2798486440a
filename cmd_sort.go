package main

import (
	"bufio"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/datawire/versio/pkg/cliutil"
	"github.com/datawire/versio/pkg/version"
)

func init() {
	var (
		flagScheme  string
		flagReverse bool
	)
	cmd := &cobra.Command{
		Use:   "sort [flags] <IN_VERSIONS",
		Short: "Sort versions from stdin",
		Long: "Read one version per line from stdin and print them in ascending " +
			"order.  Blank lines are skipped; a line that no scheme accepts " +
			"aborts with an error.",
		Args: cliutil.WrapPositionalArgs(cobra.NoArgs),
		RunE: func(flags *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			parser, err := cfg.parser(flagScheme)
			if err != nil {
				return err
			}

			var versions []*version.Version
			lines := bufio.NewScanner(flags.InOrStdin())
			for lines.Scan() {
				line := lines.Text()
				if line == "" {
					continue
				}
				v, err := parser.Parse(line)
				if err != nil {
					return err
				}
				versions = append(versions, v)
			}
			if err := lines.Err(); err != nil {
				return err
			}

			sort.SliceStable(versions, func(i, j int) bool {
				if flagReverse {
					i, j = j, i
				}
				return versions[i].Cmp(versions[j]) < 0
			})
			for _, v := range versions {
				fmt.Fprintln(flags.OutOrStdout(), v)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&flagScheme, "scheme", "",
		"Only accept versions in the named scheme")
	cmd.Flags().BoolVarP(&flagReverse, "reverse", "r", false,
		"Sort in descending order")
	argparser.AddCommand(cmd)
}
