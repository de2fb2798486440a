package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/datawire/dlib/dlog"
	"github.com/spf13/cobra"

	"github.com/datawire/versio/pkg/cliutil"
	"github.com/datawire/versio/pkg/version"
)

func init() {
	var (
		flagScheme   string
		flagField    string
		flagSubIndex int
		flagIndex    int
		flagPromote  bool
		flagFile     string
	)
	cmd := &cobra.Command{
		Use:   "bump [flags] [VERSION]",
		Short: "Increment a field of a version",
		Long: "Bump a VERSION given as an argument and print the result, or with " +
			"--file (or a \"file\" setting in .versio.yml) rewrite a version file " +
			"in place.  Without --field, the least significant field is bumped.  " +
			"A bump that changes nothing, such as bumping a pre-release tag that " +
			"is already at the end of its sequence without --promote, is an error.",
		Args: cliutil.WrapPositionalArgs(cobra.MaximumNArgs(1)),
		RunE: func(flags *cobra.Command, args []string) error {
			ctx := flags.Context()
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			parser, err := cfg.parser(flagScheme)
			if err != nil {
				return err
			}

			bumpOne := func(v *version.Version) bool {
				switch {
				case flagIndex >= 0:
					return v.BumpIndex(flagIndex)
				case flagPromote:
					return v.Promote(flagField)
				case flagSubIndex >= 0:
					return v.BumpSub(flagField, flagSubIndex)
				default:
					return v.Bump(flagField)
				}
			}

			if flagPromote && flagField == "" {
				return flags.FlagErrorFunc()(flags,
					fmt.Errorf("--promote requires --field"))
			}
			if flagIndex >= 0 && (flagField != "" || flagSubIndex >= 0 || flagPromote) {
				return flags.FlagErrorFunc()(flags,
					fmt.Errorf("--index cannot be combined with field addressing"))
			}

			if len(args) == 1 {
				v, err := parser.Parse(args[0])
				if err != nil {
					return err
				}
				if !bumpOne(v) {
					return fmt.Errorf("bump changed nothing for %q", args[0])
				}
				fmt.Fprintln(flags.OutOrStdout(), v)
				return nil
			}

			file := flagFile
			if file == "" {
				file = cfg.File
			}
			body, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			old := strings.TrimSpace(string(body))
			v, err := parser.Parse(old)
			if err != nil {
				return err
			}
			if !bumpOne(v) {
				return fmt.Errorf("%s: bump changed nothing for %q", file, old)
			}
			dlog.Infof(ctx, "%s: %s -> %s", file, old, v)
			if err := os.WriteFile(file, []byte(v.String()+"\n"), 0o666); err != nil {
				return err
			}
			fmt.Fprintln(flags.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().StringVar(&flagScheme, "scheme", "",
		"Only accept versions in the named scheme")
	cmd.Flags().StringVar(&flagField, "field", "",
		"Field or subfield to bump; defaults to the least significant field")
	cmd.Flags().IntVar(&flagSubIndex, "sub-index", -1,
		"Dotted sub-part of the field to bump")
	cmd.Flags().IntVar(&flagIndex, "index", -1,
		"Zero-based segment to bump, for variable-length dotted versions")
	cmd.Flags().BoolVar(&flagPromote, "promote", false,
		"Drop the field instead of failing when it cannot advance further")
	cmd.Flags().StringVar(&flagFile, "file", "",
		"Rewrite `FILE` instead of taking the version as an argument")
	argparser.AddCommand(cmd)
}
