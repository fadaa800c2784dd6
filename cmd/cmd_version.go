package cmd

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-snap/common/errs"
	"github.com/gaze-network/nft-snap/core"
	"github.com/gaze-network/nft-snap/modules/snap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var versions = map[string]string{
	"":     core.Version,
	"snap": snap.Version,
}

type versionCmdOptions struct {
	Module string
	All    bool
}

func NewVersionCommand() *cobra.Command {
	opts := &versionCmdOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show nftsnap version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return versionHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Module, "module", "", `Show version of a specific module. E.g. "snap"`)
	flags.BoolVar(&opts.All, "all", false, "Show versions of every module")

	return cmd
}

func versionHandler(opts *versionCmdOptions, cmd *cobra.Command, _ []string) error {
	if opts.All {
		names := lo.Keys(versions)
		sort.Strings(names)
		for _, name := range names {
			if name != "" {
				cmd.Printf("%s %s\n", name, versions[name])
			}
		}
		cmd.Printf("nftsnap %s\n", versions[""])
		return nil
	}

	version, ok := versions[opts.Module]
	if !ok {
		return errors.Wrapf(errs.Unsupported, "unknown module %q", opts.Module)
	}
	cmd.Println(version)
	return nil
}
