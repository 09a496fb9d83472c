package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/daogen/internal/output"
)

func (a *app) keyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "key [file...]",
		Short: "Print the composite key and key hash of generation configs",
		Long: `A config's composite key is (TypeAssembly, SchemaName, FromNamespace,
ToNamespace). Configs with the same key generate the same repository; the
hash is stable across runs and machines.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range a.configPaths(args) {
				cfg, err := a.load(path)
				if err != nil {
					return err
				}

				key := cfg.Key()
				output.Info(path)
				output.Field("TypeAssembly", key.TypeAssembly)
				output.Field("SchemaName", key.SchemaName)
				output.Field("FromNamespace", key.FromNamespace)
				output.Field("ToNamespace", key.ToNamespace)
				output.Field("Hash", fmt.Sprintf("%016x", key.Hash()))
			}
			return nil
		},
	}
}
