package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/daogen/internal/output"
	"github.com/simonhull/firebird-suite/daogen/pkg/config"
)

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [file...]",
		Short: "Print the settings of one or more generation configs",
		Long: `Loads each config and prints every setting. When several files
describe the same generation target (same type assembly, schema and
namespaces) the duplicates are reported.

Examples:
  daogen show
  daogen show dao-repo-gen.yaml billing.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var seen config.KeySet
			sources := make(map[*config.GenerationConfig]string)

			for _, path := range a.configPaths(args) {
				cfg, err := a.load(path)
				if err != nil {
					return err
				}

				output.Info(path)
				printConfig(cfg)

				first, added := seen.Add(cfg)
				if added {
					sources[cfg] = path
				} else {
					output.Warn(fmt.Sprintf("%s targets the same repository as %s", path, sources[first]))
				}
			}

			if n := len(sources); n > 1 {
				output.Verbose(fmt.Sprintf("%d distinct generation targets", n))
			}
			return nil
		},
	}
}

func (a *app) load(path string) (*config.GenerationConfig, error) {
	output.Verbose("loading " + path)
	cfg, err := a.loader.LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return cfg, nil
}

func printConfig(cfg *config.GenerationConfig) {
	output.Field("TypeAssembly", cfg.TypeAssembly)
	output.Field("SchemaName", cfg.SchemaName)
	output.Field("FromNamespace", cfg.FromNamespace)
	output.Field("ToNamespace", cfg.ToNamespace)
	output.Field("TemplatePath", cfg.TemplatePath)
	output.Field("WriteSourceTo", cfg.WriteSourceTo)
	output.Field("CheckForIds", cfg.CheckForIds)
	output.Field("UseInheritanceSchema", cfg.UseInheritanceSchema)
	output.Step("repository base: " + cfg.BaseRepository())
}
