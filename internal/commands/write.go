package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/simonhull/firebird-suite/daogen/internal/generator"
	"github.com/simonhull/firebird-suite/daogen/internal/input"
	"github.com/simonhull/firebird-suite/daogen/internal/output"
	"github.com/simonhull/firebird-suite/daogen/pkg/config"
)

// writeFlags are shared by commands that write a config file.
type writeFlags struct {
	force, skip, dryRun bool
}

func (f *writeFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.force, "force", "f", false, "Overwrite an existing file without asking")
	cmd.Flags().BoolVar(&f.skip, "skip", false, "Leave an existing file untouched")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Show what would be written without writing")
}

func (a *app) initCmd() *cobra.Command {
	var flags writeFlags
	var out string
	var interactive bool
	var values config.GenerationConfig

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter generation config",
		Long: `Writes a generation config filled with defaults: templates under the
data root, the daogen executable as type assembly, output to Generated_Dao.
The file extension of --out selects the format.

Examples:
  daogen init
  daogen init --schema Sales --from Sales.Models --to Sales.Models.Dao
  daogen init -i --out config/dao.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewWithHost(a.hostContext())
			applyValues(cfg, &values, cmd)

			p := input.New(cmd.InOrStdin(), cmd.OutOrStdout())
			if interactive {
				promptValues(p, cfg)
			}

			path := out
			if path == "" {
				path = config.DefaultFile
			}
			return a.writeConfig(cmd, p, path, cfg, flags)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "File to write (default ./dao-repo-gen.yaml)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for each setting")
	cmd.Flags().StringVar(&values.SchemaName, "schema", "", "Schema name")
	cmd.Flags().StringVar(&values.FromNamespace, "from", "", "Namespace to scan for types")
	cmd.Flags().StringVar(&values.ToNamespace, "to", "", "Namespace to generate DAO types into")
	cmd.Flags().StringVar(&values.TypeAssembly, "assembly", "", "Assembly containing the source types")
	cmd.Flags().StringVar(&values.WriteSourceTo, "write-to", "", "Directory for generated source")
	cmd.Flags().BoolVar(&values.UseInheritanceSchema, "inheritance", false, "Derive repositories from "+config.InheritanceRepositoryBase)
	cmd.Flags().BoolVar(&values.CheckForIds, "check-ids", true, "Require types to expose an Id property")
	flags.register(cmd)

	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	var flags writeFlags

	cmd := &cobra.Command{
		Use:   "convert <src> <dst>",
		Short: "Re-encode a generation config in another format",
		Long: `Loads src and writes the same settings to dst, in the format chosen by
dst's extension.

Example:
  daogen convert dao-repo-gen.yaml dao-repo-gen.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load(args[0])
			if err != nil {
				return err
			}
			p := input.New(cmd.InOrStdin(), cmd.OutOrStdout())
			return a.writeConfig(cmd, p, args[1], cfg, flags)
		},
	}
	flags.register(cmd)

	return cmd
}

// applyValues copies flags the user set onto cfg, leaving defaults alone.
func applyValues(cfg, values *config.GenerationConfig, cmd *cobra.Command) {
	changed := cmd.Flags().Changed
	if changed("schema") {
		cfg.SchemaName = values.SchemaName
	}
	if changed("from") {
		cfg.FromNamespace = values.FromNamespace
	}
	if changed("to") {
		cfg.ToNamespace = values.ToNamespace
	}
	if changed("assembly") {
		cfg.TypeAssembly = values.TypeAssembly
	}
	if changed("write-to") {
		cfg.WriteSourceTo = values.WriteSourceTo
	}
	if changed("inheritance") {
		cfg.UseInheritanceSchema = values.UseInheritanceSchema
	}
	if changed("check-ids") {
		cfg.CheckForIds = values.CheckForIds
	}
}

func promptValues(p *input.Prompter, cfg *config.GenerationConfig) {
	cfg.TypeAssembly = p.Prompt("Type assembly", cfg.TypeAssembly)
	cfg.SchemaName = p.Prompt("Schema name", cfg.SchemaName)
	cfg.FromNamespace = p.Prompt("From namespace", cfg.FromNamespace)
	cfg.ToNamespace = p.Prompt("To namespace", cfg.ToNamespace)
	cfg.TemplatePath = p.Prompt("Template path", cfg.TemplatePath)
	cfg.WriteSourceTo = p.Prompt("Write source to", cfg.WriteSourceTo)
	cfg.CheckForIds = p.Confirm("Check types for Id properties?", cfg.CheckForIds)
	cfg.UseInheritanceSchema = p.Confirm("Use inheritance schema?", cfg.UseInheritanceSchema)
}

func (a *app) writeConfig(cmd *cobra.Command, p *input.Prompter, path string, cfg *config.GenerationConfig, flags writeFlags) error {
	data, err := a.loader.Marshal(path, cfg)
	if err != nil {
		return err
	}

	resolver, err := generator.NewResolver(flags.force, flags.skip, isInteractive(cmd), p)
	if err != nil {
		return err
	}

	resolution, err := resolver.Resolve(path)
	if err != nil {
		return err
	}

	var op generator.Operation = &generator.WriteFileOp{
		Path:      path,
		Content:   data,
		Mode:      0644,
		Overwrite: resolution == generator.Overwrite,
	}
	if resolution == generator.Skip {
		op = &generator.SkipOp{Path: path, Reason: "already exists"}
	}

	sum, err := generator.Execute(context.Background(), []generator.Operation{op}, generator.ExecuteOptions{
		DryRun: flags.dryRun,
		Writer: cmd.OutOrStdout(),
	})
	if err != nil {
		return err
	}

	for _, skipped := range sum.Skipped {
		output.Warn("Skipped " + skipped.Description())
	}
	if !flags.dryRun && len(sum.Applied) > 0 {
		output.Success(fmt.Sprintf("Wrote %s", path))
	}
	return nil
}

// isInteractive reports whether conflicts can be settled by asking. Input
// that is not an *os.File counts as interactive.
func isInteractive(cmd *cobra.Command) bool {
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		return generator.IsTerminal(f)
	}
	return true
}
