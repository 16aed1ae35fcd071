package cli

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"literal-generator/internal/analyze"
	"literal-generator/internal/gen"
)

const stdoutDir = "-"

func (a *app) describeCommand() *cobra.Command {
	var (
		patterns    []string
		output      string
		packageName string
		namespace   string
	)

	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Generate descriptor registrations for Go packages",
		Long: `Load Go packages and write a literal_types.go file registering a
descriptor for each exported struct and integer type, and for each
instantiation of their generic types used by the package.

The file is written next to the package sources unless --output names a
directory. Use "-o -" to print it instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := a.settings(cmd)
			if err != nil {
				return err
			}

			graph, err := analyze.NewAnalyzer().LoadPackages(patterns...)
			if err != nil {
				return err
			}

			for _, path := range slices.Sorted(maps.Keys(graph.Packages)) {
				pkg := graph.Packages[path]
				if pkg.Dir == "" {
					continue
				}

				dir := cmp.Or(output, settings.Describe.Output, pkg.Dir)
				toStdout := dir == stdoutDir

				cfg := gen.GeneratorConfig{
					PackageName: cmp.Or(packageName, settings.Describe.PackageName),
					Namespace:   cmp.Or(namespace, settings.Describe.Namespace, settings.Namespaces[pkg.Path]),
				}
				if !toStdout {
					cfg.OutputDir = dir
				}

				file, err := gen.NewGenerator(cfg, a.logger).Generate(graph, pkg.Path)
				if err != nil {
					return errors.Wrapf(err, "describe %s", pkg.Path)
				}

				for _, d := range file.Diagnostics.Warnings {
					a.logger.Warn(d.String(), zap.String("package", pkg.Path))
				}

				for _, d := range file.Diagnostics.Infos {
					a.logger.Debug(d.String(), zap.String("package", pkg.Path))
				}

				if toStdout {
					if _, err := fmt.Fprint(cmd.OutOrStdout(), string(file.Content)); err != nil {
						return err
					}

					continue
				}

				if err := gen.WriteFiles([]gen.GeneratedFile{*file}, dir); err != nil {
					return err
				}

				a.logger.Info("described package", zap.String("package", pkg.Path), zap.String("dir", dir))
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVarP(&patterns, "packages", "p", []string{"."}, "Package patterns to describe")
	cmd.Flags().StringVarP(&output, "output", "o", "", `Output directory, or "-" for stdout`)
	cmd.Flags().StringVar(&packageName, "package", "", "Package clause of the generated file")
	cmd.Flags().StringVar(&namespace, "namespace", "", "Literal namespace of the described types")

	return cmd
}
