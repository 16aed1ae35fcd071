// Package cli implements the literal-generator command line.
package cli

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"literal-generator/internal/config"
	"literal-generator/literal"
	"literal-generator/typedesc"
)

// EnvPrefix prefixes the environment variables read by the CLI, e.g.
// LITERALGEN_MAX_DEPTH.
const EnvPrefix = "LITERALGEN"

// app is the state shared by the commands of one invocation.
type app struct {
	v      *viper.Viper
	types  TypeSet
	logger *zap.Logger
}

// NewRootCommand builds the command tree. Output goes to out; types names
// the Go types gen and typename accept, nil uses DefaultTypeSet.
func NewRootCommand(out io.Writer, types TypeSet) *cobra.Command {
	if types == nil {
		types = DefaultTypeSet()
	}

	a := &app{
		v:      viper.New(),
		types:  types,
		logger: zap.NewNop(),
	}

	a.v.SetEnvPrefix(EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "literal-generator",
		Short: "Write Go values as C#-style object initializer literals",
		Long: `literal-generator writes Go values as C#-style object initializer
literals that can be pasted into test code.

Available commands:
  gen       - Write a JSON document as a literal of a known type
  typename  - Print the literal name of a known type
  describe  - Generate descriptor registrations for a Go package

Examples:
  literal-generator gen -t order order.json
  echo '[1,2]' | literal-generator gen -t array
  literal-generator typename order-page
  literal-generator describe -p ./examples/fixtures --namespace Shop.Store`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(a.v.GetBool("verbose"))
			if err != nil {
				return errors.Wrap(err, "failed to initialize logger")
			}

			a.logger = logger

			return nil
		},
	}

	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringP("config", "c", "", "YAML configuration file")
	flags.BoolP("verbose", "v", false, "Log debug output to stderr")
	flags.Int("max-depth", config.DefaultMaxDepth, "Maximum nesting of written values")
	flags.StringToString("map-namespace", nil, "Namespace of a Go package, as path=Namespace (repeatable)")

	for _, name := range []string{"config", "verbose", "max-depth"} {
		must(a.v.BindPFlag(name, flags.Lookup(name)))
	}

	root.AddCommand(
		a.genCommand(),
		a.typenameCommand(),
		a.describeCommand(),
	)

	return root
}

// settings loads the configuration file, if any, and applies flag and
// environment overrides.
func (a *app) settings(cmd *cobra.Command) (*config.File, error) {
	f := config.Default()

	if path := a.v.GetString("config"); path != "" {
		loaded, err := config.LoadFile(path)
		if err != nil {
			return nil, err
		}

		f = loaded
	}

	if a.v.IsSet("max-depth") {
		f.MaxDepth = a.v.GetInt("max-depth")
	}

	mapped, err := cmd.Flags().GetStringToString("map-namespace")
	if err != nil {
		return nil, errors.Wrap(err, "map-namespace")
	}

	if len(mapped) > 0 && f.Namespaces == nil {
		f.Namespaces = make(map[string]string, len(mapped))
	}

	for pkgPath, ns := range mapped {
		f.Namespaces[pkgPath] = ns
	}

	if err := config.Validate(f); err != nil {
		return nil, err
	}

	a.logger.Debug("settings",
		zap.Int("max_depth", f.MaxDepth),
		zap.Int("namespaces", len(f.Namespaces)),
	)

	return f, nil
}

// literalOptions turns settings into literal options.
func (a *app) literalOptions(f *config.File) []literal.Option {
	return []literal.Option{
		literal.WithCatalog(f.Catalog(typedesc.Default())),
		literal.WithMaxDepth(f.MaxDepth),
		literal.WithLogger(a.logger),
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	cfg.Encoding = "console"

	return cfg.Build()
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
