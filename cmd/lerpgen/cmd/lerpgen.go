package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/teranos/lerp/config"
	"github.com/teranos/lerp/derive"
	"github.com/teranos/lerp/errors"
	"github.com/teranos/lerp/logger"
)

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"param":    config.KeyParam,
	"method":   config.KeyMethod,
	"tag":      config.KeyTag,
	"runtime":  config.KeyRuntime,
	"fallback": config.KeyFallback,
	"output":   config.KeyOutput,
	"log-json": config.KeyLogJSON,
}

// NewLerpgenCmd builds the lerpgen command and its subcommands.
func NewLerpgenCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "lerpgen [dir]",
		Short: "Generate Lerp methods for Go types",
		Long: `Generate element-wise linear interpolation methods for Go types.

lerpgen reads the package in dir (default: the current directory) and writes
one Lerp method per selected type. A type is selected by a //lerp:derive line
in its doc comment, or by naming it with --type.

Each field is interpolated on its own:
  - float32 and float64 fields use lerp.Lerp
  - other fields call their own Lerp method with t
  - pointers and fixed-size arrays are interpolated element by element
  - lerp:"skip" (or ignore, or -) copies the receiver's value
  - lerp:"float32" casts t before interpolating the field

Directives may also be written as a //lerp:field comment on the field.
A field carries at most one directive.

Types that cannot be generated are reported as file:line:col diagnostics.
Their method is still written, with a body that panics, so the package keeps
compiling while the problem is fixed.

Settings are read from lerpgen.toml (searched upwards from dir) and
LERPGEN_* environment variables; flags take precedence.

Examples:
  //go:generate go run github.com/teranos/lerp/cmd/lerpgen
  lerpgen --type Particle,Camera ./scene
  lerpgen --param float32 --output lerp.go
  lerpgen check
  lerpgen watch ./scene`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, false)
		},
	}

	addGenerateFlags(root.PersistentFlags())
	root.PersistentFlags().CountP("verbose", "v", "Increase log verbosity (-v, -vv)")
	root.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	root.AddCommand(&cobra.Command{
		Use:   "check [dir]",
		Short: "Check that generated Lerp methods are up to date",
		Long: `Generate into memory and compare with the file on disk.

Exit codes:
  0 - Generated code is up to date
  1 - Generated code is out of date or missing (diff shown), or generation failed`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, true)
		},
	})
	root.AddCommand(newInitCmd())
	root.AddCommand(newWatchCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func addGenerateFlags(flags *pflag.FlagSet) {
	flags.StringSliceP("type", "t", nil, "Types to generate, in addition to those marked //lerp:derive")
	flags.StringP("output", "o", "", "Output file (default: <type>_lerp.go, or lerp_gen.go for several types; - for stdout)")
	flags.String("param", config.DefaultParam, "Type of the interpolation parameter t")
	flags.String("method", config.DefaultMethod, "Name of the generated method")
	flags.String("tag", config.DefaultTag, "Struct tag key holding field directives")
	flags.String("runtime", config.DefaultRuntime, "Import path of the lerp runtime package")
	flags.Bool("fallback", true, "Write a panicking method for types that fail to generate")
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "failed to bind flag --%s", name)
		}
	}
	return nil
}

func packageDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// loadConfig resolves settings for dir with the command's flags bound over them.
func loadConfig(cmd *cobra.Command, dir string) (*config.Config, string, error) {
	v := config.New()
	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, "", err
	}
	return config.Load(v, dir)
}

func initLogging(cmd *cobra.Command, cfg *config.Config) {
	verbosity, _ := cmd.Flags().GetCount("verbose")
	logger.Initialize(cfg.LogJSON, verbosity)
}

// generation is one run of the generator over a package.
type generation struct {
	structs []*derive.Struct
	out     *derive.Output
	path    string
}

// failed reports the generation failure, if any, as an error.
func (g *generation) failed() error {
	if !g.out.Failed() {
		return nil
	}
	return errors.Wrapf(errors.ErrGenerationFailed, "%d of %d types failed", len(g.out.Diagnostics), len(g.structs))
}

// generate loads the package in dir and renders its Lerp methods in memory.
// Diagnostics are printed to stderr.
func generate(cmd *cobra.Command, dir string, cfg *config.Config) (*generation, error) {
	log := logger.ComponentLogger("lerpgen")

	types, _ := cmd.Flags().GetStringSlice("type")
	pkg, err := derive.Load(dir)
	if err != nil {
		return nil, err
	}
	structs, err := derive.Select(pkg, derive.Selection{Types: types, Tag: cfg.Tag})
	if err != nil {
		return nil, err
	}
	if len(structs) == 0 {
		return nil, errors.WithHint(
			errors.Newf("no types selected in package %s", pkg.Name),
			"add //lerp:derive to a type's doc comment or pass --type")
	}
	log.Infow("types selected",
		logger.FieldPackage, pkg.Path,
		logger.FieldCount, len(structs),
	)

	gen := derive.New(derive.Options{
		Param:    cfg.Param,
		Method:   cfg.Method,
		Runtime:  cfg.Runtime,
		Fallback: cfg.Fallback,
		Logger:   logger.ComponentLogger("derive"),
	})
	out, err := gen.File(pkg.Name, structs)
	if err != nil {
		return nil, err
	}
	for _, d := range out.Diagnostics {
		fmt.Fprintln(cmd.ErrOrStderr(), d.Error())
	}

	return &generation{
		structs: structs,
		out:     out,
		path:    outputPath(dir, cfg.Output, structs),
	}, nil
}

// write stores the generated source. A file that already holds exactly
// this source is left untouched.
func write(cmd *cobra.Command, g *generation) error {
	log := logger.ComponentLogger("lerpgen")

	if g.path == "-" {
		if _, err := cmd.OutOrStdout().Write(g.out.Source); err != nil {
			return errors.Wrap(err, "failed to write to stdout")
		}
		return nil
	}

	if existing, err := os.ReadFile(g.path); err == nil && bytes.Equal(existing, g.out.Source) {
		log.Debugw("generated code unchanged", logger.FieldOutput, g.path)
		return nil
	}
	if err := os.WriteFile(g.path, g.out.Source, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", g.path)
	}
	log.Infow("wrote generated code",
		logger.FieldOutput, g.path,
		logger.FieldCount, len(g.out.Generated),
	)
	return nil
}

func run(cmd *cobra.Command, args []string, check bool) error {
	dir := packageDir(args)
	cfg, cfgPath, err := loadConfig(cmd, dir)
	if err != nil {
		return err
	}
	initLogging(cmd, cfg)
	defer logger.Cleanup()
	if cfgPath != "" {
		logger.ComponentLogger("lerpgen").Infow("using config", logger.FieldConfigFile, cfgPath)
	}

	g, err := generate(cmd, dir, cfg)
	if err != nil {
		return err
	}
	if check {
		return runCheck(cmd, g)
	}
	if err := write(cmd, g); err != nil {
		return err
	}
	return g.failed()
}

func runCheck(cmd *cobra.Command, g *generation) error {
	path := g.path
	if path == "-" {
		return errors.New("check needs an output file, not stdout")
	}
	if err := g.failed(); err != nil {
		return err
	}

	res, err := derive.Compare(path, g.out.Source)
	if err != nil {
		return err
	}
	if res.UpToDate {
		fmt.Fprintf(cmd.OutOrStdout(), "✓ %s is up to date\n", path)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✗ %s is out of date\n", path)
	if res.Diff != "" {
		fmt.Fprintln(cmd.OutOrStdout(), res.Diff)
	}
	return res.Err()
}

// outputPath resolves the output file relative to the package directory.
func outputPath(dir, output string, structs []*derive.Struct) string {
	switch {
	case output == "-":
		return output
	case output == "":
		return filepath.Join(dir, derive.OutputName(structs))
	case filepath.IsAbs(output):
		return output
	default:
		return filepath.Join(dir, output)
	}
}
