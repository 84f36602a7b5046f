package cli

import (
	"context"

	"github.com/alecthomas/kong"

	"github.com/ardnew/inuse/cli/cmd"
	"github.com/ardnew/inuse/pkg"
)

// CLI is the top-level command-line interface for inuse.
type CLI struct {
	Log   logConfig   `embed:"" group:"log"   prefix:"log-"`
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Config []string `help:"Configuration source file(s), or '-' for stdin. Bare names are searched upward from the working directory." name:"config" short:"c"`

	Threshold int `default:"4" help:"Severity escalation threshold (0=silent ... 5=strictest)." name:"threshold" short:"t"`

	List  cmd.List  `cmd:"" help:"List section names"`
	Env   cmd.Env   `cmd:"" help:"Render a section's environment variable exports"`
	Trace cmd.Trace `cmd:"" help:"Print the resolver event trace for a section"`
	Repl  cmd.Repl  `cmd:"" help:"Browse sections interactively"`

	Show cmd.Show `cmd:"" default:"withargs" help:"Show merged section(s)"`
}

// Run executes the inuse CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon completion.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	configFilePath := configPath(baseConfig)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Pre-scan for logger flags to ensure early configuration regardless of
	// flag position. TextUnmarshaler on logFormat/logLevel handles those
	// flags during normal parsing, but this early scan also catches boolean
	// flags like --log-pretty.
	cli.Log.scan(args)

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(
			[]kong.Group{cli.Log.group(), cli.Pprof.group()},
		),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		kong.ConfigureHelp(
			kong.HelpOptions{
				Compact:             true,
				Summary:             true,
				Tree:                true,
				FlagsLast:           false,
				NoAppSummary:        false,
				NoExpandSubcommands: true,
			}),
		kong.Configuration(kong.JSON, configFilePath+".json"),
		kong.Configuration(resolveConfig(baseConfig), configFilePath+".ini"),
		cli.Pprof.vars(),
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands.
	ctx = cmd.WithContext(ctx, ktx)
	ctx = cmd.WithSources(ctx, cli.Config)
	ctx = cmd.WithThreshold(ctx, cli.Threshold)

	// Finalize logger configuration with all parsed values including
	// TimeLayout and Caller which don't use TextUnmarshaler.
	cli.Log.start(ctx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start(ctx)()

	return ktx.Run(ctx, &cli)
}
