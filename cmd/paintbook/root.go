package main

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/gogpu/paintbook"
	"github.com/gogpu/paintbook/tour"
)

// options holds the persistent flag values.
type options struct {
	out     string
	size    int
	seed    uint64
	verbose bool
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.out, "out", "o", tour.DefaultOutputDir, "directory the PNG files are written to (must exist)")
	fs.IntVar(&o.size, "size", tour.DefaultSize, "canvas side in pixels")
	fs.Uint64Var(&o.seed, "seed", 0, "seed for the random demos (unseeded when not set)")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log debug records")
}

// config builds the tour configuration. The seed only applies when the
// flag was given explicitly.
func (o *options) config(fs *pflag.FlagSet) tour.Config {
	opts := []tour.Option{tour.WithOutputDir(o.out), tour.WithSize(o.size)}
	if fs.Changed("seed") {
		opts = append(opts, tour.WithSeed(o.seed))
	}
	return tour.NewConfig(opts...)
}

func (o *options) setupLogging(w io.Writer) {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	paintbook.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "paintbook",
		Short: "Render the paintbook drawing demos",
		Long: `paintbook draws a set of small pictures that exercise surfaces, paths,
strokes, gradients, surface patterns, compositing operators and text, and
writes each one to <out>/<name>.png.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			o.setupLogging(cmd.ErrOrStderr())
		},
	}
	o.addFlags(root.PersistentFlags())

	root.AddCommand(newRunCmd(o), newListCmd())
	return root
}

func newRunCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run [demo...]",
		Short: "Render demos to PNG files (all when none are named)",
		Args:  cobra.ArbitraryArgs,
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return tour.Names(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := o.config(cmd.Flags())
			if len(args) == 0 {
				return tour.RunAll(cfg)
			}
			return tour.RunNames(cfg, args...)
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available demos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, d := range tour.Demos() {
				fmt.Fprintf(tw, "%s\t%s\n", d.Name, d.Description)
			}
			return tw.Flush()
		},
	}
}
