// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"log/slog"

	"cogentcore.org/xmastree/config"
	"cogentcore.org/xmastree/logx"
	"github.com/spf13/cobra"
)

// flags holds the values of the command line flags.
type flags struct {
	configFile string

	// config values given on the command line; zero means not given
	over config.Config

	verbose  bool
	quiet    bool
	at       float64
	realtime bool
	frameDir string
}

// NewRootCmd returns the root xmastree command with all of its subcommands.
func NewRootCmd() *cobra.Command {
	fl := &flags{}
	root := &cobra.Command{
		Use:           "xmastree",
		Short:         "generate, export and preview low-poly Christmas trees",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			switch {
			case fl.verbose:
				logx.UserLevel = slog.LevelDebug
			case fl.quiet:
				logx.UserLevel = slog.LevelWarn
			}
			logx.InitLogger(cmd.ErrOrStderr())
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&fl.configFile, "config", "c", "", "TOML config file to start from")
	pf.IntVarP(&fl.over.Triangles, "triangles", "n", 0, "number of foliage triangles (default 1000)")
	pf.Float32Var(&fl.over.TreeHeight, "height", 0, "height of the tree (default 3)")
	pf.Float32Var(&fl.over.TreeWidth, "width", 0, "radius of the tree at its base (default 1.4)")
	pf.IntVarP(&fl.over.Decorations, "decorations", "d", 0, "number of ornaments (default 10)")
	pf.Int64VarP(&fl.over.Seed, "seed", "s", 0, "random seed; 0 for a new one each run")
	pf.StringVarP(&fl.over.Output, "output", "o", "", "output file")
	pf.IntVar(&fl.over.Width, "image-width", 0, "width of preview images (default 800)")
	pf.IntVar(&fl.over.Height, "image-height", 0, "height of preview images (default 800)")
	pf.IntVar(&fl.over.Supersample, "supersample", 0, "render previews this many times larger and scale down (default 1)")
	pf.IntVar(&fl.over.Frames, "frames", 0, "number of frames to animate (default 120)")
	pf.IntVar(&fl.over.FPS, "fps", 0, "frames per second of the animation (default 60)")
	pf.BoolVarP(&fl.verbose, "verbose", "v", false, "show debug messages")
	pf.BoolVarP(&fl.quiet, "quiet", "q", false, "only show warnings and errors")

	root.AddCommand(
		&cobra.Command{
			Use:   "stats",
			Short: "print the sizes of the generated meshes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := fl.load(cmd, args)
				if err != nil {
					return err
				}
				return Stats(c, cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "export [file]",
			Short: "export the scene as .obj, .yaml, or an image",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := fl.load(cmd, args)
				if err != nil {
					return err
				}
				return Export(c)
			},
		},
		&cobra.Command{
			Use:   "config [file]",
			Short: "save the resulting config as a TOML file",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := fl.load(cmd, nil)
				if err != nil {
					return err
				}
				fn := "xmastree.toml"
				if len(args) > 0 {
					fn = args[0]
				}
				if err := c.Save(fn); err != nil {
					return err
				}
				logx.PrintlnInfo(cmd.OutOrStdout(), logx.SuccessColor("saved config to "+fn))
				return nil
			},
		},
	)

	preview := &cobra.Command{
		Use:   "preview [file]",
		Short: "render one frame of the animation to an image",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := fl.load(cmd, args)
			if err != nil {
				return err
			}
			return Preview(c, fl.at)
		},
	}
	preview.Flags().Float64Var(&fl.at, "at", 0, "time of the frame in seconds")

	animate := &cobra.Command{
		Use:   "animate",
		Short: "run the render loop without a window, printing each frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := fl.load(cmd, args)
			if err != nil {
				return err
			}
			return Animate(cmd.Context(), c, cmd.OutOrStdout(), fl.realtime, fl.frameDir)
		},
	}
	animate.Flags().BoolVar(&fl.realtime, "realtime", false, "wait for each frame instead of computing frame times")
	animate.Flags().StringVar(&fl.frameDir, "frame-dir", "", "directory to save every frame in")

	watch := &cobra.Command{
		Use:   "watch",
		Short: "export the scene again every time the config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if fl.configFile == "" {
				return fmt.Errorf("watch: a config file must be given with --config")
			}
			return Watch(cmd.Context(), fl.configFile, func(c *config.Config) error {
				return fl.apply(cmd, c, nil)
			})
		},
	}
	root.AddCommand(preview, animate, watch)
	return root
}

// load returns the config of the config file, or the default config,
// with the command line values applied.
func (fl *flags) load(cmd *cobra.Command, args []string) (*config.Config, error) {
	c := config.New()
	if fl.configFile != "" {
		var err error
		c, err = config.Open(fl.configFile)
		if err != nil {
			return nil, err
		}
	}
	if err := fl.apply(cmd, c, args); err != nil {
		return nil, err
	}
	return c, nil
}

// apply applies the command line values to the given config. A file
// argument sets the output file.
func (fl *flags) apply(cmd *cobra.Command, c *config.Config, args []string) error {
	if err := c.Merge(&fl.over); err != nil {
		return err
	}
	// zero values are not merged, but zero counts are valid
	fs := cmd.Flags()
	if fs.Changed("triangles") {
		c.Triangles = fl.over.Triangles
	}
	if fs.Changed("decorations") {
		c.Decorations = fl.over.Decorations
	}
	if len(args) > 0 {
		c.Output = args[0]
	}
	return c.Validate()
}
