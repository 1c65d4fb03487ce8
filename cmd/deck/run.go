package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/deck"
	"github.com/spf13/cobra"
)

type runOptions struct {
	config string
	script string
	width  int
	height int
	debug  bool
}

func newRunCmd(root *rootOptions) *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the deck in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := root.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			cfg, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			d, err := deck.NewDeck(cfg, deck.WithLogger(logger))
			if err != nil {
				return err
			}
			if opts.script != "" {
				data, err := os.ReadFile(opts.script)
				if err != nil {
					return fmt.Errorf("read script: %w", err)
				}
				s, err := deck.LoadScript(data)
				if err != nil {
					return err
				}
				d.SetScript(s)
			}
			logger.Info("starting deck", "title", cfg.Title, "slides", len(cfg.Slides), "width", cfg.Width, "height", cfg.Height)
			return deck.Run(d)
		},
	}
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "deck config file (TOML); defaults are used when empty")
	cmd.Flags().StringVar(&opts.script, "script", "", "JSON input script to play back")
	cmd.Flags().IntVar(&opts.width, "width", 0, "override the window width")
	cmd.Flags().IntVar(&opts.height, "height", 0, "override the window height")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "show the debug overlay")
	return cmd
}

// loadConfig reads the config file, or the defaults, and applies the flag
// overrides that were set.
func (o *runOptions) loadConfig(cmd *cobra.Command) (deck.Config, error) {
	cfg := deck.DefaultConfig()
	if o.config != "" {
		var err error
		if cfg, err = deck.LoadConfig(o.config); err != nil {
			return deck.Config{}, err
		}
	}
	if cmd.Flags().Changed("width") {
		cfg.Width = o.width
	}
	if cmd.Flags().Changed("height") {
		cfg.Height = o.height
	}
	if o.debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return deck.Config{}, err
	}
	return cfg, nil
}
