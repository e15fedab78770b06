package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/loom-ui/loom/pkg/demo"
	"github.com/loom-ui/loom/pkg/el"
	"github.com/loom-ui/loom/pkg/hooks"
	"github.com/loom-ui/loom/pkg/host"
)

func renderCmd() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo page once and print it",
		Long: `Render mounts the demo page, settles its effects (including the
document title effect), prints the result to stdout, and unmounts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

			var v *host.View
			v = host.NewView(host.ComponentFunc(func(ctx *hooks.Ctx) *el.VNode {
				return demo.Page(v)(ctx)
			}), host.WithLogger(logger))

			frame, err := v.Settle(16)
			if err != nil {
				return err
			}
			title := v.Title()
			if err := v.Unmount(); err != nil {
				return err
			}

			if full {
				writePage(os.Stdout, title, frame.HTML)
				return nil
			}
			fmt.Println(frame.HTML)
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "print the full HTML document instead of the fragment")
	return cmd
}
