package main

import (
	"fmt"

	"github.com/aristath/quantumlab/internal/config"
	"github.com/aristath/quantumlab/internal/di"
	"github.com/aristath/quantumlab/internal/dispatcher"
	"github.com/aristath/quantumlab/internal/modules/lab"
	"github.com/aristath/quantumlab/internal/modules/quantum"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "quantumlab",
		Short: "Visualize quantum-mechanics phenomena",
		Long: `quantumlab plots double-slit interference, the probability density of a
particle in a box and a qubit state on the Bloch sphere.

Without a subcommand it shows a menu and runs the chosen simulation.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			container, err := di.Wire(cfg, cmd.OutOrStdout(), log)
			if err != nil {
				return err
			}
			return dispatcher.New(cmd.InOrStdin(), cmd.OutOrStdout(), container.Lab, log).Dispatch(cmd.Context())
		},
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRenderCmd(cfg, log),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quantumlab version %s\n", version)
		},
	}
}

func newRenderCmd(cfg *config.Config, log zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <double-slit|box|bloch|tunneling>",
		Short: "Render one simulation to an image file",
		Long: `Render one simulation straight to <out>/<name>.<format> without the menu.

The Bloch sphere arrow defaults to the illustrative superposition; pass --theta and
--phi (radians) to draw the state cos(θ/2)|0⟩ + e^{iφ} sin(θ/2)|1⟩ instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := lab.ParseKind(args[0])
			if err != nil {
				return err
			}

			out, _ := cmd.Flags().GetString("out")
			format, _ := cmd.Flags().GetString("format")
			level, _ := cmd.Flags().GetInt("level")
			theta, _ := cmd.Flags().GetFloat64("theta")
			phi, _ := cmd.Flags().GetFloat64("phi")

			fileCfg := *cfg
			fileCfg.Display = config.DisplayFile
			fileCfg.OutputDir = out
			fileCfg.Format = format
			if err := fileCfg.Validate(); err != nil {
				return err
			}

			container, err := di.Wire(&fileCfg, cmd.OutOrStdout(), log)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			switch kind {
			case lab.KindParticleInBox:
				params := quantum.DefaultBoxParams()
				params.Level = level
				return container.Lab.ParticleInBox(ctx, params)
			case lab.KindBlochSphere:
				opts := lab.BlochOptions{}
				if cmd.Flags().Changed("theta") || cmd.Flags().Changed("phi") {
					state := quantum.BlochVector(theta, phi)
					opts.State = &state
					opts.PoleLabels = true
				}
				return container.Lab.BlochSphere(ctx, opts)
			default:
				return container.Lab.Run(ctx, kind)
			}
		},
	}

	cmd.Flags().String("out", cfg.OutputDir, "Directory the figure is written to")
	cmd.Flags().String("format", cfg.Format, "Image format (svg or png)")
	cmd.Flags().Int("level", quantum.DefaultBoxParams().Level, "Quantum number n for the particle in a box")
	cmd.Flags().Float64("theta", 0, "Polar angle of the qubit state in radians")
	cmd.Flags().Float64("phi", 0, "Azimuthal phase of the qubit state in radians")

	return cmd
}
