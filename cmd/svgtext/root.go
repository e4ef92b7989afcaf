package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gardar/svgtext/pkg/svgtext"
)

type options struct {
	configPath     string
	refuseExisting bool
	wordsPath      string
	verbose        bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "svgtext <input.svg> <input.pdf> <output.svg>",
		Short: "Embed searchable word positions from a PDF page into its SVG rendering",
		Long: `svgtext extracts word bounding boxes from a PDF page with pdftotext -bbox,
rescales them into the SVG's viewBox and injects them as a hidden
<g id="search-data" data-words='[...]'> element before the closing </svg> tag.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Argument errors print usage; failures past this point do not.
			cmd.SilenceUsage = true
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to the config YAML file")
	cmd.Flags().BoolVar(&opts.refuseExisting, "refuse-existing", false, "Fail if the SVG already contains an element with the search data id")
	cmd.Flags().StringVar(&opts.wordsPath, "words", "", "Path to save the mapped words as JSON for debugging purposes")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging and cross-check the PDF page count")

	return cmd
}

func run(cmd *cobra.Command, args []string, opts options) error {
	svgPath, pdfPath, outPath := args[0], args[1], args[2]

	cfg := svgtext.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := loadConfig(opts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if opts.refuseExisting {
		cfg.RefuseExisting = true
	}
	if opts.verbose {
		cfg.CheckPDF = true
	}
	cfg.Logger = newLogger(opts.verbose)

	res, err := svgtext.InjectFile(cmd.Context(), svgPath, pdfPath, outPath, cfg)
	if err != nil {
		return err
	}

	if opts.wordsPath != "" {
		wordsJSON, err := json.MarshalIndent(res.Words, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to convert words to JSON: %w", err)
		}
		if err := os.WriteFile(opts.wordsPath, wordsJSON, 0o644); err != nil {
			return fmt.Errorf("failed to write words JSON: %w", err)
		}
		cfg.Logger.Debug("words JSON saved", "path", opts.wordsPath)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "  %d words, scale %s → %s\n", len(res.Words), res.Scale, outPath)
	return nil
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
