package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"text/tabwriter"

	"recycleit/internal/config"
	"recycleit/internal/recycler"
	"recycleit/internal/types"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Format represents command output encoding.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat validates format values.
func ParseFormat(v string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(v))) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q", v)
	}
}

// Dependencies are the collaborators the command tree needs.
type Dependencies struct {
	NewService func(cfg *config.Config, logger *slog.Logger) recycler.Service
	Version    string
}

func defaultService(cfg *config.Config, logger *slog.Logger) recycler.Service {
	return recycler.NewRecyclerService(cfg, logger)
}

// Execute runs the CLI and returns the process exit code.
func Execute(ctx context.Context, args []string, deps Dependencies, stdout, stderr io.Writer) int {
	root := NewRootCommand(deps)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

// NewRootCommand builds the complete command tree.
func NewRootCommand(deps Dependencies) *cobra.Command {
	version := deps.Version
	if version == "" {
		version = "dev"
	}

	root := &cobra.Command{
		Use:           "recyclers",
		Short:         "Find e-waste recycling facilities near a location.",
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	root.AddCommand(newNearbyCommand(deps))

	return root
}

type nearbyFlags struct {
	lat         float64
	lon         float64
	radius      int
	format      string
	overpassURL string
	verbose     bool
}

func newNearbyCommand(deps Dependencies) *cobra.Command {
	flags := nearbyFlags{}

	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "List recyclers around a point.",
		Long: "List recyclers around a point. Without --lat and --lon the configured " +
			"default point is used.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := ParseFormat(flags.format)
			if err != nil {
				return err
			}

			latSet := cmd.Flags().Changed("lat")
			lonSet := cmd.Flags().Changed("lon")
			if latSet != lonSet {
				return errors.New("--lat and --lon must be provided together")
			}
			var point *types.Coords
			if latSet {
				p := types.NewCoords(flags.lat, flags.lon)
				if err := p.Validate(); err != nil {
					return err
				}
				point = &p
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if flags.overpassURL != "" {
				cfg.Discovery.OverpassURL = flags.overpassURL
			}
			if flags.verbose {
				cfg.Log.Level = "debug"
			}

			logger := cfg.NewLoggerTo(cmd.ErrOrStderr())

			svc := deps.NewService(cfg, logger)
			recyclers, err := svc.Discover(cmd.Context(), point, flags.radius)
			if err != nil {
				return err
			}

			return render(cmd.OutOrStdout(), recyclers, format)
		},
	}

	cmd.Flags().Float64Var(&flags.lat, "lat", 0, "Latitude in decimal degrees.")
	cmd.Flags().Float64Var(&flags.lon, "lon", 0, "Longitude in decimal degrees.")
	cmd.Flags().IntVar(&flags.radius, "radius", 0, "Search radius in meters (default from config).")
	cmd.Flags().StringVarP(&flags.format, "format", "f", string(FormatTable), "Output format: table, json, or yaml.")
	cmd.Flags().StringVar(&flags.overpassURL, "overpass-url", "", "Override the Overpass interpreter endpoint.")
	cmd.Flags().BoolVar(&flags.verbose, "verbose", false, "Log upstream requests to stderr.")

	return cmd
}

func render(w io.Writer, recyclers []types.Recycler, format Format) error {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(recyclers, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case FormatYAML:
		b, err := yaml.Marshal(recyclers)
		if err != nil {
			return fmt.Errorf("marshal yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		return renderTable(w, recyclers)
	}
}

func renderTable(w io.Writer, recyclers []types.Recycler) error {
	if len(recyclers) == 0 {
		_, err := fmt.Fprintln(w, "no recyclers found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "NAME\tLATITUDE\tLONGITUDE\tCATEGORY")
	for _, r := range recyclers {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			r.Name,
			strconv.FormatFloat(r.Latitude, 'f', -1, 64),
			strconv.FormatFloat(r.Longitude, 'f', -1, 64),
			r.Category,
		)
	}
	return tw.Flush()
}
