package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

type options struct {
	configPath   string
	coordinates  string
	adjacencies  string
	start        string
	goal         string
	geojson      string
	graphGeoJSON string
	noColor      bool
	verbose      bool
}

func parseFlags(args []string) (*options, *flag.FlagSet, error) {
	opts := &options{}
	fsFlags := flag.NewFlagSet("city-router", flag.ContinueOnError)
	fsFlags.StringVar(&opts.configPath, "config", DefaultConfigPath, "Path to config file")
	fsFlags.StringVar(&opts.coordinates, "coordinates", "", "Coordinate table (NAME X Y per line)")
	fsFlags.StringVar(&opts.adjacencies, "adjacencies", "", "Adjacency table (NAME NEIGHBOR... per line)")
	fsFlags.StringVar(&opts.start, "start", "", "Start location; prompts when empty")
	fsFlags.StringVar(&opts.goal, "goal", "", "Goal location; prompts when empty")
	fsFlags.StringVar(&opts.geojson, "geojson", "", "Write the route as GeoJSON to this path")
	fsFlags.StringVar(&opts.graphGeoJSON, "graph-geojson", "", "Write the whole network as GeoJSON to this path")
	fsFlags.BoolVar(&opts.noColor, "no-color", false, "Disable styled output")
	fsFlags.BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")

	if err := fsFlags.Parse(args); err != nil {
		return nil, nil, err
	}
	return opts, fsFlags, nil
}

// loadConfig falls back to defaults only when the default config file is absent
func loadConfig(opts *options, set *flag.FlagSet) (*Config, error) {
	explicit := false
	set.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	cfg, err := LoadConfig(opts.configPath)
	if err != nil {
		if explicit || !IsCode(err, CodeNotFound) {
			return nil, err
		}
		slog.Debug("no config file, using defaults", "path", opts.configPath)
		cfg = DefaultConfig()
	}

	if opts.coordinates != "" {
		cfg.Data.Coordinates = opts.coordinates
	}
	if opts.adjacencies != "" {
		cfg.Data.Adjacencies = opts.adjacencies
	}
	if opts.geojson != "" {
		cfg.Output.GeoJSON = opts.geojson
	}
	if opts.noColor {
		off := false
		cfg.Output.Color = &off
	}
	return cfg, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, set, err := parseFlags(args)
	if err != nil {
		return err
	}

	logLevel := slog.LevelInfo
	if opts.verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	cfg, err := loadConfig(opts, set)
	if err != nil {
		return err
	}

	graph, err := LoadGraph(cfg.Data.Coordinates, cfg.Data.Adjacencies, cfg.Data.Directed)
	if err != nil {
		return err
	}

	if opts.graphGeoJSON != "" {
		if err := WriteGeoJSON(opts.graphGeoJSON, GraphFeatureCollection(graph)); err != nil {
			return err
		}
	}

	prompt := NewPrompt(stdin, stdout, graph, cfg)

	start, err := resolveOrAsk(prompt, opts.start, "Start")
	if err != nil {
		return err
	}
	goal, err := resolveOrAsk(prompt, opts.goal, "Goal")
	if err != nil {
		return err
	}

	result, err := AStar(graph, start, goal)
	if err != nil {
		return err
	}
	slog.Debug("search finished", "found", result.Found, "expanded", result.Expanded, "cost", result.Cost)

	prompt.Report(result, cfg.Output.Separator)

	if cfg.Output.GeoJSON != "" && result.Found {
		if err := WriteGeoJSON(cfg.Output.GeoJSON, RouteFeatureCollection(graph, result)); err != nil {
			return err
		}
	}
	return nil
}

// resolveOrAsk uses a location given on the command line, or prompts for one
func resolveOrAsk(prompt *Prompt, given, label string) (string, error) {
	if given == "" {
		return prompt.Ask(label)
	}
	name, ok := prompt.Resolve(given)
	if !ok {
		return "", NewError(CodeUnknownNode, msgUnrecognized).WithContext(CtxNode, given)
	}
	return name, nil
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
