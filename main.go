package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	"tableskim/pkg/frame"
	"tableskim/pkg/logging"
	"tableskim/pkg/render"
	"tableskim/pkg/skim"
	_ "tableskim/pkg/stats"
)

type Configuration struct {
	InputFile string
	GroupBy   string
	JSON      bool
	Workers   int
	Verbose   bool
}

func main() {
	config := parseArguments()
	initLogging(config)

	f, err := loadFrame(config)
	if err != nil {
		log.Fatalf("Failed to load input: %v", err)
	}

	res, err := summarize(f, config)
	if err != nil {
		log.Fatalf("Failed to summarize: %v", err)
	}

	if err := writeOutput(res, config); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

// parseArguments processes command-line flags
func parseArguments() Configuration {
	var config Configuration

	flag.StringVar(&config.InputFile, "file", "", "CSV file to summarize (.zst supported)")
	flag.StringVar(&config.GroupBy, "group", "", "Comma-separated grouping columns")
	flag.BoolVar(&config.JSON, "json", false, "Emit JSON instead of the styled tables")
	flag.IntVar(&config.Workers, "workers", 0, "Worker count for parallel summarization (0 = sequential)")
	flag.BoolVar(&config.Verbose, "verbose", false, "Enable debug logging")

	flag.Parse()

	if config.InputFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	return config
}

func initLogging(config Configuration) {
	level := logging.LevelWarn
	if config.Verbose {
		level = logging.LevelDebug
	}
	logging.Init(logging.Config{Level: level, Output: os.Stderr})
}

func loadFrame(config Configuration) (*frame.Frame, error) {
	f, err := frame.Open(config.InputFile)
	if err != nil {
		return nil, err
	}
	if config.GroupBy == "" {
		return f, nil
	}

	cols := strings.Split(config.GroupBy, ",")
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return f.GroupBy(cols...)
}

func summarize(f *frame.Frame, config Configuration) (*skim.Result, error) {
	opts := []skim.Option{}
	if config.Workers > 0 {
		opts = append(opts, skim.WithWorkers(config.Workers))
	}
	return skim.Skim(context.Background(), f, opts...)
}

func writeOutput(res *skim.Result, config Configuration) error {
	if config.JSON {
		return frame.WriteJSON(os.Stdout, res)
	}
	render.Print(os.Stdout, res)
	return nil
}
