package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/buransh/buransh/host"
)

func main() {
	configPath := flag.String("config", "buransh.toml", "path to the optional config file")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	opts, err := host.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Invalid config", slog.Any("error", err))
		os.Exit(1)
	}

	if err := host.Run(opts); err != nil {
		slog.Error("Host loop failed", slog.Any("error", err))
		os.Exit(1)
	}
}
