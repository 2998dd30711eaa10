package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"pastery/internal/config"
	"pastery/internal/paste"
	"pastery/internal/transport"
	"pastery/internal/ui"
)

func main() {
	title := flag.String("title", "", "Snippet title (prefills the prompt)")
	lines := flag.String("lines", "", "Line ranges to paste instead of the whole file, e.g. 3-10,20-25")
	yes := flag.Bool("yes", false, "Do not prompt for a title")
	cfgPath := flag.String("config", "", "Config file (default $XDG_CONFIG_HOME/pastery/config.yml)")
	verbose := flag.Bool("v", false, "Log each step to stderr")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file]\n\nPastes file (or stdin) to Pastery and copies the link.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	doc, err := ui.LoadDocument(flag.Arg(0), os.Stdin, *lines)
	if err != nil {
		log.Fatal(err)
	}

	host := ui.NewTerminal(doc, ui.Options{
		Title:       *title,
		Interactive: !*yes && ui.CanPrompt(),
		Theme:       cfg.Theme,
		Stderr:      os.Stderr,
		Log:         logger,
	})
	sub := paste.NewSubmitter(cfg.Endpoint, logger,
		transport.NewNative(cfg.UserAgent),
		transport.NewCurl(cfg.Curl, cfg.UserAgent),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	out := paste.NewCommand(host, cfg, sub, logger).Run(ctx)
	stop()

	if out.State != paste.Success {
		os.Exit(1)
	}
	fmt.Println(out.URL)
}
