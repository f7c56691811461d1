package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/opennorth/geotrafic-to-open511/config"
	"github.com/opennorth/geotrafic-to-open511/converter"
	"github.com/opennorth/geotrafic-to-open511/formatter"
	"github.com/opennorth/geotrafic-to-open511/geotrafic"
	"github.com/opennorth/geotrafic-to-open511/internal"
	"github.com/opennorth/geotrafic-to-open511/postgis"
)

func main() {
	configPath := flag.String("config", "", "path to config.yml (built-in defaults apply when omitted)")
	format := flag.String("format", "xml", "output format: xml|json")
	feedURL := flag.String("url", "", "fetch the feed from this URL instead of reading a file")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	log, err := internal.NewLogger(*debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.LoadAppConfig(*configPath)
	if err != nil {
		log.Fatalw("loading configuration", "error", err)
	}

	ctx := context.Background()

	var doc *geotrafic.Document
	switch {
	case *feedURL != "" || (flag.NArg() == 0 && cfg.Feed.URL != ""):
		url := *feedURL
		if url == "" {
			url = cfg.Feed.URL
		}
		doc, err = geotrafic.NewClient().Fetch(ctx, url)
		if err != nil {
			log.Fatalw("fetching feed", "url", url, "error", err)
		}
	case flag.NArg() == 1:
		data, readErr := os.ReadFile(flag.Arg(0))
		if readErr != nil {
			log.Fatalw("reading feed file", "path", flag.Arg(0), "error", readErr)
		}
		doc, err = geotrafic.ParseDocument(data)
		if err != nil {
			log.Fatalw("parsing feed file", "path", flag.Arg(0), "error", err)
		}
	default:
		log.Fatal("usage: geotrafic-to-open511 [-format xml|json] [-url URL | FEED_FILE]")
	}

	reproj, err := postgis.NewReprojector(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Fatalw("connecting to postgis", "error", err)
	}
	defer reproj.Close()

	conv := converter.NewConverter(cfg, reproj, log)
	out := conv.ConvertDocument(ctx, doc)

	builder := formatter.NewDocumentBuilder()
	var payload []byte
	switch *format {
	case "json":
		payload, err = builder.BuildJSON(out)
	case "xml":
		payload, err = builder.BuildXML(out)
	default:
		log.Fatalw("unknown output format", "format", *format)
	}
	if err != nil {
		log.Fatalw("serializing document", "format", *format, "error", err)
	}

	if _, err := os.Stdout.Write(append(payload, '\n')); err != nil {
		log.Fatalw("writing output", "error", err)
	}
}
