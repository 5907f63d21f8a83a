// Command youtube-scraper serves channel video listings scraped from
// public YouTube pages, without an API key.
package main

import (
	"net/http"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Jarvinbai/YouTube-Channel-Scraper-API/internal/app"
	"github.com/Jarvinbai/YouTube-Channel-Scraper-API/internal/youtube"
)

// Options is the full flag/env surface of the service.
type Options struct {
	Addr  string `long:"addr" env:"YTS_ADDR" default:":8000" description:"bind address"`
	Debug bool   `long:"debug" env:"YTS_DEBUG" description:"enable debug logging"`
}

func main() {
	_ = godotenv.Load()

	var opts Options
	if _, err := flags.Parse(&opts); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}).With().Timestamp().Logger()
	if opts.Debug {
		log = log.Level(zerolog.DebugLevel)
	} else {
		log = log.Level(zerolog.InfoLevel)
	}

	client := youtube.New(log)
	server := app.New(client, log)

	srv := &http.Server{
		Addr:        opts.Addr,
		Handler:     server.Handler(),
		ReadTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", opts.Addr).Msg("YouTube Channel Scraper API listening")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("server failed")
	}
}
