package main

import (
	"flag"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/map-protocol/strvals/internal/headertable"
	"github.com/map-protocol/strvals/internal/logging"
)

func main() {
	configPath := flag.String("config", "cmd/strvals/config.toml", "header table config path")
	dump := flag.Bool("hex", false, "dump the encoded bytes of each header")
	asJSON := flag.Bool("json", false, "print the table as JSON")
	flag.Parse()

	logger := logging.Configure("strvals", logging.ProfileRuntime)

	cfg, err := loadTableConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", *configPath).Msg("config")
	}
	table, err := headertable.Build(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("build header table")
	}
	logger.Info().
		Int("headers", table.Len()).
		Str("encoded", humanize.Bytes(uint64(table.Size()))).
		Str("charset", cfg.Charset).
		Msg("header table ready")
	for _, e := range table.Entries() {
		logger.Debug().
			Str("name", e.Name).
			Str("kind", e.Value.Values().Kind().String()).
			Int("count", e.Value.Values().Len()).
			Msg("header")
	}

	if *asJSON {
		err = table.WriteJSON(os.Stdout)
	} else {
		err = table.WriteText(os.Stdout, *dump)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("write")
	}
}
