package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/map-protocol/strvals/internal/headertable"
)

type fileHeader struct {
	Name    string   `toml:"name"`
	Value   *string  `toml:"value"`
	Values  []string `toml:"values"`
	Charset string   `toml:"charset"`
}

type fileConfig struct {
	Charset string       `toml:"charset"`
	Headers []fileHeader `toml:"header"`
}

func loadTableConfig(path string) (headertable.Config, error) {
	cfg := headertable.Config{Charset: headertable.DefaultCharset}

	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return headertable.Config{}, fmt.Errorf("load header table: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return headertable.Config{}, fmt.Errorf("load header table: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("charset") {
		if cs := strings.TrimSpace(raw.Charset); cs != "" {
			cfg.Charset = cs
		}
	}

	cfg.Headers = make([]headertable.HeaderConfig, 0, len(raw.Headers))
	for _, h := range raw.Headers {
		cfg.Headers = append(cfg.Headers, headertable.HeaderConfig{
			Name:    h.Name,
			Value:   h.Value,
			Values:  h.Values,
			Charset: h.Charset,
		})
	}
	return cfg, nil
}
