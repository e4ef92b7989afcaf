package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gardar/svgtext/pkg/svgtext"
)

type yamlConfig struct {
	Extractor struct {
		Command string   `yaml:"command"`
		Args    []string `yaml:"args"`
	} `yaml:"extractor"`
	ElementID       string   `yaml:"element_id"`
	Attribute       string   `yaml:"attribute"`
	Origin          string   `yaml:"origin"`
	AspectTolerance *float64 `yaml:"aspect_tolerance"`
	RefuseExisting  bool     `yaml:"refuse_existing"`
	CheckPDF        bool     `yaml:"check_pdf"`
}

// loadConfig reads a YAML file and layers it over the default config
func loadConfig(path string) (svgtext.Config, error) {
	cfg := svgtext.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if yc.Extractor.Command != "" {
		cfg.Extractor.Command = yc.Extractor.Command
	}
	if yc.Extractor.Args != nil {
		cfg.Extractor.Args = yc.Extractor.Args
	}
	if yc.ElementID != "" {
		cfg.ElementID = yc.ElementID
	}
	if yc.Attribute != "" {
		cfg.Attribute = yc.Attribute
	}
	if yc.Origin != "" {
		cfg.Origin = svgtext.OriginPolicy(yc.Origin)
	}
	if yc.AspectTolerance != nil {
		cfg.AspectTolerance = *yc.AspectTolerance
	}
	cfg.RefuseExisting = yc.RefuseExisting
	cfg.CheckPDF = yc.CheckPDF

	return cfg, cfg.Validate()
}
