// Package config loads the page controller settings: element ids, endpoints,
// timings and user-visible labels.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every setting of the page controller.
type Config struct {
	LogLevel       string        `yaml:"log_level"`
	BaseURL        string        `yaml:"base_url"`
	Elements       Elements      `yaml:"elements"`
	Endpoints      Endpoints     `yaml:"endpoints"`
	TickInterval   time.Duration `yaml:"tick_interval"`
	PulseDelay     time.Duration `yaml:"pulse_delay"`
	PulseScale     float64       `yaml:"pulse_scale"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	Labels         Labels        `yaml:"labels"`
}

// Elements holds the ids of the DOM elements the controller writes to.
type Elements struct {
	Counter      string `yaml:"counter"`
	CurrentTime  string `yaml:"current_time"`
	ServerTime   string `yaml:"server_time"`
	Modal        string `yaml:"modal"`
	ModalContent string `yaml:"modal_content"`
}

// Endpoints holds the paths of the remote time and info endpoints.
type Endpoints struct {
	Time string `yaml:"time"`
	Info string `yaml:"info"`
}

// Labels holds the user-visible strings.
type Labels struct {
	Fetching         string `yaml:"fetching"`
	ClientTimeSuffix string `yaml:"client_time_suffix"`
	Unknown          string `yaml:"unknown"`
	ServerHeading    string `yaml:"server_heading"`
	ServerVersion    string `yaml:"server_version"`
	ServerTime       string `yaml:"server_time"`
	ClientHeading    string `yaml:"client_heading"`
	UserAgent        string `yaml:"user_agent"`
	Language         string `yaml:"language"`
	Platform         string `yaml:"platform"`
	Resolution       string `yaml:"resolution"`
	UnavailableNote  string `yaml:"unavailable_note"`
}

// Default returns the embedded defaults. It panics only if the embedded file is
// broken, which the package tests rule out.
func Default() Config {
	cfg, err := Load(nil)
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load applies the YAML overlay on top of the embedded defaults and validates
// the result. A nil or blank overlay yields the defaults.
func Load(overlay []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultsYAML, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse defaults: %w", err)
	}

	if len(bytes.TrimSpace(overlay)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(overlay))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first setting the controller cannot run with.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval)
	}
	if c.PulseDelay <= 0 {
		return fmt.Errorf("pulse_delay must be positive, got %s", c.PulseDelay)
	}
	if c.PulseScale <= 0 {
		return fmt.Errorf("pulse_scale must be positive, got %g", c.PulseScale)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("request_timeout must not be negative, got %s", c.RequestTimeout)
	}

	required := map[string]string{
		"elements.counter":       c.Elements.Counter,
		"elements.current_time":  c.Elements.CurrentTime,
		"elements.server_time":   c.Elements.ServerTime,
		"elements.modal":         c.Elements.Modal,
		"elements.modal_content": c.Elements.ModalContent,
		"endpoints.time":         c.Endpoints.Time,
		"endpoints.info":         c.Endpoints.Info,
	}
	for key, v := range required {
		if v == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}
	return nil
}

// Level returns the parsed log level. Validate guarantees it parses.
func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
