// Package hypr talks to a running Hyprland instance through hyprctl.
package hypr

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"

	"github.com/rs/zerolog"
)

// Bind is a single keybinding as reported by `hyprctl binds -j`.
type Bind struct {
	ModMask     int    `json:"modmask"`
	Key         string `json:"key"`
	Keycode     int    `json:"keycode"`
	Dispatcher  string `json:"dispatcher"`
	Arg         string `json:"arg"`
	Submap      string `json:"submap"`
	Description string `json:"description"`
}

// KeyName returns the printable key for the bind. Keycode-only binds
// (empty key field, nonzero keycode) format as "code:<n>" the way
// hyprctl prints them.
func (b Bind) KeyName() string {
	if b.Key == "" && b.Keycode != 0 {
		return fmt.Sprintf("code:%d", b.Keycode)
	}
	return b.Key
}

// Source fetches binds from hyprctl, with an optional fixture fallback
// for development and environments without a compositor.
type Source struct {
	Hyprctl string // binary name or path
	Fixture string // optional JSON file used when hyprctl fails
	log     zerolog.Logger
}

// NewSource creates a bind source. An empty hyprctl path defaults to
// "hyprctl" from PATH.
func NewSource(hyprctl, fixture string, log zerolog.Logger) *Source {
	if hyprctl == "" {
		hyprctl = "hyprctl"
	}
	return &Source{Hyprctl: hyprctl, Fixture: fixture, log: log}
}

// Binds returns the active keybinding table. Source failures (missing
// binary, non-zero exit, malformed JSON) degrade to the fixture file
// when one is configured, otherwise to an empty slice; they are logged
// but never surface as errors.
func (s *Source) Binds(ctx context.Context) []Bind {
	out, err := exec.CommandContext(ctx, s.Hyprctl, "binds", "-j").Output()
	if err == nil {
		binds, derr := decode(out)
		if derr == nil {
			return binds
		}
		err = derr
	}

	s.log.Warn().Err(err).Str("hyprctl", s.Hyprctl).Msg("could not query hyprctl binds")

	if s.Fixture == "" {
		return nil
	}
	binds, ferr := LoadFixture(s.Fixture)
	if ferr != nil {
		s.log.Warn().Err(ferr).Str("fixture", s.Fixture).Msg("could not load bind fixture")
		return nil
	}
	s.log.Info().Str("fixture", s.Fixture).Int("binds", len(binds)).Msg("using fixture binds")
	return binds
}

// LoadFixture reads binds from a JSON file in `hyprctl binds -j` format.
func LoadFixture(path string) ([]Bind, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return decode(data)
}

// FilterSubmap keeps only binds belonging to the named submap.
func FilterSubmap(bindList []Bind, submap string) []Bind {
	var out []Bind
	for _, b := range bindList {
		if b.Submap == submap {
			out = append(out, b)
		}
	}
	return out
}

func decode(data []byte) ([]Bind, error) {
	var binds []Bind
	if err := json.Unmarshal(data, &binds); err != nil {
		return nil, fmt.Errorf("parse binds JSON: %w", err)
	}
	return binds, nil
}
