package landscape

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mitchellh/mapstructure"
)

// DecodeConfig decodes a generic document (as produced by json.Unmarshal into
// map[string]any) into a Config. Unknown keys are rejected.
func DecodeConfig(raw map[string]any) (Config, error) {
	var cfg Config
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &cfg,
		ErrorUnused: true,
	})
	if err != nil {
		return Config{}, fmt.Errorf("DecodeConfig: %w", err)
	}
	if err = dec.Decode(raw); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	return cfg, nil
}

// LoadConfig reads a single JSON document from r and decodes it with
// DecodeConfig. Anything after the document is rejected.
func LoadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}
	var raw map[string]any
	if err = json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}

	return DecodeConfig(raw)
}

// Landscape builds the configured landscape, or the Beartooth demo when no
// grid is configured.
func (c Config) Landscape() (*Landscape, error) {
	if c.Grid == nil {
		return Beartooth(), nil
	}

	return New(c.Grid)
}
