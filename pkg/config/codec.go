package config

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Codec converts between file content and a GenerationConfig.
//
// Decode must leave fields that are absent from data untouched and ignore
// keys it does not know. Errors are returned as produced by the underlying
// parser so their position and field details reach the user.
type Codec interface {
	Name() string
	Decode(data []byte, cfg *GenerationConfig) error
	Encode(cfg *GenerationConfig) ([]byte, error)
}

var (
	// JSON decodes and encodes plain JSON documents.
	JSON Codec = jsonCodec{}

	// YAML decodes and encodes YAML mapping documents.
	YAML Codec = yamlCodec{}

	// JSONC accepts JSON with comments and trailing commas, and encodes
	// plain JSON.
	JSONC Codec = jsoncCodec{}
)

type jsonCodec struct{}

func (jsonCodec) Name() string { return "json" }

func (jsonCodec) Decode(data []byte, cfg *GenerationConfig) error {
	return json.Unmarshal(data, cfg)
}

func (jsonCodec) Encode(cfg *GenerationConfig) ([]byte, error) {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

type yamlCodec struct{}

func (yamlCodec) Name() string { return "yaml" }

func (yamlCodec) Decode(data []byte, cfg *GenerationConfig) error {
	// An empty document leaves cfg untouched
	return yaml.Unmarshal(data, cfg)
}

func (yamlCodec) Encode(cfg *GenerationConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type jsoncCodec struct{}

func (jsoncCodec) Name() string { return "jsonc" }

func (jsoncCodec) Decode(data []byte, cfg *GenerationConfig) error {
	return json.Unmarshal(jsonc.ToJSON(data), cfg)
}

func (jsoncCodec) Encode(cfg *GenerationConfig) ([]byte, error) {
	return jsonCodec{}.Encode(cfg)
}
