// Package config provides configuration loading and validation for the
// matcher. Config files are JSON, checked against an embedded schema before
// unmarshalling so malformed files fail with field-level messages instead of
// a decode error.
package config

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Similarity strategy names accepted in config.
const (
	SimilarityLexical   = "lexical"
	SimilarityEmbedding = "embedding"
)

// Config represents the matcher configuration loadable from a JSON file.
// All fields are optional; missing values fall back to defaults.
type Config struct {
	Weights          *types.Weights `json:"weights,omitempty"`
	Similarity       string         `json:"similarity,omitempty" validate:"omitempty,oneof=lexical embedding"`
	ExperiencePolicy string         `json:"experience_policy,omitempty" validate:"omitempty,oneof=max first"`
	TopN             int            `json:"top_n,omitempty" validate:"gte=0"`
	MinScore         float64        `json:"min_score,omitempty" validate:"gte=0,lte=100"`
	Port             int            `json:"port,omitempty" validate:"gte=0,lte=65535"`
	APIKey           string         `json:"api_key,omitempty"`
	MaxFileSize      int64          `json:"max_file_size,omitempty" validate:"gte=0"`
}

// weightsSumTolerance is how far a custom weight profile may drift from
// summing to 1.0 before the config is rejected.
const weightsSumTolerance = 0.001

// configSchema is the JSON Schema every config file must satisfy.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "weights": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "skills": {"type": "number", "minimum": 0},
        "experience": {"type": "number", "minimum": 0},
        "semantic": {"type": "number", "minimum": 0},
        "keywords": {"type": "number", "minimum": 0}
      }
    },
    "similarity": {"type": "string", "enum": ["lexical", "embedding"]},
    "experience_policy": {"type": "string", "enum": ["max", "first"]},
    "top_n": {"type": "integer", "minimum": 0},
    "min_score": {"type": "number", "minimum": 0, "maximum": 100},
    "port": {"type": "integer", "minimum": 0, "maximum": 65535},
    "api_key": {"type": "string"},
    "max_file_size": {"type": "integer", "minimum": 0}
  }
}`

var validate = validator.New()

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() Config {
	return Config{
		Similarity:       SimilarityLexical,
		ExperiencePolicy: "max",
		TopN:             5,
		MinScore:         0,
		Port:             8080,
		MaxFileSize:      ingestion.MaxFileSize,
	}
}

// LoadConfig loads and validates configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, &LoadError{Path: path, Cause: os.ErrNotExist}
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, &LoadError{Path: path, Cause: err}
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	if err := validateAgainstSchema(data); err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validateAgainstSchema checks raw config bytes against the embedded schema
// and converts schema violations into field-level errors.
func validateAgainstSchema(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(configSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &LoadError{Path: "(schema)", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}

// Validate checks field values beyond what the schema can express.
func (c *Config) Validate() error {
	var fieldErrs []FieldError

	if err := validate.Struct(c); err != nil {
		if invalid, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range invalid {
				fieldErrs = append(fieldErrs, FieldError{
					Field:   fe.Field(),
					Message: "failed " + fe.Tag() + " validation",
				})
			}
		} else {
			return err
		}
	}

	if c.Weights != nil {
		sum := c.Weights.Skills + c.Weights.Experience + c.Weights.Semantic + c.Weights.Keywords
		if math.Abs(sum-1.0) > weightsSumTolerance {
			fieldErrs = append(fieldErrs, FieldError{
				Field:   "weights",
				Message: "weights must sum to 1.0",
			})
		}
	}

	if len(fieldErrs) > 0 {
		return &ValidationError{Errors: fieldErrs}
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. CLI flags are applied on top of the result.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Weights == nil {
		result.Weights = defaults.Weights
	}
	if result.Similarity == "" {
		result.Similarity = defaults.Similarity
	}
	if result.ExperiencePolicy == "" {
		result.ExperiencePolicy = defaults.ExperiencePolicy
	}
	if result.TopN == 0 {
		result.TopN = defaults.TopN
	}
	if result.MinScore == 0 {
		result.MinScore = defaults.MinScore
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.MaxFileSize == 0 {
		result.MaxFileSize = defaults.MaxFileSize
	}

	return result
}

// ResolveWeights returns the configured weight profile, or the default
// preset when none is set.
func (c *Config) ResolveWeights() types.Weights {
	if c.Weights != nil {
		return *c.Weights
	}
	return types.DefaultWeights()
}
