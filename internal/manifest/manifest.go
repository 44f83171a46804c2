// Package manifest loads the channel manifest: a YAML file naming the
// channel being assembled and the spreadsheet sources feeding it. The
// document is validated against a JSON schema before use; a manifest that
// fails validation aborts the run.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

// Manifest describes one channel build.
type Manifest struct {
	Channel Channel `yaml:"channel"`
	Sources Sources `yaml:"sources"`
}

// Channel holds the metadata published with the assembled channel.
type Channel struct {
	Name            string `yaml:"name"`
	SourceID        string `yaml:"source_id"`
	Domain          string `yaml:"domain"`
	Language        string `yaml:"language"`
	Description     string `yaml:"description"`
	Thumbnail       string `yaml:"thumbnail"`
	CopyrightHolder string `yaml:"copyright_holder"`
}

// Sources lists the input workbooks. Assessment banks are typically split
// per language or subject, so both lists accept any number of entries.
type Sources struct {
	Videos      []Source `yaml:"videos"`
	Assessments []Source `yaml:"assessments"`
}

// Source is one input workbook. Language and Subject are informational
// notes for per-language/per-subject bank files; the rows themselves carry
// the authoritative values.
type Source struct {
	Path     string `yaml:"path"`
	Language string `yaml:"language"`
	Subject  string `yaml:"subject"`
}

const schema = `{
  "type": "object",
  "required": ["channel", "sources"],
  "properties": {
    "channel": {
      "type": "object",
      "required": ["name", "source_id", "domain", "language"],
      "properties": {
        "name": {"type": "string", "minLength": 1},
        "source_id": {"type": "string", "minLength": 1},
        "domain": {"type": "string", "minLength": 1},
        "language": {"type": "string", "minLength": 1},
        "description": {"type": "string"},
        "thumbnail": {"type": "string"},
        "copyright_holder": {"type": "string"}
      }
    },
    "sources": {
      "type": "object",
      "required": ["videos"],
      "properties": {
        "videos": {
          "type": "array",
          "minItems": 1,
          "items": {"$ref": "#/definitions/source"}
        },
        "assessments": {
          "type": "array",
          "items": {"$ref": "#/definitions/source"}
        }
      }
    }
  },
  "definitions": {
    "source": {
      "type": "object",
      "required": ["path"],
      "properties": {
        "path": {"type": "string", "minLength": 1},
        "language": {"type": "string"},
        "subject": {"type": "string"}
      }
    }
  }
}`

// Load reads and validates the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("invalid manifest %s: %s", path, strings.Join(msgs, "; "))
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}
