package tokenio

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"

	lexerrors "github.com/aledsdavies/eslex/pkgs/errors"
)

// StreamSchema describes the JSON form of a Stream
const StreamSchema = `{
  "type": "object",
  "required": ["version", "form", "tokens"],
  "additionalProperties": false,
  "properties": {
    "version": {"type": "string", "format": "semver"},
    "form": {"enum": ["raw", "final"]},
    "tokens": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["kind", "value"],
        "additionalProperties": false,
        "properties": {
          "kind": {"type": "string", "minLength": 1},
          "text": {"type": "string"},
          "value": {"type": ["string", "number"]},
          "range": {
            "type": "array",
            "items": {"type": "integer", "minimum": 0},
            "minItems": 2,
            "maxItems": 2
          }
        }
      }
    }
  }
}`

const schemaURL = "eslex-stream.json"

var compiledSchema = sync.OnceValue(func() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if compiler.Formats == nil {
		compiler.Formats = make(map[string]func(interface{}) bool)
	}
	compiler.Formats["semver"] = func(v interface{}) bool {
		s, ok := v.(string)
		if !ok {
			return true // Type validation happens separately
		}
		return semver.IsValid(canonicalVersion(s))
	}
	if err := compiler.AddResource(schemaURL, strings.NewReader(StreamSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile(schemaURL)
})

// canonicalVersion adds the "v" prefix semver expects, so "1.2.3" is accepted
func canonicalVersion(s string) string {
	if !strings.HasPrefix(s, "v") {
		return "v" + s
	}
	return s
}

// ValidateJSON checks that data is a well-formed JSON token stream dump
// written by a compatible version.
func ValidateJSON(data []byte) error {
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return lexerrors.NewSchemaError("token dump is not valid JSON", err)
	}
	if err := compiledSchema().Validate(doc); err != nil {
		return lexerrors.NewSchemaError("token dump does not match the stream schema", err)
	}

	version := canonicalVersion(doc.(map[string]interface{})["version"].(string))
	if semver.Major(version) != semver.Major(StreamVersion) {
		return lexerrors.NewSchemaError(
			fmt.Sprintf("token dump version %s is incompatible with %s", version, StreamVersion), nil).
			WithContext("version", version)
	}
	return nil
}
