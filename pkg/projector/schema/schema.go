// Package schema validates control payloads before they are turned into
// ADCP commands, so malformed requests fail at the API boundary instead of
// as device errors mid-session.
package schema

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// stateSchema constrains the settable state payload. The input list mirrors
// what the command layer can address today; value legality beyond that is
// still the device's call.
const stateSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"power": {"type": "string", "enum": ["on", "off"]},
		"input": {"type": "string", "enum": ["hdmi1", "hdmi2"]},
		"muted": {"type": "boolean"}
	},
	"additionalProperties": false
}`

// commandSchema constrains raw command requests. The command token itself is
// free-form: the registry is not exhaustive and unknown tokens are forwarded.
const commandSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"properties": {
		"command": {"type": "string", "minLength": 1, "pattern": "^[^\\r\\n]+$"},
		"value": {"type": "string", "pattern": "^[^\\r\\n]*$"},
		"parameter": {
			"type": "string",
			"enum": ["", "?", "query", "? --range", "range", "--info", "info", "--rel", "rel", "--reset", "reset"]
		}
	},
	"required": ["command"],
	"additionalProperties": false
}`

var (
	compileOnce sync.Once
	compiled    struct {
		state   *jsonschema.Schema
		command *jsonschema.Schema
	}
	compileErr error
)

func compile() error {
	compileOnce.Do(func() {
		compiled.state, compileErr = compileOne("state.json", stateSchema)
		if compileErr != nil {
			return
		}
		compiled.command, compileErr = compileOne("command.json", commandSchema)
	})
	return compileErr
}

func compileOne(name, doc string) (*jsonschema.Schema, error) {
	var raw any
	if err := json.Unmarshal([]byte(doc), &raw); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", name, err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, raw); err != nil {
		return nil, fmt.Errorf("add %s: %w", name, err)
	}
	s, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}
	return s, nil
}

// ValidateState checks a settable-state payload.
func ValidateState(payload map[string]any) error {
	if err := compile(); err != nil {
		return err
	}
	return compiled.state.Validate(payload)
}

// ValidateCommand checks a raw command request payload.
func ValidateCommand(payload map[string]any) error {
	if err := compile(); err != nil {
		return err
	}
	return compiled.command.Validate(payload)
}
