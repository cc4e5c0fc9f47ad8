package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tables.schema.json
var tablesSchemaJSON []byte

// fileFormat is the on-disk JSON shape for an external Tables file: a
// caller-supplied replacement for the built-in symbol/function alias and
// output-option tables.
type fileFormat struct {
	Symbols   []SymbolAlias  `json:"symbols"`
	Functions []FunctionAlias `json:"functions"`
	Output    OutputOptions  `json:"output"`
}

var compiledSchema *jsonschema.Schema

func compileSchema() (*jsonschema.Schema, error) {
	if compiledSchema != nil {
		return compiledSchema, nil
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("tables.schema.json", strings.NewReader(string(tablesSchemaJSON))); err != nil {
		return nil, fmt.Errorf("config: adding embedded schema: %w", err)
	}
	schema, err := compiler.Compile("tables.schema.json")
	if err != nil {
		return nil, fmt.Errorf("config: compiling embedded schema: %w", err)
	}
	compiledSchema = schema
	return schema, nil
}

// LoadBytes parses and validates a Tables file against the embedded JSON
// schema, then checks the output-options range constraints. Any failure is
// an initialization failure: the caller gets no partially-loaded Tables.
func LoadBytes(data []byte) (Tables, error) {
	schema, err := compileSchema()
	if err != nil {
		return Tables{}, err
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Tables{}, fmt.Errorf("config: invalid JSON: %w", err)
	}
	if err := schema.Validate(raw); err != nil {
		return Tables{}, fmt.Errorf("config: schema validation failed: %w", err)
	}

	var ff fileFormat
	if err := json.Unmarshal(data, &ff); err != nil {
		return Tables{}, fmt.Errorf("config: decoding tables: %w", err)
	}
	if err := ff.Output.Validate(); err != nil {
		return Tables{}, err
	}

	return Tables{Symbols: ff.Symbols, Functions: ff.Functions, Output: ff.Output}, nil
}
