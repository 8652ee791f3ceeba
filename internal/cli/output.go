package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type outputFormat int

const (
	formatText outputFormat = iota
	formatJSON
	formatYAML
)

func selectFormat(asJSON, asYAML bool) outputFormat {
	switch {
	case asJSON:
		return formatJSON
	case asYAML:
		return formatYAML
	default:
		return formatText
	}
}

// writeStructured encodes v as JSON or YAML. Text output is rendered by the caller.
func writeStructured(out io.Writer, v any, format outputFormat) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported structured format %d", format)
	}
}
