package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

// outputFlags are the machine-readable rendering flags shared by commands.
type outputFlags struct {
	json bool
	yaml bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.json, "json", false, "Output in JSON format")
	cmd.Flags().BoolVar(&o.yaml, "yaml", false, "Output in YAML format")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")
}

// render writes v as JSON or YAML when requested, and otherwise calls table.
func (o *outputFlags) render(w io.Writer, v any, table func(io.Writer) error) error {
	switch {
	case o.json:
		return printJSON(w, v)
	case o.yaml:
		return printYAML(w, v)
	default:
		return table(w)
	}
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}
