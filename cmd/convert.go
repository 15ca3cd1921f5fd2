package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scholarly-tools/citeproc-go/style"
)

var (
	convertStyle  string
	convertTo     string
	convertOutput string
	convertPretty bool
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Round-trip a style file to an alternative encoding of the same model",
	Long: `Convert reads a style in its declarative YAML encoding, fully expands
any preset references, and re-serializes it to either YAML or JSON — an
alternative encoding of the same model (§6 "convert"), useful for diffing a
style against a tool that only understands one of the two encodings.

Examples:
  citeproc-go convert --style apa.yaml --to json
  citeproc-go convert --style apa.yaml --to yaml --out apa.expanded.yaml`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertStyle, "style", "", "Style file (required)")
	convertCmd.Flags().StringVar(&convertTo, "to", "yaml", "Target encoding: yaml or json")
	convertCmd.Flags().StringVar(&convertOutput, "out", "", "Output file (default: stdout)")
	convertCmd.Flags().BoolVar(&convertPretty, "pretty", true, "Pretty-print JSON output")
}

func runConvert(cmd *cobra.Command, args []string) error {
	st, err := loadStyle(convertStyle)
	if err != nil {
		return err
	}

	var data []byte
	switch convertTo {
	case "yaml":
		data, err = style.Encode(st)
		if err != nil {
			return fmt.Errorf("encoding style as YAML: %w", err)
		}
	case "json":
		if convertPretty {
			data, err = json.MarshalIndent(st, "", "  ")
		} else {
			data, err = json.Marshal(st)
		}
		if err != nil {
			return fmt.Errorf("encoding style as JSON: %w", err)
		}
		data = append(data, '\n')
	default:
		return newUsageError("unknown target encoding %q (want yaml or json)", convertTo)
	}

	if convertOutput == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(convertOutput, data, 0o644)
}
