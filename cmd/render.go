package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/scholarly-tools/citeproc-go/engine"
	"github.com/scholarly-tools/citeproc-go/output"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render references and citations (refs) or a host document (doc)",
}

var (
	renderStyle      string
	renderLocaleTag  string
	renderLocaleFile string
	renderReferences string
	renderCitations  string
	renderFormat     string
	renderSemantics  bool
	renderWrap       int
	renderOutput     string
	renderDocument   string
	renderStrict     bool
)

func init() {
	renderCmd.AddCommand(refsCmd)
	renderCmd.AddCommand(docCmd)

	for _, c := range []*cobra.Command{refsCmd, docCmd} {
		c.Flags().StringVar(&renderStyle, "style", "", "Style file (required)")
		c.Flags().StringVar(&renderLocaleTag, "locale", "", "BCP-47 locale tag (default: en-US)")
		c.Flags().StringVar(&renderLocaleFile, "locale-file", "", "Locale file overriding/adding to the built-in set")
		c.Flags().StringVar(&renderReferences, "references", "", "Reference JSON file (required)")
		c.Flags().StringVar(&renderFormat, "format", "text", "Output format: html, djot, or text")
		c.Flags().BoolVar(&renderSemantics, "semantics", true, "Include semantic classes/attributes in markup backends")
		c.Flags().IntVar(&renderWrap, "wrap", 0, "Wrap the text backend's output at this display column (0 disables)")
		c.Flags().StringVar(&renderOutput, "out", "", "Output file (default: stdout)")
		c.Flags().BoolVar(&renderStrict, "strict", false, "Reject unrecognized reference fields instead of preserving them")
	}
	refsCmd.Flags().StringVar(&renderCitations, "citations", "", "Citation cluster JSON file (optional)")
	docCmd.Flags().StringVar(&renderDocument, "document", "", "Host document containing citation markers (default: stdin)")
}

var refsCmd = &cobra.Command{
	Use:   "refs",
	Short: "Render a bibliography and/or citation clusters from JSON input",
	RunE:  runRenderRefs,
}

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Replace citation markers in a host document and append a bibliography",
	RunE:  runRenderDoc,
}

func outputOptions() output.Options {
	return output.Options{Semantics: renderSemantics, WrapColumn: renderWrap}
}

func writeOutput(s string) error {
	if renderOutput == "" {
		_, err := fmt.Fprint(os.Stdout, s)
		return err
	}
	return os.WriteFile(renderOutput, []byte(s), 0o644)
}

func logDiagnostics(diags []engine.Diagnostic) {
	for _, d := range diags {
		slog.Warn("render diagnostic", "kind", d.Kind, "ref", d.RefID, "message", d.Message)
	}
}

func runRenderRefs(cmd *cobra.Command, args []string) error {
	st, err := loadStyle(renderStyle)
	if err != nil {
		return err
	}
	loc, err := loadLocale(renderLocaleTag, renderLocaleFile)
	if err != nil {
		return err
	}
	refs, err := loadReferences(renderReferences, renderStrict)
	if err != nil {
		return err
	}
	clusters, err := loadCitations(renderCitations)
	if err != nil {
		return err
	}

	res, err := engine.Render(st, loc, refs, clusters)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	out, err := output.Render(res.Document, renderFormat, outputOptions())
	if err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	if err := writeOutput(out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logDiagnostics(res.Diagnostics)
	if len(res.Diagnostics) > 0 {
		return fmt.Errorf("render completed with %d diagnostic(s)", len(res.Diagnostics))
	}
	return nil
}

func runRenderDoc(cmd *cobra.Command, args []string) (err error) {
	st, err := loadStyle(renderStyle)
	if err != nil {
		return err
	}
	loc, err := loadLocale(renderLocaleTag, renderLocaleFile)
	if err != nil {
		return err
	}
	refs, err := loadReferences(renderReferences, renderStrict)
	if err != nil {
		return err
	}

	f, name, err := openInput(renderDocument)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing document %s: %w", name, cerr)
		}
	}()
	docBytes, err := io.ReadAll(f)
	if err != nil {
		return fmt.Errorf("reading document %s: %w", name, err)
	}
	docText := string(docBytes)

	clusters, err := parseMarkers(docText)
	if err != nil {
		return fmt.Errorf("document %s: %w", name, err)
	}

	res, err := engine.Render(st, loc, refs, clusters)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	opts := outputOptions()
	rendered := make([]string, len(res.Document.Citations))
	for i, c := range res.Document.Citations {
		s, err := output.Render(output.Document{Citations: []output.Cluster{c}}, renderFormat, opts)
		if err != nil {
			return fmt.Errorf("formatting citation marker %d: %w", i+1, err)
		}
		rendered[i] = s
	}

	biblio, err := output.Render(output.Document{Bibliography: res.Document.Bibliography}, renderFormat, opts)
	if err != nil {
		return fmt.Errorf("formatting bibliography: %w", err)
	}

	result := replaceMarkers(docText, rendered)
	if biblio != "" {
		result += "\n\n" + biblio
	}
	if err := writeOutput(result); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	logDiagnostics(res.Diagnostics)
	if len(res.Diagnostics) > 0 {
		return fmt.Errorf("render completed with %d diagnostic(s)", len(res.Diagnostics))
	}
	return nil
}
