package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scholarly-tools/citeproc-go/style"
)

// checkIssue is one validation finding, ground: hub.ValidationError
// (Field, Code, Message) generalized from per-record validation to
// style/input validation (§12 "check command detail").
type checkIssue struct {
	Field   string
	Message string
}

func (i checkIssue) String() string { return fmt.Sprintf("%s: %s", i.Field, i.Message) }

// checkResult mirrors hub.ValidationResult's errors-vs-warnings split.
type checkResult struct {
	Errors   []checkIssue
	Warnings []checkIssue
}

func (r *checkResult) addError(field, format string, args ...any) {
	r.Errors = append(r.Errors, checkIssue{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (r *checkResult) addWarning(field, format string, args ...any) {
	r.Warnings = append(r.Warnings, checkIssue{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (r *checkResult) isValid() bool { return len(r.Errors) == 0 }

var (
	checkStyle      string
	checkLocaleFile string
	checkReferences string
	checkCitations  string
	checkStrict     bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a style and its inputs without rendering",
	Long: `Validate a style file against the template-component variant set and
the options schema, and validate reference/citation JSON input against the
expected shape, without producing any rendered output (§6 "check").`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkStyle, "style", "", "Style file (required)")
	checkCmd.Flags().StringVar(&checkLocaleFile, "locale-file", "", "Locale file to validate in addition to the built-in set")
	checkCmd.Flags().StringVar(&checkReferences, "references", "", "Reference JSON file to validate")
	checkCmd.Flags().StringVar(&checkCitations, "citations", "", "Citation cluster JSON file to validate")
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "Reject unrecognized reference fields instead of preserving them")
}

func runCheck(cmd *cobra.Command, args []string) error {
	result := &checkResult{}

	st, err := checkStyleFile(result)
	if err != nil {
		return err
	}
	if checkLocaleFile != "" {
		if _, err := loadLocale("", checkLocaleFile); err != nil {
			result.addError("locale-file", "%v", err)
		}
	}
	if checkReferences != "" {
		checkReferencesFile(st, result)
	}
	if checkCitations != "" {
		checkCitationsFile(result)
	}

	for _, w := range result.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "error: %s\n", e)
	}

	if !result.isValid() {
		return fmt.Errorf("check failed: %d error(s), %d warning(s)", len(result.Errors), len(result.Warnings))
	}
	fmt.Printf("ok: 0 errors, %d warning(s)\n", len(result.Warnings))
	return nil
}

func checkStyleFile(result *checkResult) (*style.Style, error) {
	if checkStyle == "" {
		return nil, newUsageError("--style is required")
	}
	st, err := loadStyle(checkStyle)
	if err != nil {
		result.addError("style", "%v", err)
		return nil, nil
	}
	if st.Citation == nil && st.Bibliography == nil {
		result.addWarning("style", "neither citation nor bibliography is configured; nothing can be rendered")
	}
	return st, nil
}

func checkReferencesFile(st *style.Style, result *checkResult) {
	refs, err := loadReferences(checkReferences, checkStrict)
	if err != nil {
		result.addError("references", "%v", err)
		return
	}
	seen := make(map[string]bool, len(refs))
	for i, r := range refs {
		path := fmt.Sprintf("references[%d]", i)
		if r.ID == "" {
			result.addError(path+".id", "missing required field")
			continue
		}
		if seen[r.ID] {
			result.addError(path+".id", "duplicate reference id %q", r.ID)
		}
		seen[r.ID] = true
		if r.Type == "" {
			result.addError(path+".type", "missing required field")
		}
		if r.Titles.Primary.IsZero() {
			result.addWarning(path+".title", "reference %q has no title", r.ID)
		}
		if st != nil && st.Bibliography != nil {
			tmpl := st.Bibliography.TemplateFor(r.EffectiveType())
			if tmpl.Kind == "" && len(tmpl.Children) == 0 {
				result.addWarning(path+".type", "reference %q has type %q with no matching bibliography template", r.ID, r.EffectiveType())
			}
		}
	}
}

func checkCitationsFile(result *checkResult) {
	refs, refErr := loadReferences(checkReferences, checkStrict)
	known := make(map[string]bool)
	if refErr == nil {
		for _, r := range refs {
			known[r.ID] = true
		}
	}

	clusters, err := loadCitations(checkCitations)
	if err != nil {
		result.addError("citations", "%v", err)
		return
	}
	for i, c := range clusters {
		path := fmt.Sprintf("citations[%d]", i)
		if c.ID == "" {
			result.addError(path+".id", "missing required field")
		}
		if len(c.Items) == 0 {
			result.addWarning(path, "cluster has no cited items")
		}
		for j, item := range c.Items {
			itemPath := fmt.Sprintf("%s.items[%d]", path, j)
			if item.RefID == "" {
				result.addError(itemPath+".id", "missing required field")
				continue
			}
			if refErr == nil && !known[item.RefID] {
				result.addWarning(itemPath+".id", "cited reference %q not found in --references", item.RefID)
			}
		}
	}
}

