package reference

// Title is a title string with an optional subtitle and a language/script
// scope, used for the primary title as well as container/series titles.
type Title struct {
	Main     string
	Subtitle string
	Short    string
	Language string
	Script   string
}

// IsZero reports whether the title carries no text at all.
func (t Title) IsZero() bool {
	return t.Main == "" && t.Short == ""
}

// Full joins main and subtitle with ": ", the conventional CSL join.
func (t Title) Full() string {
	if t.Subtitle == "" {
		return t.Main
	}
	if t.Main == "" {
		return t.Subtitle
	}
	return t.Main + ": " + t.Subtitle
}

// Titles groups the title slots a Reference may carry. Container and Series
// hold parent-monograph/parent-serial titles referenced by the `title`
// template component's `parent-monograph`/`parent-serial` kinds.
type Titles struct {
	Primary   Title
	Container Title // container-title: journal, book (for a chapter), etc.
	Series    Title // collection-title
}
