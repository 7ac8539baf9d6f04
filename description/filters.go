package description

// Filters lets callers adjust descriptions at fixed points in the chains.
// Nil hooks are skipped.
type Filters struct {
	// CustomField adjusts the custom field description. For query requests
	// args are derived from the query.
	CustomField func(desc string, args Args) string

	// Generated adjusts the trimmed generated description. args is nil for
	// query requests.
	Generated func(desc string, args *Args) string

	// FetchedExcerpt adjusts the excerpt source before it is trimmed.
	FetchedExcerpt func(excerpt string, args *Args) string

	// ArchiveExcerpt supplies an archive excerpt before the built-in lookup.
	// A non-empty result wins. term is nil for archives without a term.
	ArchiveExcerpt func(excerpt string, term *Term) string

	// PostTypeArchive supplies the custom description of a post type archive.
	PostTypeArchive func(q QueryState) string

	// PostTypeArchiveExcerpt supplies the generated excerpt source of a post
	// type archive.
	PostTypeArchiveExcerpt func(q QueryState) string

	// FallbackArchiveExcerpt supplies the excerpt source of other archives.
	FallbackArchiveExcerpt func(q QueryState) string

	// AutoDescription overrides the auto_description option.
	AutoDescription func(enabled bool, args *Args) bool
}

func (f Filters) customField(desc string, args Args) string {
	if f.CustomField == nil {
		return desc
	}
	return f.CustomField(desc, args)
}

func (f Filters) generated(desc string, args *Args) string {
	if f.Generated == nil {
		return desc
	}
	return f.Generated(desc, args)
}

func (f Filters) fetchedExcerpt(excerpt string, args *Args) string {
	if f.FetchedExcerpt == nil {
		return excerpt
	}
	return f.FetchedExcerpt(excerpt, args)
}

func (f Filters) archiveExcerpt(term *Term) string {
	if f.ArchiveExcerpt == nil {
		return ""
	}
	return f.ArchiveExcerpt("", term)
}

func (f Filters) postTypeArchive(q QueryState) string {
	if f.PostTypeArchive == nil {
		return ""
	}
	return f.PostTypeArchive(q)
}

func (f Filters) postTypeArchiveExcerpt(q QueryState) string {
	if f.PostTypeArchiveExcerpt == nil {
		return ""
	}
	return f.PostTypeArchiveExcerpt(q)
}

func (f Filters) fallbackArchiveExcerpt(q QueryState) string {
	if f.FallbackArchiveExcerpt == nil {
		return ""
	}
	return f.FallbackArchiveExcerpt(q)
}

func (f Filters) autoDescription(enabled bool, args *Args) bool {
	if f.AutoDescription == nil {
		return enabled
	}
	return f.AutoDescription(enabled, args)
}
