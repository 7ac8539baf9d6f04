package description

// customSearch resolves the search custom field chain and applies the
// CustomField filter.
func (g *Generator) customSearch(req *Request, args *Args) string {
	var desc string
	var resolved Args

	if args == nil {
		q := req.state()
		desc = g.customSearchFromQuery(q)
		resolved = Args{ID: g.realID(q), Taxonomy: q.Taxonomy}
	} else {
		desc = g.customSearchFromArgs(*args)
		resolved = *args
	}

	return g.filters.customField(desc, resolved)
}

func (g *Generator) customSearchFromQuery(q QueryState) string {
	switch {
	case q.Page == PageFront:
		if id := frontPageID(g.site); id != 0 {
			return firstNonEmpty(
				g.option(OptionHomeDescription),
				g.postMeta(id, MetaDescription),
			)
		}
		return firstNonEmpty(g.option(OptionHomeDescription))
	case q.isSingular():
		return firstNonEmpty(g.postMeta(q.ID, MetaDescription))
	case q.Page == PageTerm:
		return firstNonEmpty(g.termMeta(q.ID, TermMetaDescription))
	case q.Page == PagePostTypeArchive:
		return firstNonEmpty(func() string { return g.filters.postTypeArchive(q) })
	}
	return ""
}

func (g *Generator) customSearchFromArgs(args Args) string {
	switch {
	case args.Taxonomy != "":
		return firstNonEmpty(g.termMeta(args.ID, TermMetaDescription))
	case isStaticFrontPage(g.site, args.ID):
		return firstNonEmpty(
			g.option(OptionHomeDescription),
			g.postMeta(args.ID, MetaDescription),
		)
	case isRealFrontPageByID(g.site, args.ID):
		return firstNonEmpty(g.option(OptionHomeDescription))
	default:
		return firstNonEmpty(g.postMeta(args.ID, MetaDescription))
	}
}

func (g *Generator) customOpenGraph(req *Request, args *Args) string {
	search := func() string { return g.customSearch(req, args) }

	if args == nil {
		q := req.state()
		switch {
		case q.Page == PageFront:
			if id := frontPageID(g.site); id != 0 {
				return firstNonEmpty(g.option(OptionHomeOGDescription), g.postMeta(id, MetaOGDescription), search)
			}
			return firstNonEmpty(g.option(OptionHomeOGDescription), search)
		case q.isSingular():
			return firstNonEmpty(g.postMeta(q.ID, MetaOGDescription), search)
		case q.Page == PageTerm:
			return firstNonEmpty(g.termMeta(q.ID, TermMetaOGDescription), search)
		}
		return ""
	}

	id := args.ID
	switch {
	case args.Taxonomy != "":
		return firstNonEmpty(g.termMeta(id, TermMetaOGDescription), search)
	case isStaticFrontPage(g.site, id):
		return firstNonEmpty(g.option(OptionHomeOGDescription), g.postMeta(id, MetaOGDescription), search)
	case isRealFrontPageByID(g.site, id):
		return firstNonEmpty(g.option(OptionHomeOGDescription), search)
	default:
		return firstNonEmpty(g.postMeta(id, MetaOGDescription), search)
	}
}

func (g *Generator) customTwitter(req *Request, args *Args) string {
	search := func() string { return g.customSearch(req, args) }

	if args == nil {
		q := req.state()
		switch {
		case q.Page == PageFront:
			if id := frontPageID(g.site); id != 0 {
				return firstNonEmpty(
					g.option(OptionHomeTwitterDescription),
					g.postMeta(id, MetaTwitterDescription),
					g.option(OptionHomeOGDescription),
					g.postMeta(id, MetaOGDescription),
					search,
				)
			}
			return firstNonEmpty(g.option(OptionHomeTwitterDescription), g.option(OptionHomeOGDescription), search)
		case q.isSingular():
			return firstNonEmpty(g.postMeta(q.ID, MetaTwitterDescription), g.postMeta(q.ID, MetaOGDescription), search)
		case q.Page == PageTerm:
			return firstNonEmpty(g.termMeta(q.ID, TermMetaTwitterDescription), g.termMeta(q.ID, TermMetaOGDescription), search)
		}
		return ""
	}

	id := args.ID
	switch {
	case args.Taxonomy != "":
		return firstNonEmpty(g.termMeta(id, TermMetaTwitterDescription), g.termMeta(id, TermMetaOGDescription), search)
	case isStaticFrontPage(g.site, id):
		return firstNonEmpty(
			g.option(OptionHomeTwitterDescription),
			g.postMeta(id, MetaTwitterDescription),
			g.option(OptionHomeOGDescription),
			g.postMeta(id, MetaOGDescription),
			search,
		)
	case isRealFrontPageByID(g.site, id):
		return firstNonEmpty(g.option(OptionHomeTwitterDescription), g.option(OptionHomeOGDescription), search)
	default:
		return firstNonEmpty(g.postMeta(id, MetaTwitterDescription), g.postMeta(id, MetaOGDescription), search)
	}
}

// realID is the ID whose meta describes the query's page.
func (g *Generator) realID(q QueryState) int64 {
	if q.Page == PageFront {
		return frontPageID(g.site)
	}
	return q.ID
}
