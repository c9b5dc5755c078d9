package domain

const (
	anonymousPlotLength  = 100
	anonymousCastLimit   = 2
	anonymousDirectorCap = 1
)

// ShapeMovie returns the view of m that a caller with the given
// authentication state may see. Authenticated callers get m unchanged;
// anonymous callers get a truncated plot, no full plot and short
// cast and director lists. The slices of m are never modified.
func ShapeMovie(m Movie, authenticated bool) Movie {
	if authenticated {
		return m
	}

	m.Plot = truncate(m.Plot, anonymousPlotLength) + "..."
	m.FullPlot = ""
	m.Cast = capSlice(m.Cast, anonymousCastLimit)
	m.Directors = capSlice(m.Directors, anonymousDirectorCap)

	return m
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}

func capSlice(s []string, n int) []string {
	if len(s) <= n {
		return s
	}

	// full slice expression so appends on the result cannot write into m's backing array
	return s[:n:n]
}
