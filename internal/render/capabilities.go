package render

// Capabilities describes the optional clauses a dialect can render.
type Capabilities struct {
	Returning     bool // INSERT ... RETURNING
	NullsOrdering bool // ORDER BY ... NULLS FIRST/LAST
	LimitOffset   bool // LIMIT n / OFFSET n
}

// Full is the capability set of the ANSI rendering.
var Full = Capabilities{
	Returning:     true,
	NullsOrdering: true,
	LimitOffset:   true,
}
