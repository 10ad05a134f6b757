package sqlpart

import (
	"fmt"
	"sort"

	"github.com/mikeschinkel/go-sqlparams"
)

// Named builds a RawSQL from text with ":name" parameters. Each occurrence
// is rewritten to the neutral placeholder and bound, in text order, to the
// matching entry of params. Parameters inside quoted literals, quoted
// identifiers and comments are left alone, as are "::" casts.
//
//	sqlpart.Raw(sqlpart.MustNamed("COUNT(*) > :min", map[string]any{"min": 2}))
func Named(sql string, params map[string]any) (*RawSQL, error) {
	parsed, err := sqlparams.ParseSQL(sqlparams.SQLQuery(sql), func(int) string { return Placeholder })
	if err != nil {
		return nil, fmt.Errorf("parse named parameters: %w", err)
	}

	occurrences := append(sqlparams.QueryTokens(nil), parsed.Occurrences()...)
	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].Start < occurrences[j].Start
	})

	raw := &RawSQL{SQL: string(parsed.QueryString())}
	for _, token := range occurrences {
		value, ok := params[string(token.Name)]
		if !ok {
			return nil, fmt.Errorf("%w: parameter `%s` is not set", ErrUndefinedValue, token.Name)
		}
		raw.Values = append(raw.Values, value)
	}
	return raw, nil
}

// MustNamed is like Named but panics on error.
func MustNamed(sql string, params map[string]any) *RawSQL {
	raw, err := Named(sql, params)
	if err != nil {
		panic(err)
	}
	return raw
}
