package sqlpart

// SubSelect is a nested statement usable in any value position. The
// returned SQL must use the neutral "?" placeholder; the values and fields
// are spliced into the parent renderer in order.
type SubSelect interface {
	RenderSelect(d Dialect) (*Result, error)
}

func asSubSelect(v any) (SubSelect, bool) {
	sub, ok := v.(SubSelect)
	return sub, ok && sub != nil
}

// FormatSubSelect renders sub as a parenthesized SELECT and splices its
// values and fields into the renderer's accumulators.
func (r *Renderer) FormatSubSelect(sub SubSelect) (string, error) {
	res, err := sub.RenderSelect(r.dialect)
	if err != nil {
		return "", err
	}
	r.AddValues(res.Values...)
	r.AddFields(res.Fields...)
	return "(" + res.SQL + ")", nil
}
