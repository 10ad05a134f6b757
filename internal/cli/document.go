package cli

import (
	"fmt"
	"io"

	"github.com/zoobzio/sqlpart"
	"gopkg.in/yaml.v3"
)

// Document is a statement tree written in YAML.
//
// A mapping with a single key naming a tag is decoded as that part; any
// other mapping is an Object. Comparison tags take a [field, value] pair,
// list clauses take a sequence of members and select/insert take a
// sequence of clause parts:
//
//	model: User
//	statement:
//	  select:
//	    - fields: [id, name]
//	    - from:
//	    - where:
//	        - {confirmed: true}
//	        - in: [id, [1, 2, 3]]
//	    - orderBy: [{name: desc}]
//	    - limit: 10
//
// Two extra keys are understood: `object` forces its mapping to be an
// Object even when it has a single tag-named key, and `named` builds a raw
// fragment from {sql, params} with ":name" parameters.
type Document struct {
	Model     string
	Alias     string
	Statement sqlpart.Part
}

type rawDocument struct {
	Model     string    `yaml:"model"`
	Alias     string    `yaml:"alias"`
	Statement yaml.Node `yaml:"statement"`
}

// ReadDocument decodes a statement document.
func ReadDocument(r io.Reader) (*Document, error) {
	var raw rawDocument
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if raw.Model == "" {
		return nil, fmt.Errorf("document has no model")
	}
	if raw.Statement.Kind == 0 {
		return nil, fmt.Errorf("document has no statement")
	}

	v, err := decodeNode(&raw.Statement)
	if err != nil {
		return nil, err
	}
	statement, ok := v.(sqlpart.Part)
	if !ok {
		return nil, fmt.Errorf("statement should be a part, got %T", v)
	}
	return &Document{Model: raw.Model, Alias: raw.Alias, Statement: statement}, nil
}

func decodeNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return decodeNode(n.Content[0])
	case yaml.AliasNode:
		return decodeNode(n.Alias)
	case yaml.ScalarNode:
		if n.Tag == "!!null" {
			return nil, nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, nodeError(n, err)
		}
		return v, nil
	case yaml.SequenceNode:
		return decodeList(n)
	case yaml.MappingNode:
		if len(n.Content) == 2 {
			if v, ok, err := decodeKeyword(n.Content[0].Value, n.Content[1]); ok || err != nil {
				return v, err
			}
		}
		return decodeObject(n)
	}
	return nil, nodeError(n, fmt.Errorf("unexpected node kind %d", n.Kind))
}

func decodeList(n *yaml.Node) ([]any, error) {
	list := make([]any, len(n.Content))
	for i, child := range n.Content {
		v, err := decodeNode(child)
		if err != nil {
			return nil, err
		}
		list[i] = v
	}
	return list, nil
}

func decodeObject(n *yaml.Node) (sqlpart.Object, error) {
	if n.Kind != yaml.MappingNode {
		return nil, nodeError(n, fmt.Errorf("expected a mapping"))
	}
	obj := make(sqlpart.Object, len(n.Content)/2)
	for i := 0; i < len(n.Content); i += 2 {
		v, err := decodeNode(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		obj[n.Content[i].Value] = v
	}
	return obj, nil
}

// decodeKeyword decodes {key: value} when key names a tag or an extra
// keyword. ok is false when the mapping is a plain Object.
func decodeKeyword(key string, value *yaml.Node) (any, bool, error) {
	switch key {
	case "object":
		obj, err := decodeObject(value)
		return obj, true, err
	case "named":
		raw, err := decodeNamed(value)
		return raw, true, err
	}

	tag, ok := sqlpart.ParseTag(key)
	if !ok {
		return nil, false, nil
	}
	p, err := decodePart(tag, value)
	return p, true, err
}

func decodePart(tag sqlpart.Tag, value *yaml.Node) (sqlpart.Part, error) {
	switch tag {
	case sqlpart.TagSelect, sqlpart.TagInsert:
		if value.Kind != yaml.SequenceNode {
			return sqlpart.Part{}, nodeError(value, fmt.Errorf("%s takes a sequence of parts", tag))
		}
		parts := make([]sqlpart.Part, len(value.Content))
		for i, child := range value.Content {
			v, err := decodeNode(child)
			if err != nil {
				return sqlpart.Part{}, err
			}
			p, ok := v.(sqlpart.Part)
			if !ok {
				return sqlpart.Part{}, nodeError(child, fmt.Errorf("%s clause should be a part, got %T", tag, v))
			}
			parts[i] = p
		}
		return sqlpart.Part{Tag: tag, Value: parts}, nil

	case sqlpart.TagEqualTo, sqlpart.TagNotEqualTo,
		sqlpart.TagGreaterThan, sqlpart.TagGreaterThanOrEqualTo,
		sqlpart.TagLessThan, sqlpart.TagLessThanOrEqualTo,
		sqlpart.TagLike, sqlpart.TagBetween, sqlpart.TagIn:
		if value.Kind != yaml.SequenceNode || len(value.Content) != 2 {
			return sqlpart.Part{}, nodeError(value, fmt.Errorf("%s takes a [field, value] pair", tag))
		}
		field, err := decodeNode(value.Content[0])
		if err != nil {
			return sqlpart.Part{}, err
		}
		v, err := decodeNode(value.Content[1])
		if err != nil {
			return sqlpart.Part{}, err
		}
		return sqlpart.Part{Tag: tag, Field: field, Value: v}, nil

	case sqlpart.TagIsNull, sqlpart.TagIsNotNull:
		field, err := decodeNode(value)
		if err != nil {
			return sqlpart.Part{}, err
		}
		return sqlpart.Part{Tag: tag, Field: field}, nil

	case sqlpart.TagFields, sqlpart.TagGroupBy, sqlpart.TagOrderBy,
		sqlpart.TagColumns, sqlpart.TagValues, sqlpart.TagReturning:
		v, err := decodeNode(value)
		if err != nil {
			return sqlpart.Part{}, err
		}
		members, ok := v.([]any)
		if !ok && v != nil {
			members = []any{v}
		}
		return sqlpart.Part{Tag: tag, Value: members}, nil

	case sqlpart.TagRaw:
		if value.Kind == yaml.MappingNode {
			var raw struct {
				SQL    string   `yaml:"sql"`
				Values []any    `yaml:"values"`
				Fields []string `yaml:"fields"`
			}
			if err := value.Decode(&raw); err != nil {
				return sqlpart.Part{}, nodeError(value, err)
			}
			return sqlpart.Raw(sqlpart.RawSQL{SQL: raw.SQL, Values: raw.Values, Fields: raw.Fields}), nil
		}
	}

	v, err := decodeNode(value)
	if err != nil {
		return sqlpart.Part{}, err
	}
	return sqlpart.Part{Tag: tag, Value: v}, nil
}

func decodeNamed(value *yaml.Node) (sqlpart.Part, error) {
	var named struct {
		SQL    string         `yaml:"sql"`
		Params map[string]any `yaml:"params"`
	}
	if err := value.Decode(&named); err != nil {
		return sqlpart.Part{}, nodeError(value, err)
	}
	raw, err := sqlpart.Named(named.SQL, named.Params)
	if err != nil {
		return sqlpart.Part{}, nodeError(value, err)
	}
	return sqlpart.Raw(raw), nil
}

func nodeError(n *yaml.Node, err error) error {
	return fmt.Errorf("line %d: %w", n.Line, err)
}
