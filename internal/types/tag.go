package types

// Tag identifies the kind of a Part.
type Tag uint8

const (
	TagRaw Tag = iota
	TagSelect
	TagDistinct
	TagAll
	TagFields
	TagFrom
	TagWhere
	TagNot
	TagAny
	TagSome
	TagExists
	TagEqualTo
	TagNotEqualTo
	TagGreaterThan
	TagGreaterThanOrEqualTo
	TagLessThan
	TagLessThanOrEqualTo
	TagIsNull
	TagIsNotNull
	TagLike
	TagBetween
	TagIn
	TagAnd
	TagOr
	TagGroupBy
	TagHaving
	TagOrderBy
	TagAsc
	TagDesc
	TagNulls
	TagFirst
	TagLast
	TagLimit
	TagOffset
	TagInsert
	TagInto
	TagColumns
	TagValues
	TagReturning

	tagCount
)

var tagNames = [tagCount]string{
	TagRaw:                  "raw",
	TagSelect:               "select",
	TagDistinct:             "distinct",
	TagAll:                  "all",
	TagFields:               "fields",
	TagFrom:                 "from",
	TagWhere:                "where",
	TagNot:                  "not",
	TagAny:                  "any",
	TagSome:                 "some",
	TagExists:               "exists",
	TagEqualTo:              "equalTo",
	TagNotEqualTo:           "notEqualTo",
	TagGreaterThan:          "greaterThan",
	TagGreaterThanOrEqualTo: "greaterThanOrEqualTo",
	TagLessThan:             "lessThan",
	TagLessThanOrEqualTo:    "lessThanOrEqualTo",
	TagIsNull:               "isNull",
	TagIsNotNull:            "isNotNull",
	TagLike:                 "like",
	TagBetween:              "between",
	TagIn:                   "in",
	TagAnd:                  "and",
	TagOr:                   "or",
	TagGroupBy:              "groupBy",
	TagHaving:               "having",
	TagOrderBy:              "orderBy",
	TagAsc:                  "asc",
	TagDesc:                 "desc",
	TagNulls:                "nulls",
	TagFirst:                "first",
	TagLast:                 "last",
	TagLimit:                "limit",
	TagOffset:               "offset",
	TagInsert:               "insert",
	TagInto:                 "into",
	TagColumns:              "columns",
	TagValues:               "values",
	TagReturning:            "returning",
}

// String returns the camelCase name of the tag.
func (t Tag) String() string {
	if t >= tagCount {
		return "unknown"
	}
	return tagNames[t]
}

// Valid reports whether t is one of the declared tags.
func (t Tag) Valid() bool {
	return t < tagCount
}

// Tags returns every declared tag in declaration order.
func Tags() []Tag {
	tags := make([]Tag, 0, tagCount)
	for t := Tag(0); t < tagCount; t++ {
		tags = append(tags, t)
	}
	return tags
}

// ParseTag looks a tag up by its camelCase name.
func ParseTag(name string) (Tag, bool) {
	for t := Tag(0); t < tagCount; t++ {
		if tagNames[t] == name {
			return t, true
		}
	}
	return 0, false
}
