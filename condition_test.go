package sqlpart

import (
	"testing"
)

func TestComparisons(t *testing.T) {
	tests := []struct {
		name     string
		part     Part
		expected string
		values   []any
	}{
		{"equalTo", EqualTo("id", 1), `"user"."id" = ?`, []any{1}},
		{"notEqualTo", NotEqualTo("id", 1), `"user"."id" <> ?`, []any{1}},
		{"greaterThan", GreaterThan("id", 1), `"user"."id" > ?`, []any{1}},
		{"greaterThanOrEqualTo", GreaterThanOrEqualTo("id", 1), `"user"."id" >= ?`, []any{1}},
		{"lessThan", LessThan("id", 1), `"user"."id" < ?`, []any{1}},
		{"lessThanOrEqualTo", LessThanOrEqualTo("id", 1), `"user"."id" <= ?`, []any{1}},
		{"like", Like("name", "foo"), `"user"."name" LIKE ?`, []any{"foo"}},
		{"isNull", IsNull("id"), `"user"."id" IS NULL`, nil},
		{"isNotNull", IsNotNull("id"), `"user"."id" IS NOT NULL`, nil},
		{"null value", EqualTo("name", nil), `"user"."name" = ?`, []any{nil}},
		{"raw field", GreaterThan(Raw("COUNT(*)"), 1), `COUNT(*) > ?`, []any{1}},
		{"between", Between("id", []any{1, 2}), `"user"."id" BETWEEN ? AND ?`, []any{1, 2}},
		{"between typed slice", Between("id", []int{1, 2}), `"user"."id" BETWEEN ? AND ?`, []any{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(userModel())
			assertSQL(t, tt.expected, mustFormat(t, r, tt.part))
			assertValues(t, r, tt.values...)
		})
	}
}

func TestFormatBetween_Invalid(t *testing.T) {
	for _, value := range []any{1, []any{1}, []any{1, 2, 3}} {
		_, err := New(userModel()).Format(Between("id", value))
		assertRenderError(t, err, ErrInvalidPart, "value for BETWEEN should be a list of two values")
	}
}

func TestFormatIn(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		r := New(userModel())
		assertSQL(t, `"user"."id" IN (?, ?, ?)`, mustFormat(t, r, In("id", []any{1, 2, 3})))
		assertValues(t, r, 1, 2, 3)
	})

	t.Run("empty list binds null", func(t *testing.T) {
		for _, empty := range []any{[]any{}, []int{}, []string(nil)} {
			r := New(userModel())
			assertSQL(t, `"user"."id" IN (?)`, mustFormat(t, r, In("id", empty)))
			assertValues(t, r, nil)
		}
	})

	t.Run("scalar", func(t *testing.T) {
		r := New(userModel())
		assertSQL(t, `"user"."id" IN (?)`, mustFormat(t, r, In("id", 7)))
		assertValues(t, r, 7)
	})

	t.Run("sub-select", func(t *testing.T) {
		r := New(userModel())
		sub := NewQuery(userModel()).Fields("id").Where(Object{"confirmed": true})
		assertSQL(t,
			`"user"."id" IN (SELECT "user"."id" FROM "user" WHERE "user"."confirmed" = ?)`,
			mustFormat(t, r, In("id", sub)))
		assertValues(t, r, true)
		assertFields(t, r, "id")
	})
}

func TestFormatAndOrOr(t *testing.T) {
	tests := []struct {
		name     string
		part     Part
		expected string
		values   []any
	}{
		{"and", And([]any{true, true}), `(? AND ?)`, []any{true, true}},
		{"or", Or([]any{true, false}), `(? OR ?)`, []any{true, false}},
		{"non-array", Or(true), `?`, []any{true}},
		{"single member", And([]any{EqualTo("id", 1)}), `"user"."id" = ?`, []any{1}},
		{"empty", And([]any{}), ``, nil},
		{
			"object members",
			Or([]any{Object{"id": 1, "name": "foo"}, Object{"id": 2, "name": "bar"}}),
			`(("user"."id" = ? AND "user"."name" = ?) OR ("user"."id" = ? AND "user"."name" = ?))`,
			[]any{1, "foo", 2, "bar"},
		},
		{
			"single-key object member",
			Or([]any{Object{"id": 1, "name": "foo"}, Object{"id": 3}}),
			`(("user"."id" = ? AND "user"."name" = ?) OR "user"."id" = ?)`,
			[]any{1, "foo", 3},
		},
		{
			"nested",
			And([]any{Or([]any{IsNull("name"), Like("name", "a%")}), NotEqualTo("id", 0)}),
			`(("user"."name" IS NULL OR "user"."name" LIKE ?) AND "user"."id" <> ?)`,
			[]any{"a%", 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(userModel())
			assertSQL(t, tt.expected, mustFormat(t, r, tt.part))
			assertValues(t, r, tt.values...)
		})
	}
}

func TestFormatWhere(t *testing.T) {
	t.Run("single condition", func(t *testing.T) {
		r := New(userModel())
		assertSQL(t, `WHERE "user"."id" = ?`, mustFormat(t, r, Where([]any{EqualTo("id", 1)})))
		assertValues(t, r, 1)
	})

	t.Run("multiple values", func(t *testing.T) {
		r := New(userModel())
		assertSQL(t, `WHERE (? AND "user"."id" = ?)`, mustFormat(t, r, Where([]any{true, EqualTo("id", 1)})))
		assertValues(t, r, true, 1)
	})

	t.Run("falsy values", func(t *testing.T) {
		r := New(userModel())
		assertSQL(t, `WHERE ?`, mustFormat(t, r, Where([]any{false})))
		assertValues(t, r, false)
	})

	t.Run("sub-select", func(t *testing.T) {
		r := New(userModel())
		sub := NewQuery(userModel()).Fields(Raw(RawSQL{SQL: "?", Values: []any{true}}))
		assertSQL(t, `WHERE (SELECT ? FROM "user")`, mustFormat(t, r, Where([]any{sub})))
		assertValues(t, r, true)
	})

	t.Run("bare sub-select", func(t *testing.T) {
		r := New(userModel())
		assertSQL(t, `WHERE (SELECT FROM "user")`, mustFormat(t, r, Where(NewQuery(userModel()))))
	})

	t.Run("empty", func(t *testing.T) {
		r := New(userModel())
		assertSQL(t, ``, mustFormat(t, r, Where([]any{})))
		assertSQL(t, ``, mustFormat(t, r, Where(Object{})))
	})
}

func TestFormatWhere_ObjectExpansion(t *testing.T) {
	sugar := New(userModel())
	explicit := New(userModel())

	a := mustFormat(t, sugar, Where(Object{"id": 1, "name": "foo"}))
	b := mustFormat(t, explicit, Where(And([]any{EqualTo("id", 1), EqualTo("name", "foo")})))

	assertSQL(t, b, a)
	assertSQL(t, `WHERE ("user"."id" = ? AND "user"."name" = ?)`, a)
	assertValues(t, sugar, explicit.Values()...)
}

func TestFormatHaving(t *testing.T) {
	t.Run("single", func(t *testing.T) {
		r := New(userModel())
		assertSQL(t, `HAVING "user"."id" > ?`, mustFormat(t, r, Having(GreaterThan("id", 1))))
		assertValues(t, r, 1)
	})

	t.Run("array", func(t *testing.T) {
		r := New(userModel())
		got := mustFormat(t, r, Having([]any{EqualTo("id", 1), GreaterThan(Raw(RawSQL{SQL: "COUNT(*)"}), 1)}))
		assertSQL(t, `HAVING ("user"."id" = ? AND COUNT(*) > ?)`, got)
		assertValues(t, r, 1, 1)
	})
}

func TestPrefixes(t *testing.T) {
	sub := NewQuery(userModel())

	tests := []struct {
		name     string
		part     Part
		expected string
		values   []any
	}{
		{"not", Not(true), `NOT ?`, []any{true}},
		{"not object", Not(Object{"id": 1}), `NOT "user"."id" = ?`, []any{1}},
		{"any", Any(sub), `ANY (SELECT FROM "user")`, nil},
		{"some", Some(sub), `SOME (SELECT FROM "user")`, nil},
		{"exists", Exists(sub), `EXISTS (SELECT FROM "user")`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(userModel())
			assertSQL(t, tt.expected, mustFormat(t, r, tt.part))
			assertValues(t, r, tt.values...)
		})
	}
}
