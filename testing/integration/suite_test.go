package integration

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"
	"testing"

	"github.com/zoobzio/dbml"
	"github.com/zoobzio/sqlpart"
)

// schema holds the dialect-specific DDL for the users and posts tables.
type schema struct {
	dropPosts   string
	dropUsers   string
	createUsers string
	createPosts string
}

// createModels creates models matching the test database schema.
func createModels(t *testing.T) (users, posts *sqlpart.Model) {
	t.Helper()

	project := dbml.NewProject("test")

	u := dbml.NewTable("users")
	u.AddColumn(dbml.NewColumn("id", "bigint"))
	u.AddColumn(dbml.NewColumn("username", "varchar"))
	u.AddColumn(dbml.NewColumn("age", "int"))
	u.AddColumn(dbml.NewColumn("active", "boolean"))
	project.AddTable(u)

	p := dbml.NewTable("posts")
	p.AddColumn(dbml.NewColumn("id", "bigint"))
	p.AddColumn(dbml.NewColumn("user_id", "bigint"))
	p.AddColumn(dbml.NewColumn("title", "varchar"))
	p.AddColumn(dbml.NewColumn("views", "int"))
	project.AddTable(p)

	models, err := sqlpart.ModelsFromDBML(project)
	if err != nil {
		t.Fatalf("Failed to create models: %v", err)
	}
	return models["users"], models["posts"]
}

func setupSchema(ctx context.Context, t *testing.T, db *sql.DB, s schema) {
	t.Helper()
	for _, stmt := range []string{s.dropPosts, s.dropUsers, s.createUsers, s.createPosts} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("Failed to execute SQL: %v\nSQL: %s", err, stmt)
		}
	}
}

func seed(ctx context.Context, t *testing.T, db *sql.DB, d sqlpart.Dialect, users, posts *sqlpart.Model) {
	t.Helper()

	_, err := sqlpart.NewQuery(users).Dialect(d).Exec(ctx, db,
		map[string]any{"id": 1, "username": "alice", "age": 25, "active": true},
		map[string]any{"id": 2, "username": "bob", "age": 35, "active": true},
		map[string]any{"id": 3, "username": "carol", "age": 45, "active": false},
		map[string]any{"id": 4, "username": "dave", "age": 30, "active": true},
	)
	if err != nil {
		t.Fatalf("Failed to insert users: %v", err)
	}

	_, err = sqlpart.NewQuery(posts).Dialect(d).Exec(ctx, db,
		map[string]any{"id": 1, "user_id": 1, "title": "first", "views": 5},
		map[string]any{"id": 2, "user_id": 1, "title": "second", "views": 50},
		map[string]any{"id": 3, "user_id": 2, "title": "third", "views": 100},
		map[string]any{"id": 4, "user_id": 3, "title": "fourth", "views": 1},
	)
	if err != nil {
		t.Fatalf("Failed to insert posts: %v", err)
	}
}

// column returns one field of every row, formatted for comparison.
func column(rows []map[string]any, field string) []string {
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = fmt.Sprint(row[field])
	}
	return out
}

func assertColumn(t *testing.T, rows []map[string]any, err error, field string, want ...string) {
	t.Helper()
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if got := column(rows, field); !reflect.DeepEqual(got, want) && !(len(got) == 0 && len(want) == 0) {
		t.Errorf("%s = %v, want %v", field, got, want)
	}
}

// runSuite executes rendered statements for d against db.
func runSuite(t *testing.T, db *sql.DB, d sqlpart.Dialect, s schema) {
	ctx := context.Background()
	users, posts := createModels(t)
	setupSchema(ctx, t, db, s)
	seed(ctx, t, db, d, users, posts)

	t.Run("WhereBetween", func(t *testing.T) {
		rows, err := sqlpart.NewQuery(users).Dialect(d).
			Fields("id").
			Where(sqlpart.Object{"active": true}, sqlpart.Between("age", []any{20, 32})).
			OrderBy("id").
			Fetch(ctx, db)
		assertColumn(t, rows, err, "id", "1", "4")
	})

	t.Run("OrObjects", func(t *testing.T) {
		rows, err := sqlpart.NewQuery(users).Dialect(d).
			Fields(sqlpart.Object{"name": "username"}).
			Where(sqlpart.Or([]any{sqlpart.Object{"username": "bob"}, sqlpart.Object{"age": 45, "active": false}})).
			OrderBy(sqlpart.Object{"username": "desc"}).
			Fetch(ctx, db)
		assertColumn(t, rows, err, "name", "carol", "bob")
	})

	t.Run("InSubSelect", func(t *testing.T) {
		popular := sqlpart.NewQuery(posts).Fields("user_id").Where(sqlpart.GreaterThan("views", 10))
		rows, err := sqlpart.NewQuery(users).Dialect(d).
			Fields("id").
			Where(sqlpart.In("id", popular)).
			OrderBy("id").
			Fetch(ctx, db)
		assertColumn(t, rows, err, "id", "1", "2")
	})

	t.Run("EmptyIn", func(t *testing.T) {
		rows, err := sqlpart.NewQuery(users).Dialect(d).
			Fields("id").
			Where(sqlpart.In("id", []int{})).
			Fetch(ctx, db)
		assertColumn(t, rows, err, "id")
	})

	t.Run("GroupByHaving", func(t *testing.T) {
		count := sqlpart.Raw(sqlpart.RawSQL{SQL: "COUNT(*)", Fields: []string{"count"}})
		rows, err := sqlpart.NewQuery(posts).Dialect(d).
			Fields("user_id", count).
			GroupBy("user_id").
			Having(sqlpart.GreaterThan(sqlpart.Raw("COUNT(*)"), 1)).
			Fetch(ctx, db)
		assertColumn(t, rows, err, "user_id", "1")
		assertColumn(t, rows, err, "count", "2")
	})

	t.Run("NamedRaw", func(t *testing.T) {
		older := sqlpart.Raw(sqlpart.MustNamed("age >= :min AND age < :max", map[string]any{"min": 30, "max": 45}))
		rows, err := sqlpart.NewQuery(users).Dialect(d).
			Fields("id").
			Where(older).
			OrderBy("id").
			Fetch(ctx, db)
		assertColumn(t, rows, err, "id", "2", "4")
	})

	t.Run("LimitOffset", func(t *testing.T) {
		q := sqlpart.NewQuery(users).Dialect(d).Fields("id").OrderBy("id").Limit(2).Offset(1)
		rows, err := q.Fetch(ctx, db)
		if !d.Capabilities().LimitOffset {
			if err == nil {
				t.Fatal("expected ErrUnsupported")
			}
			return
		}
		assertColumn(t, rows, err, "id", "2", "3")
	})
}
