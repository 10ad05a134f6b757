package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/zoobzio/sqlpart"

	_ "modernc.org/sqlite"
)

func TestNew(t *testing.T) {
	d := New()
	if d == nil {
		t.Fatal("New() returned nil")
	}
	if d.Name() != "sqlite" {
		t.Errorf("Name() = %q, want %q", d.Name(), "sqlite")
	}
	if d.Placeholder(3) != "?" {
		t.Errorf("Placeholder(3) = %q, want %q", d.Placeholder(3), "?")
	}
}

func TestQuoteIdentifier(t *testing.T) {
	d := New()
	if got := d.QuoteIdentifier("order"); got != `"order"` {
		t.Errorf("QuoteIdentifier() = %q, want %q", got, `"order"`)
	}
	if got := d.QuoteIdentifier(`a"b`); got != `"a""b"` {
		t.Errorf("QuoteIdentifier() = %q, want %q", got, `"a""b"`)
	}
}

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec(`CREATE TABLE "user" ("id" INTEGER PRIMARY KEY, "full_name" TEXT, "score" INTEGER)`); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func userModel() *sqlpart.Model {
	return sqlpart.NewModel("User", "user", "id", "score").WithColumn("name", "full_name")
}

func TestExecAndFetch(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	user := userModel()

	_, err := sqlpart.NewQuery(user).Dialect(New()).Exec(ctx, db,
		map[string]any{"id": 1, "name": "alice", "score": 10},
		map[string]any{"id": 2, "name": "bob", "score": nil},
		map[string]any{"id": 3, "name": "carol", "score": 30},
	)
	if err != nil {
		t.Fatalf("Exec() error = %v", err)
	}

	rows, err := sqlpart.NewQuery(user).
		Dialect(New()).
		Fields("id", sqlpart.Object{"displayName": "name"}).
		Where(sqlpart.Or([]any{sqlpart.Object{"name": "alice"}, sqlpart.GreaterThan("score", 20), sqlpart.IsNull("score")})).
		OrderBy(sqlpart.Object{"score": sqlpart.Desc(sqlpart.Nulls(sqlpart.Last()))}).
		Limit(2).
		Fetch(ctx, db)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("Fetch() returned %d rows, want 2", len(rows))
	}
	if fmt.Sprint(rows[0]["id"]) != "3" || fmt.Sprint(rows[0]["displayName"]) != "carol" {
		t.Errorf("rows[0] = %v, want id=3 displayName=carol", rows[0])
	}
	if fmt.Sprint(rows[1]["id"]) != "1" || fmt.Sprint(rows[1]["displayName"]) != "alice" {
		t.Errorf("rows[1] = %v, want id=1 displayName=alice", rows[1])
	}
}

func TestFetch_EmptyIn(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	user := userModel()

	if _, err := sqlpart.NewQuery(user).Dialect(New()).Exec(ctx, db, map[string]any{"id": 1, "name": "alice", "score": 1}); err != nil {
		t.Fatalf("Exec() error = %v", err)
	}

	rows, err := sqlpart.NewQuery(user).
		Dialect(New()).
		Fields("id").
		Where(sqlpart.In("id", []int{})).
		Fetch(ctx, db)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Fetch() returned %d rows, want 0", len(rows))
	}
}

func TestFetch_SubSelect(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)
	user := userModel()

	_, err := sqlpart.NewQuery(user).Dialect(New()).Exec(ctx, db,
		map[string]any{"id": 1, "name": "alice", "score": 10},
		map[string]any{"id": 2, "name": "bob", "score": 20},
	)
	if err != nil {
		t.Fatalf("Exec() error = %v", err)
	}

	best := sqlpart.NewQuery(user).As("best").Fields(sqlpart.Raw(sqlpart.RawSQL{SQL: `MAX("best"."score")`}))
	rows, err := sqlpart.NewQuery(user).
		Dialect(New()).
		Fields("name").
		Where(sqlpart.EqualTo("score", best)).
		Fetch(ctx, db)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(rows) != 1 || fmt.Sprint(rows[0]["name"]) != "bob" {
		t.Errorf("Fetch() = %v, want one row for bob", rows)
	}
}
