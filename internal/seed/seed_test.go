package seed_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muhammad-hassn/portfolio/internal/seed"
)

// fakeDB keeps one id per (table, first argument), which is enough to
// emulate the lookups the seeder performs.
type fakeDB struct {
	tables  map[string]map[string]int64
	links   map[string]bool
	updates int
	nextID  int64
}

func newFakeDB() *fakeDB {
	return &fakeDB{tables: map[string]map[string]int64{}, links: map[string]bool{}}
}

type fakeRow struct {
	id       int64
	inserted bool
	err      error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for _, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = r.id
		case *bool:
			*v = r.inserted
		default:
			return fmt.Errorf("unexpected scan target %T", d)
		}
	}
	return nil
}

func wordAfter(sql, keyword string) string {
	_, rest, ok := strings.Cut(sql, keyword)
	if !ok {
		return ""
	}
	return strings.Fields(rest)[0]
}

func (f *fakeDB) table(name string) map[string]int64 {
	if f.tables[name] == nil {
		f.tables[name] = map[string]int64{}
	}
	return f.tables[name]
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	sql = strings.TrimSpace(sql)
	key := fmt.Sprint(args[0])

	switch {
	case strings.HasPrefix(sql, "SELECT"):
		if id, ok := f.table(wordAfter(sql, "FROM "))[key]; ok {
			return fakeRow{id: id}
		}
		return fakeRow{err: pgx.ErrNoRows}
	case strings.HasPrefix(sql, "INSERT"):
		t := f.table(wordAfter(sql, "INTO "))
		if id, ok := t[key]; ok && strings.Contains(sql, "ON CONFLICT") {
			return fakeRow{id: id, inserted: false}
		}
		f.nextID++
		t[key] = f.nextID
		return fakeRow{id: f.nextID, inserted: true}
	}
	return fakeRow{err: fmt.Errorf("unexpected query %q", sql)}
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	sql = strings.TrimSpace(sql)
	switch {
	case strings.HasPrefix(sql, "INSERT INTO project_categories"):
		f.links[fmt.Sprint(args[0], "-", args[1])] = true
		return pgconn.NewCommandTag("INSERT 0 1"), nil
	case strings.HasPrefix(sql, "UPDATE"):
		f.updates++
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}
	return pgconn.CommandTag{}, fmt.Errorf("unexpected exec %q", sql)
}

func TestApply_FreshDatabase(t *testing.T) {
	db := newFakeDB()

	res, err := seed.Apply(context.Background(), db)
	require.NoError(t, err)

	assert.Equal(t, seed.Result{
		Categories:     3,
		Skills:         16,
		Educations:     1,
		Experiences:    1,
		Projects:       9,
		Certifications: 5,
	}, res)

	assert.Len(t, db.tables["categories"], 13)
	assert.Contains(t, db.tables["categories"], "Web Development")
	assert.Contains(t, db.tables["categories"], "LangChain")
	assert.Len(t, db.links, 18)
	assert.Zero(t, db.updates)
}

func TestApply_IsIdempotent(t *testing.T) {
	db := newFakeDB()
	ctx := context.Background()

	_, err := seed.Apply(ctx, db)
	require.NoError(t, err)

	res, err := seed.Apply(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, seed.Result{}, res)

	assert.Len(t, db.tables["skills"], 16)
	assert.Len(t, db.tables["projects"], 9)
	assert.Len(t, db.tables["certifications"], 5)
	assert.Len(t, db.tables["categories"], 13)
	assert.Len(t, db.links, 18)
	assert.Equal(t, 1, db.updates, "education is refreshed by degree on the second run")
}
