package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
)

func TestParseDialect(t *testing.T) {
	cases := []struct {
		in      string
		want    Dialect
		wantErr bool
	}{
		{"", DialectSQLite, false},
		{"sqlite", DialectSQLite, false},
		{" SQLite3 ", DialectSQLite, false},
		{"postgres", DialectPostgres, false},
		{"PostgreSQL", DialectPostgres, false},
		{"mysql", "", true},
	}
	for _, tc := range cases {
		got, err := ParseDialect(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseDialect(%q) err=%v, wantErr=%v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseDialect(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDialect_Rebind(t *testing.T) {
	q := `UPDATE feedback SET title = ?, content = ? WHERE id = ?`
	if got := DialectSQLite.Rebind(q); got != q {
		t.Fatalf("sqlite rebind changed query: %q", got)
	}
	want := `UPDATE feedback SET title = $1, content = $2 WHERE id = $3`
	if got := DialectPostgres.Rebind(q); got != want {
		t.Fatalf("postgres rebind = %q, want %q", got, want)
	}
}

func TestIsUniqueViolation_Postgres(t *testing.T) {
	wrapped := fmt.Errorf("exec: %w", &pq.Error{Code: "23505"})
	if !isUniqueViolation(wrapped) {
		t.Fatalf("expected wrapped 23505 to be a unique violation")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatalf("foreign key violation must not count as unique violation")
	}
	if isUniqueViolation(errors.New("UNIQUE constraint failed")) {
		t.Fatalf("plain errors are never unique violations")
	}
}
