package app

import "testing"

func TestNormalizeDBURL(t *testing.T) {
	t.Parallel()

	got := normalizeDBURL("postgres://u:p@localhost:5432/cleansheets?sslmode=disable", true)
	want := "postgres://u:p@localhost:5432/cleansheets?disable_prepared_binary_result=yes&sslmode=disable"
	if got != want {
		t.Fatalf("unexpected url:\nwant: %s\ngot:  %s", want, got)
	}
}

func TestNormalizeDBURLDisabled(t *testing.T) {
	t.Parallel()

	raw := "postgres://u:p@localhost:5432/cleansheets"
	if got := normalizeDBURL(raw, false); got != raw {
		t.Fatalf("url should be untouched, got %s", got)
	}
}

func TestDBNameFromURL(t *testing.T) {
	t.Parallel()

	if got := dbNameFromURL("postgres://u:p@localhost:5432/cleansheets?sslmode=disable"); got != "cleansheets" {
		t.Fatalf("unexpected db name: %s", got)
	}
	if got := dbNameFromURL("host=localhost dbname=cleansheets user=u"); got != "cleansheets" {
		t.Fatalf("unexpected db name from DSN: %s", got)
	}
	if got := dbNameFromURL("not a url"); got != "" {
		t.Fatalf("expected empty db name, got %s", got)
	}
}
