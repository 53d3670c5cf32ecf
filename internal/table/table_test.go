package table

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReadFile(t *testing.T) {
	path := writeFixture(t, "a,b,c\n1,2,3\n4,5,6\n")
	tbl, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(tbl.Header, []string{"a", "b", "c"}) {
		t.Errorf("bad header: %v", tbl.Header)
	}
	if len(tbl.Rows) != 2 || tbl.Rows[1][2] != "6" {
		t.Errorf("bad rows: %v", tbl.Rows)
	}
}

func TestReadFile_HeaderOnly(t *testing.T) {
	path := writeFixture(t, "a,b,c\n")
	tbl, err := ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tbl.Rows) != 0 {
		t.Errorf("expected zero rows, got %v", tbl.Rows)
	}
}

func TestReadFile_Missing(t *testing.T) {
	if _, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadFile_Empty(t *testing.T) {
	if _, err := ReadFile(writeFixture(t, "")); err == nil {
		t.Fatal("expected error for empty file")
	}
}

// Ragged rows must fail the whole read; nothing downstream sees a
// partially parsed table.
func TestReadFile_RaggedRow(t *testing.T) {
	if _, err := ReadFile(writeFixture(t, "a,b,c\n1,2\n")); err == nil {
		t.Fatal("expected error for ragged row")
	}
}

func TestWriteFile_RoundTrip(t *testing.T) {
	want := &Table{
		Header: []string{"symbol", "win_r", "recommendation"},
		Rows: [][]string{
			{"AAPL", "2.25", "take_trade"},
			{"XYZ", "1.5", "skip_trade"},
		},
	}
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := want.WriteFile(path); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %v\nwant %v", got, want)
	}
}

func TestColumn(t *testing.T) {
	tbl := &Table{Header: []string{"a", "b"}}
	if idx, ok := tbl.Column("b"); !ok || idx != 1 {
		t.Errorf("Column(b) = %d, %v", idx, ok)
	}
	if _, ok := tbl.Column("z"); ok {
		t.Error("Column(z) should not be found")
	}
}
