package i18n

import (
	"fmt"
	"strings"
	"testing"
)

func buildMatrix(rows int) string {
	var b strings.Builder
	b.WriteString("en,fr,ee\n")
	b.WriteString("English,French,WrongName\n")
	for i := 3; i <= rows; i++ {
		fmt.Fprintf(&b, "t%d-en,t%d-fr,t%d-ee\n", i, i, i)
	}
	return b.String()
}

func mustParse(t *testing.T, csv string) *Table {
	t.Helper()
	table, err := Parse(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return table
}

func TestText(t *testing.T) {
	table := mustParse(t, buildMatrix(10))

	got, err := table.Text(3, "fr")
	if err != nil {
		t.Fatalf("Text(3, fr) failed: %v", err)
	}
	if got != "t3-fr" {
		t.Errorf("Text(3, fr) = %q, want %q", got, "t3-fr")
	}

	if _, err := table.Text(3, "xx"); err == nil {
		t.Error("expected error for unknown locale")
	}
	if _, err := table.Text(0, "en"); err == nil {
		t.Error("expected error for position 0")
	}
	if _, err := table.Text(11, "en"); err == nil {
		t.Error("expected error for position past the matrix")
	}
}

func TestLangName(t *testing.T) {
	table := mustParse(t, buildMatrix(10))

	got, err := table.LangName("fr")
	if err != nil {
		t.Fatalf("LangName(fr) failed: %v", err)
	}
	if got != "French" {
		t.Errorf("LangName(fr) = %q, want %q", got, "French")
	}

	// "ee" is answered with a fixed name regardless of table contents
	got, err = table.LangName("ee")
	if err != nil {
		t.Fatalf("LangName(ee) failed: %v", err)
	}
	if got != "Estonian" {
		t.Errorf("LangName(ee) = %q, want %q", got, "Estonian")
	}
}

func TestLocaleName(t *testing.T) {
	table := mustParse(t, buildMatrix(10))

	got, err := table.LocaleName("French")
	if err != nil {
		t.Fatalf("LocaleName(French) failed: %v", err)
	}
	if got != "fr" {
		t.Errorf("LocaleName(French) = %q, want %q", got, "fr")
	}

	if _, err := table.LocaleName("Klingon"); err == nil {
		t.Error("expected error for unknown display name")
	}
}

func TestSectionLabels(t *testing.T) {
	table := mustParse(t, buildMatrix(130))

	labels, err := table.SectionLabels("en")
	if err != nil {
		t.Fatalf("SectionLabels failed: %v", err)
	}
	want := []string{"t93-en", "t95-en", "t106-en", "t112-en", "t115-en", "t124-en"}
	if len(labels) != len(want) {
		t.Fatalf("got %d labels, want %d", len(labels), len(want))
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("label %d = %q, want %q", i, labels[i], want[i])
		}
	}

	// matrix too short for the section rows
	short := mustParse(t, buildMatrix(50))
	if _, err := short.SectionLabels("en"); err == nil {
		t.Error("expected error for a matrix without section rows")
	}
}

func TestParseRejectsTinyMatrix(t *testing.T) {
	if _, err := Parse(strings.NewReader("en,fr\n")); err == nil {
		t.Error("expected error for a one-row matrix")
	}
}
