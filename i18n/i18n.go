package i18n

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Row positions of the problem-section headings in the locale matrix. The
// final position only marks the end of the last section.
var sectionPositions = []int{93, 95, 106, 112, 115, 124, 129}

// Table answers text lookups against a locale matrix loaded from CSV. The
// first row holds locale codes, the second row the locale display names
// used for reverse lookup.
type Table struct {
	rows        [][]string
	localeIndex map[string]int
	nameIndex   map[string]int
}

// Load reads the locale matrix from a CSV file.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads the locale matrix from r.
func Parse(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("i18n: locale matrix needs at least 2 rows, got %d", len(rows))
	}

	t := &Table{
		rows:        rows,
		localeIndex: make(map[string]int, len(rows[0])),
		nameIndex:   make(map[string]int, len(rows[1])),
	}
	for i, locale := range rows[0] {
		t.localeIndex[locale] = i
	}
	for i, name := range rows[1] {
		t.nameIndex[name] = i
	}
	return t, nil
}

// Text returns the cell at the 1-based row position for the given locale.
func (t *Table) Text(position int, locale string) (string, error) {
	col, ok := t.localeIndex[locale]
	if !ok {
		return "", fmt.Errorf("i18n: unknown locale %q", locale)
	}
	if position < 1 || position > len(t.rows) {
		return "", fmt.Errorf("i18n: position %d out of range", position)
	}
	row := t.rows[position-1]
	if col >= len(row) {
		return "", fmt.Errorf("i18n: locale %q has no cell at position %d", locale, position)
	}
	return row[col], nil
}

// LangName returns the display name of a locale. The data file does not
// carry Estonian, so "ee" is answered with a fixed name instead of the
// table; this override is deliberate.
func (t *Table) LangName(locale string) (string, error) {
	if locale == "ee" {
		return "Estonian", nil
	}
	return t.Text(2, locale)
}

// LocaleName maps a display name back to its locale code.
func (t *Table) LocaleName(name string) (string, error) {
	col, ok := t.nameIndex[name]
	if !ok {
		return "", fmt.Errorf("i18n: unknown locale name %q", name)
	}
	return t.rows[0][col], nil
}

// Locales returns all locale codes in matrix order.
func (t *Table) Locales() []string {
	return t.rows[0]
}

// SectionLabels returns the problem-section headings for a locale.
func (t *Table) SectionLabels(locale string) ([]string, error) {
	labels := make([]string, 0, len(sectionPositions)-1)
	for _, pos := range sectionPositions[:len(sectionPositions)-1] {
		label, err := t.Text(pos, locale)
		if err != nil {
			return nil, err
		}
		labels = append(labels, label)
	}
	return labels, nil
}
