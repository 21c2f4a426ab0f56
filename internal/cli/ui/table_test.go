package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestTable(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	table := NewTable(&buf, true, "Kind", "Raw", "Name", "Base")

	table.AddRow("named struct", "catalog.Point", "catalog.Point", "Point")
	table.AddRow("pointer", "*catalog.Point", "*catalog.Point", "*catalog.Point")

	table.Render()

	output := buf.String()

	// Check headers
	for _, header := range []string{"Kind", "Raw", "Name", "Base"} {
		if !strings.Contains(output, header) {
			t.Errorf("Table output missing header %q", header)
		}
	}

	// Check rows
	if !strings.Contains(output, "named struct") {
		t.Errorf("Table output missing row data 'named struct'")
	}
	if !strings.Contains(output, "*catalog.Point") {
		t.Errorf("Table output missing row data '*catalog.Point'")
	}

	// Check separator
	if !strings.Contains(output, "─") {
		t.Errorf("Table output missing separator")
	}

	// Columns align on the widest cell
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (header, divider, 2 rows), got %d", len(lines))
	}
	if !strings.HasPrefix(lines[3], "pointer     ") {
		t.Errorf("expected padded first column, got %q", lines[3])
	}
}

func TestTableEmpty(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	table := NewTable(&buf, true)

	table.Render()

	if output := buf.String(); output != "" {
		t.Errorf("Expected empty output for table with no headers, got: %q", output)
	}
}

func TestKeyValueTable(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	kvTable := NewKeyValueTable(&buf, true)

	kvTable.AddRow("Name start", "58")
	kvTable.AddRow("Appearances", "1")
	kvTable.AddRow("Boilerplate", "60")

	kvTable.Render()

	output := buf.String()
	for _, exp := range []string{"Name start:", "58", "Appearances:", "Boilerplate:"} {
		if !strings.Contains(output, exp) {
			t.Errorf("KeyValueTable output missing: %q", exp)
		}
	}

	// Keys pad to the widest one
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines[0]) <= len("Name start:") {
		t.Errorf("expected padded key column, got %q", lines[0])
	}
}

func TestKeyValueTableEmpty(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	kvTable := NewKeyValueTable(&buf, true)
	kvTable.Render()

	if output := buf.String(); output != "" {
		t.Errorf("Expected empty output for empty KeyValueTable, got: %q", output)
	}
}

func TestSection(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	section := NewSection(&buf, "Checks", true)
	section.AddLine("sentinel round-trip: ok")
	section.AddLine("length identities: ok")
	section.Render()

	output := buf.String()
	if !strings.Contains(output, "Checks") {
		t.Errorf("Section output missing title 'Checks'")
	}
	for _, exp := range []string{"  sentinel round-trip: ok", "  length identities: ok"} {
		if !strings.Contains(output, exp) {
			t.Errorf("Section output missing indented line: %q", exp)
		}
	}
}

func TestHeaderAndDivider(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var buf bytes.Buffer
	Header(&buf, "Type Catalog", true)

	output := buf.String()
	if !strings.Contains(output, "Type Catalog") {
		t.Errorf("Header output missing title")
	}
	if !strings.Contains(output, strings.Repeat("─", len("Type Catalog"))) {
		t.Errorf("Header output missing matching divider")
	}

	buf.Reset()
	Divider(&buf, 0, true)
	if !strings.Contains(buf.String(), strings.Repeat("─", 80)) {
		t.Errorf("Divider should default to width 80")
	}
}
