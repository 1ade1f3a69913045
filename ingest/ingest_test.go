package ingest

import (
	"errors"
	"strings"
	"testing"
)

func TestReadFileCSV(t *testing.T) {
	data := "ساعة الانتهاء\n6.30\n7.00\n4.30\nabc\n18:45\n"

	res, err := ReadFile(strings.NewReader(data), "attendance.csv")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(res.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d: %+v", len(res.Rows), res.Rows)
	}
	// 4.30 is exactly the threshold and abc is junk: both dropped.
	if res.Skipped != 2 {
		t.Errorf("Skipped = %d, want 2", res.Skipped)
	}

	wantHours := []float64{2, 2.5, 2.25}
	for i, want := range wantHours {
		if res.Rows[i].Hours != want {
			t.Errorf("row %d hours = %v, want %v", i, res.Rows[i].Hours, want)
		}
	}
}

func TestReadFileCSVAliasColumn(t *testing.T) {
	// The clock-out column is found by header alias even when it is not the
	// first column, and a BOM on the header must not break matching.
	data := "\uFEFFname,End Time\nAhmad,6.30\nLina,5.00\n"

	res, err := ReadFile(strings.NewReader(data), "shift.CSV")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %+v", len(res.Rows), res.Rows)
	}
	if res.Rows[0].EndTime != "6.30" || res.Rows[1].EndTime != "5.00" {
		t.Errorf("wrong column picked: %+v", res.Rows)
	}
}

func TestReadFileCSVFirstColumnFallback(t *testing.T) {
	// No recognized header: the first column is used.
	data := "klokken\n6.30\n7.15\n"

	res, err := ReadFile(strings.NewReader(data), "export.csv")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(res.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %+v", len(res.Rows), res.Rows)
	}
}

func TestReadFileUnsupportedExtension(t *testing.T) {
	_, err := ReadFile(strings.NewReader("whatever"), "notes.txt")
	if !errors.Is(err, ErrUnsupportedFile) {
		t.Fatalf("expected ErrUnsupportedFile, got %v", err)
	}
}

func TestTemplateWorkbookRoundTrip(t *testing.T) {
	f, err := TemplateWorkbook()
	if err != nil {
		t.Fatalf("TemplateWorkbook: %v", err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer: %v", err)
	}

	res, err := ReadFile(buf, "overtime_template.xlsx")
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	// The template carries eight sample times; 4.30 is at the threshold and
	// yields zero hours.
	if len(res.Rows) != 7 {
		t.Errorf("expected 7 rows, got %d: %+v", len(res.Rows), res.Rows)
	}
	if res.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", res.Skipped)
	}
}
