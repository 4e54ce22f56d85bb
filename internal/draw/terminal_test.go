package draw

import (
	"bytes"
	"strings"
	"testing"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		name               string
		termCols, termRows int
		cols, rows         int
		offCol, offRow     int
		ok                 bool
	}{
		{"classic 80x24", 80, 24, 58, 22, 11, 1, true},
		{"narrow", 50, 40, 48, 18, 1, 11, true},
		{"too small", 30, 10, 0, 0, 0, 0, false},
		{"capped", 400, 100, 160, 60, 120, 20, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows, offCol, offRow, ok := Layout(tt.termCols, tt.termRows)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if cols != tt.cols || rows != tt.rows || offCol != tt.offCol || offRow != tt.offRow {
				t.Errorf("Layout(%d, %d) = %d, %d, %d, %d, want %d, %d, %d, %d",
					tt.termCols, tt.termRows, cols, rows, offCol, offRow,
					tt.cols, tt.rows, tt.offCol, tt.offRow)
			}
		})
	}
}

func TestLayout_FitsTerminal(t *testing.T) {
	for termCols := 20; termCols <= 300; termCols += 7 {
		for termRows := 10; termRows <= 120; termRows += 5 {
			cols, rows, offCol, offRow, ok := Layout(termCols, termRows)
			if !ok {
				continue
			}
			if offCol < 1 || offCol+cols+1 > termCols || offRow < 1 || offRow+rows+1 > termRows {
				t.Errorf("Layout(%d, %d) = %dx%d at (%d, %d), border does not fit",
					termCols, termRows, cols, rows, offCol, offRow)
			}
		}
	}
}

func TestChunkWriter(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 2, 3)

	cw.WriteAt(1, 1, "hi")
	if out.Len() != 0 {
		t.Fatalf("wrote %q before Flush", out.String())
	}
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if want := "\033[4;3Hhi"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}

	out.Reset()
	cw.SetOffset(0, 0)
	cw.WriteCentered(10, 1, "abcd")
	cw.Flush()
	if want := "\033[1;8Habcd"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestChunkWriter_LargeFlush(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out, 0, 0)
	payload := strings.Repeat("x", 5*maxChunkSize+17)

	cw.WriteString(payload)
	if err := cw.Flush(); err != nil {
		t.Fatal(err)
	}
	if out.String() != payload {
		t.Errorf("flushed %d bytes, want %d", out.Len(), len(payload))
	}
}
