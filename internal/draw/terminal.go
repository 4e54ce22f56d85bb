package draw

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1400 bytes stays under a typical MTU for smooth SSH transmission.
const maxChunkSize = 1400

// ChunkWriter accumulates text for terminal output and writes in chunks for optimal
// network flow (e.g. over SSH). Use MoveCursor, WriteString, WriteAt to accumulate,
// then Flush to write to the underlying writer. Implements io.Writer for Canvas.Render.
type ChunkWriter struct {
	buf    strings.Builder
	bufw   *bufio.Writer // Buffers writes to underlying writer for fewer syscalls
	numBuf [20]byte      // Scratch buffer for allocation-free integer formatting
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w. offsetCol and offsetRow
// are added to all MoveCursor coordinates (for canvas centering).
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		bufw:   bufio.NewWriterSize(w, 8192),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset (e.g. after terminal resize).
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends an ANSI cursor position sequence. col and row are 1-based
// canvas coordinates; offset is applied automatically.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf.WriteString("\033[")
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(row+cw.offRow), 10))
	cw.buf.WriteByte(';')
	cw.buf.Write(strconv.AppendInt(cw.numBuf[:0], int64(col+cw.offCol), 10))
	cw.buf.WriteByte('H')
}

// Write implements io.Writer for use with Canvas.Render.
func (cw *ChunkWriter) Write(p []byte) (n int, err error) {
	return cw.buf.Write(p)
}

// WriteString appends a string to the buffer.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf.WriteString(s)
}

// WriteAt writes a string at a 1-based canvas position; offset is applied automatically.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf.WriteString(s)
}

// WriteCentered writes s centered on col.
func (cw *ChunkWriter) WriteCentered(col, row int, s string) {
	cw.WriteAt(col-len(s)/2, row, s)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush writes the accumulated buffer to the underlying writer in chunks,
// then resets the buffer.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf.String()
	cw.buf.Reset()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		if _, err := cw.bufw.WriteString(chunk); err != nil {
			return err
		}
		if err := cw.bufw.Flush(); err != nil {
			return err
		}
		data = data[len(chunk):]
	}
	return cw.bufw.Flush()
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Field layout limits, in terminal cells.
const (
	MinRows = 12  // Smallest canvas that still shows the field
	MaxRows = 60  // Larger terminals get a centered, bordered field
	aspectN = 8   // cols = rows * aspectN / aspectD keeps 640x480 square on half-blocks
	aspectD = 3
)

// Layout fits the field into a terminal of termCols x termRows cells,
// keeping its 4:3 shape on the half-block grid and leaving one cell on each
// side for the border. It returns the canvas size and its 0-based offset.
// ok is false when the terminal is too small to show the field.
func Layout(termCols, termRows int) (cols, rows, offCol, offRow int, ok bool) {
	availCols := termCols - 2
	availRows := termRows - 2

	rows = min(availRows, availCols*aspectD/aspectN, MaxRows)
	if rows < MinRows {
		return 0, 0, 0, 0, false
	}
	cols = rows * aspectN / aspectD

	offCol = 1 + (availCols-cols)/2
	offRow = 1 + (availRows-rows)/2
	return cols, rows, offCol, offRow, true
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}
