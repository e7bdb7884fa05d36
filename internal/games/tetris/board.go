package tetris

// Board holds locked cells only, row-major. Zero means empty; locked cells
// keep the digit of the piece that left them.
type Board [][]rune

// NewBoard returns an empty board.
func NewBoard(rows, cols int) Board {
	b := make(Board, rows)
	for y := range b {
		b[y] = make([]rune, cols)
	}
	return b
}

// Rows returns the board height.
func (b Board) Rows() int { return len(b) }

// Cols returns the board width.
func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Clone returns a deep copy.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for y, row := range b {
		out[y] = append([]rune(nil), row...)
	}
	return out
}

// Collides reports whether p moved by (dx, dy) leaves the board through
// the sides or the bottom, or lands on a locked cell. Cells above the top
// row are allowed.
func Collides(b Board, p Piece, dx, dy int) bool {
	hit := false
	p.X += dx
	p.Y += dy
	p.Cells(func(x, y int) {
		switch {
		case x < 0 || x >= b.Cols() || y >= b.Rows():
			hit = true
		case y >= 0 && b[y][x] != 0:
			hit = true
		}
	})
	return hit
}

// Merge locks p into the board. Cells above the top row are dropped.
func Merge(b Board, p Piece) {
	p.Cells(func(x, y int) {
		if y >= 0 && y < b.Rows() && x >= 0 && x < b.Cols() {
			b[y][x] = p.Digit
		}
	})
}

// ClearLines removes every full row, shifts the rest down and inserts the
// same number of empty rows at the top. It returns the new board and the
// number of rows removed.
func ClearLines(b Board) (Board, int) {
	kept := make(Board, 0, b.Rows())
	for _, row := range b {
		if !full(row) {
			kept = append(kept, row)
		}
	}
	cleared := b.Rows() - len(kept)
	if cleared == 0 {
		return b, 0
	}
	out := NewBoard(cleared, b.Cols())
	return append(out, kept...), cleared
}

func full(row []rune) bool {
	for _, c := range row {
		if c == 0 {
			return false
		}
	}
	return true
}
