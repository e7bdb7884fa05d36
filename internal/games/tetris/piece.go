package tetris

// Shape is a rectangular occupancy mask, row-major.
type Shape [][]bool

func shape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, r := range rows {
		s[y] = make([]bool, len(r))
		for x, c := range r {
			s[y][x] = c == '#'
		}
	}
	return s
}

// Shapes holds the seven tetrominoes in spawn orientation: I, O, T, L, J, S, Z.
var Shapes = []Shape{
	shape("####"),
	shape("##", "##"),
	shape("###", ".#."),
	shape("###", "#.."),
	shape("###", "..#"),
	shape("##.", ".##"),
	shape(".##", "##."),
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Rotate returns the shape turned clockwise: transpose, then reverse each
// row.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := 0; i < w; i++ {
		out[i] = make([]bool, h)
		for j := 0; j < h; j++ {
			out[i][j] = s[h-1-j][i]
		}
	}
	return out
}

// Piece is the falling tetromino. X, Y locate the shape's top-left cell.
type Piece struct {
	Shape Shape
	X, Y  int
	Digit rune
}

// Cells calls fn for every occupied board cell of the piece.
func (p Piece) Cells(fn func(x, y int)) {
	for y, row := range p.Shape {
		for x, filled := range row {
			if filled {
				fn(p.X+x, p.Y+y)
			}
		}
	}
}

// Rotated returns the piece with its shape turned clockwise.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}
