package footing

// Footing is any foundation shape the bearing-capacity formulas can
// take shape factors from.
type Footing interface {
	// Width returns the footing width B (shorter plan dimension).
	Width() float64
	// Length returns the footing length L (longer plan dimension).
	Length() float64
}

// Circular is a circular footing. The diameter is the only degree of
// freedom; width and length are aliases of it, so writing through any
// accessor updates the one stored dimension.
//
// Dimensions are not validated for sign or magnitude; callers supply
// physically sensible values.
type Circular struct {
	diameter float64
}

// NewCircular creates a circular footing with the given diameter.
func NewCircular(diameter float64) *Circular {
	return &Circular{diameter: diameter}
}

func (f *Circular) Diameter() float64 { return f.diameter }
func (f *Circular) Width() float64    { return f.diameter }
func (f *Circular) Length() float64   { return f.diameter }

func (f *Circular) SetDiameter(d float64) { f.diameter = d }
func (f *Circular) SetWidth(w float64)    { f.diameter = w }
func (f *Circular) SetLength(l float64)   { f.diameter = l }

// Square is a square footing. The side length is the only degree of
// freedom and width reads and writes through to it.
type Square struct {
	length float64
}

// NewSquare creates a square footing with the given side length.
func NewSquare(length float64) *Square {
	return &Square{length: length}
}

func (f *Square) Length() float64 { return f.length }
func (f *Square) Width() float64  { return f.length }

func (f *Square) SetLength(l float64) { f.length = l }
func (f *Square) SetWidth(w float64)  { f.length = w }

// Rectangular is a rectangular footing with independent width and
// length.
type Rectangular struct {
	width  float64
	length float64
}

// NewRectangular creates a rectangular footing with the given plan
// dimensions.
func NewRectangular(width, length float64) *Rectangular {
	return &Rectangular{width: width, length: length}
}

func (f *Rectangular) Width() float64  { return f.width }
func (f *Rectangular) Length() float64 { return f.length }

func (f *Rectangular) SetWidth(w float64)  { f.width = w }
func (f *Rectangular) SetLength(l float64) { f.length = l }
