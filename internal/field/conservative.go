package field

// DimU is the number of conservative components per node: rho, rhoU, rhoV,
// rhoW, rhoE.
const DimU = 5

// Field holds two time levels of the conservative-variable array and swaps
// between them by exchanging slice headers, never by copying. Grounded on
// the original ArtraCFD "Field.Un/U/Uswap" triple buffer
// (original_source/main.c) and the teacher's own "swap base pointers"
// idiom called out in spec.md's design notes.
type Field struct {
	nMax int
	a, b []float64 // each nMax*DimU long; Cur/Next alternate between them
	cur  *[]float64
	next *[]float64
}

// NewField allocates both time-level buffers for a grid of nMax nodes.
func NewField(nMax int) *Field {
	f := &Field{
		nMax: nMax,
		a:    make([]float64, nMax*DimU),
		b:    make([]float64, nMax*DimU),
	}
	f.cur = &f.a
	f.next = &f.b
	return f
}

// Cur returns the buffer the current time step reads from.
func (f *Field) Cur() []float64 { return *f.cur }

// Next returns the buffer the current time step writes into.
func (f *Field) Next() []float64 { return *f.next }

// Swap exchanges the roles of the two buffers in O(1): it swaps which
// slice header Cur/Next point at, copying no bytes. Calling Swap twice
// restores both buffers to their original roles (spec.md S5).
func (f *Field) Swap() {
	f.cur, f.next = f.next, f.cur
}

// At returns the 5-component conservative state at flat node index idx from
// buf (normally the result of Cur() or Next()).
func At(buf []float64, idx int) [DimU]float64 {
	o := idx * DimU
	return [DimU]float64{buf[o], buf[o+1], buf[o+2], buf[o+3], buf[o+4]}
}

// Set writes the 5-component conservative state U at flat node index idx
// into buf.
func Set(buf []float64, idx int, u [DimU]float64) {
	o := idx * DimU
	copy(buf[o:o+DimU], u[:])
}
