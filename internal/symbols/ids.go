package symbols

// SymbolID refers to a symbol in a Table. The zero value is reserved and
// never names a live symbol.
type SymbolID uint32

// FrameID refers to a frame in a Table. The zero value is reserved.
type FrameID uint32

const (
	NoSymbolID SymbolID = 0
	NoFrameID  FrameID  = 0
)

func (id SymbolID) IsValid() bool { return id != NoSymbolID }

func (id FrameID) IsValid() bool { return id != NoFrameID }
