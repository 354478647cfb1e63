package qr

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// RecoveryLevel is the error correction level used by the encoder.
type RecoveryLevel int

const (
	Low RecoveryLevel = iota
	Medium
	High
	Highest
)

var levelNames = map[string]RecoveryLevel{
	"l": Low, "low": Low,
	"m": Medium, "medium": Medium,
	"q": High, "high": High, "quartile": High,
	"h": Highest, "highest": Highest,
}

// ParseLevel accepts the L/M/Q/H letters or the level names, in any case.
func ParseLevel(name string) (RecoveryLevel, error) {
	level, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%w: unknown recovery level %q", ErrEncoding, name)
	}
	return level, nil
}

func (l RecoveryLevel) String() string {
	switch l {
	case Low:
		return "L"
	case Medium:
		return "M"
	case High:
		return "Q"
	case Highest:
		return "H"
	}
	return fmt.Sprintf("RecoveryLevel(%d)", int(l))
}

// MaxVersion is the largest QR version the encoder accepts.
const MaxVersion = 40

// EncodeOptions controls how data is turned into a module grid.
type EncodeOptions struct {
	Version   int           // 0 picks the smallest version that fits the data
	Level     RecoveryLevel // Medium by default
	QuietZone int           // Light modules added on every side of the symbol
}

// ModuleGrid is a read-only square matrix of QR modules.
type ModuleGrid struct {
	size    int
	modules [][]bool
}

// NewModuleGrid copies modules into a grid. The matrix must be square.
func NewModuleGrid(modules [][]bool) (*ModuleGrid, error) {
	n := len(modules)
	if n == 0 {
		return nil, fmt.Errorf("%w: empty module matrix", ErrEncoding)
	}
	cp := make([][]bool, n)
	for r, row := range modules {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d modules, want %d", ErrEncoding, r, len(row), n)
		}
		cp[r] = append([]bool(nil), row...)
	}
	return &ModuleGrid{size: n, modules: cp}, nil
}

// Size returns the side length of the grid in modules.
func (g *ModuleGrid) Size() int {
	return g.size
}

// Dark reports whether the module at row, col is dark. Out of range cells are light.
func (g *ModuleGrid) Dark(row, col int) bool {
	if row < 0 || col < 0 || row >= g.size || col >= g.size {
		return false
	}
	return g.modules[row][col]
}

// Encode turns data into a module grid.
func Encode(data string, opts EncodeOptions) (*ModuleGrid, error) {
	if data == "" {
		return nil, ErrEmptyData
	}
	if opts.Version < 0 || opts.Version > MaxVersion {
		return nil, fmt.Errorf("%w: version %d out of range 0..%d", ErrEncoding, opts.Version, MaxVersion)
	}
	if opts.Level < Low || opts.Level > Highest {
		return nil, fmt.Errorf("%w: unknown recovery level %d", ErrEncoding, opts.Level)
	}

	var (
		code *qrcode.QRCode
		err  error
	)
	if opts.Version == 0 {
		code, err = qrcode.New(data, qrcode.RecoveryLevel(opts.Level))
	} else {
		code, err = qrcode.NewWithForcedVersion(data, opts.Version, qrcode.RecoveryLevel(opts.Level))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	code.DisableBorder = true

	return NewModuleGrid(pad(code.Bitmap(), opts.QuietZone))
}

func pad(modules [][]bool, quiet int) [][]bool {
	if quiet <= 0 {
		return modules
	}
	n := len(modules) + 2*quiet
	out := make([][]bool, n)
	for r := range out {
		out[r] = make([]bool, n)
		if r >= quiet && r < n-quiet {
			copy(out[r][quiet:], modules[r-quiet])
		}
	}
	return out
}
