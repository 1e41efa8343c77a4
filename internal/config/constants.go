package config

// Config file names searched by FindConfig, in order.
var ConfigFileNames = []string{"radix.yaml", "radix.yml"}

// Integer mode limits
const (
	DefaultBitWidth = 32
	MaxBitWidth     = 1 << 16
	// ShiftMask caps shift amounts at 0..63 regardless of the bit width.
	ShiftMask = 63
)

// MaxSafeInteger is 2^53-1, the largest integer a float64 holds exactly.
const MaxSafeInteger = 1<<53 - 1

// History defaults
const (
	DefaultHistoryLimit = 30
	DefaultHistoryFile  = "radix_history.db"
)

// Server defaults
const (
	DefaultServerAddr = "127.0.0.1:7467"
	ServiceName       = "radix.v1.Calculator"
	EvaluateMethod    = "Evaluate"
)

// Built-in constant names
const (
	PiConstName  = "pi"
	TauConstName = "tau"
	EConstName   = "e"
)

// Built-in function names
const (
	SinFuncName   = "sin"
	CosFuncName   = "cos"
	TanFuncName   = "tan"
	AsinFuncName  = "asin"
	AcosFuncName  = "acos"
	AtanFuncName  = "atan"
	SqrtFuncName  = "sqrt"
	AbsFuncName   = "abs"
	FloorFuncName = "floor"
	CeilFuncName  = "ceil"
	RoundFuncName = "round"
	LogFuncName   = "log"
	LnFuncName    = "ln"
	MinFuncName   = "min"
	MaxFuncName   = "max"
	XorFuncName   = "xor"
)

// Advisory notes
const (
	PrecisionNote = "precision risk: integer exceeds 2^53-1"
)
