package batch

import (
	"log/slog"
	"runtime"

	"github.com/cocosip/go-blaz-codec/codec"
	dicomcodec "github.com/cocosip/go-dicom/pkg/imaging/codec"
)

// Ensure Parameters implements codec.Parameters
var _ dicomcodec.Parameters = (*Parameters)(nil)

// Parameters controls how many blocks are sequenced into one buffer
type Parameters struct {
	codec.BaseOptions

	// IsVerbose logs a summary line per batch
	IsVerbose bool

	// Logger receives verbose output. nil = slog.Default()
	Logger *slog.Logger

	// internal storage for compatibility with generic parameter interface
	params map[string]interface{}
}

// NewParameters creates Parameters with default values: contiguous blocks,
// one worker per CPU
func NewParameters() *Parameters {
	return &Parameters{
		params: make(map[string]interface{}),
	}
}

// GetParameter retrieves a parameter by name (implements codec.Parameters)
func (p *Parameters) GetParameter(name string) interface{} {
	switch name {
	case "workers":
		return p.Workers
	case "stride":
		return p.Stride
	case "isVerbose":
		return p.IsVerbose
	case "logger":
		return p.Logger
	default:
		return p.params[name]
	}
}

// SetParameter sets a parameter value (implements codec.Parameters)
func (p *Parameters) SetParameter(name string, value interface{}) {
	switch name {
	case "workers":
		if v, ok := value.(int); ok {
			p.Workers = v
		}
	case "stride":
		if v, ok := value.(int); ok {
			p.Stride = v
		}
	case "isVerbose":
		if v, ok := value.(bool); ok {
			p.IsVerbose = v
		}
	case "logger":
		if v, ok := value.(*slog.Logger); ok {
			p.Logger = v
		}
	default:
		if p.params == nil {
			p.params = make(map[string]interface{})
		}
		p.params[name] = value
	}
}

// Validate normalizes out-of-range values back to their defaults.
// A stride that is too small for a codec is only detectable once the codec
// is known and is reported by Encode and Decode.
func (p *Parameters) Validate() error {
	if p.Workers < 0 {
		p.Workers = 0
	}
	if p.Stride < 0 {
		p.Stride = 0
	}
	return p.BaseOptions.Validate()
}

// WithWorkers sets the worker limit and returns the parameters for chaining
func (p *Parameters) WithWorkers(workers int) *Parameters {
	p.Workers = workers
	return p
}

// WithStride sets the block stride and returns the parameters for chaining
func (p *Parameters) WithStride(stride int) *Parameters {
	p.Stride = stride
	return p
}

// WithVerbose enables summary logging and returns the parameters for chaining
func (p *Parameters) WithVerbose(logger *slog.Logger) *Parameters {
	p.IsVerbose = true
	p.Logger = logger
	return p
}

func (p *Parameters) workers() int {
	if p.Workers == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return p.Workers
}

func (p *Parameters) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.Default()
	}
	return p.Logger
}
