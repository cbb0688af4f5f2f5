package codec

import (
	"sort"
	"sync"
)

// Registry manages the available block codecs
type Registry struct {
	mu     sync.RWMutex
	codecs map[string]BlockCodec
}

var defaultRegistry = NewRegistry()

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]BlockCodec),
	}
}

// Register registers a codec under its name in the default registry
func Register(codec BlockCodec) {
	defaultRegistry.Register(codec)
}

// Get retrieves a codec by name from the default registry
func Get(name string) (BlockCodec, error) {
	return defaultRegistry.Get(name)
}

// List returns all codecs of the default registry
func List() []BlockCodec {
	return defaultRegistry.List()
}

// Register registers a codec under its name, replacing any previous one
func (r *Registry) Register(codec BlockCodec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.codecs[codec.Name()] = codec
}

// Get retrieves a codec by name
func (r *Registry) Get(name string) (BlockCodec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codec, ok := r.codecs[name]
	if !ok {
		return nil, ErrCodecNotFound
	}
	return codec, nil
}

// List returns all registered codecs ordered by name
func (r *Registry) List() []BlockCodec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codecs := make([]BlockCodec, 0, len(r.codecs))
	for _, codec := range r.codecs {
		codecs = append(codecs, codec)
	}
	sort.Slice(codecs, func(i, j int) bool {
		return codecs[i].Name() < codecs[j].Name()
	})

	return codecs
}
