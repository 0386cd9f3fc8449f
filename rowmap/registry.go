package rowmap

import (
	"fmt"
	"reflect"
	"sync"
)

// DecodeFunc decodes a raw column value into dest, a pointer to the registered type.
type DecodeFunc func(src any, dest any) error

// Registry maps Go types to decode functions. Row adapters consult it before
// falling back to their native decoding. A nil *Registry is empty.
type Registry struct {
	mu       sync.RWMutex
	decoders map[reflect.Type]DecodeFunc
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{decoders: make(map[reflect.Type]DecodeFunc)}
}

// Register installs fn as the decoder for T, replacing any previous one.
func Register[T any](r *Registry, fn func(src any) (T, error)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.decoders == nil {
		r.decoders = make(map[reflect.Type]DecodeFunc)
	}

	r.decoders[reflect.TypeFor[T]()] = func(src any, dest any) error {
		p, ok := dest.(*T)
		if !ok {
			return fmt.Errorf("rowmap: decoder for %s got destination %T", reflect.TypeFor[T](), dest)
		}

		v, err := fn(src)
		if err != nil {
			return err
		}

		*p = v

		return nil
	}
}

// Lookup returns the decoder registered for t.
func (r *Registry) Lookup(t reflect.Type) (DecodeFunc, bool) {
	if r == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.decoders[t]

	return fn, ok
}

// Decode runs the decoder registered for dest's element type.
// ok is false when dest is not a pointer or no decoder is registered.
func (r *Registry) Decode(src any, dest any) (ok bool, err error) {
	rt := reflect.TypeOf(dest)
	if rt == nil || rt.Kind() != reflect.Pointer {
		return false, nil
	}

	fn, found := r.Lookup(rt.Elem())
	if !found {
		return false, nil
	}

	return true, fn(src, dest)
}

// Len returns the number of registered decoders.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.decoders)
}
