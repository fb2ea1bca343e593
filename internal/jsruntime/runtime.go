package jsruntime

import (
	"errors"
	"fmt"
	"sync"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/console"
	"github.com/dop251/goja_nodejs/require"
)

// Builder configures a JsRuntime before construction.
type Builder struct {
	enableNodejs bool
	kv           *RamKv
	injectors    []Injector
}

// Injector adds a custom capability to the runtime during Build.
type Injector func(r *JsRuntime) error

// JsRuntime wraps a single goja VM.
type JsRuntime struct {
	vm       *goja.Runtime
	mu       sync.Mutex // goja is not thread-safe
	registry *require.Registry
}

func NewBuilder() *Builder {
	return &Builder{}
}

// WithNodejs enables Node.js style require() and console support.
func (b *Builder) WithNodejs() *Builder {
	b.enableNodejs = true
	return b
}

// WithMemoryKv exposes an in-memory KV store as the global `kv` object.
func (b *Builder) WithMemoryKv(kv ...*RamKv) *Builder {
	if len(kv) > 0 && kv[0] != nil {
		b.kv = kv[0]
	} else {
		b.kv = NewRamKv()
	}
	return b
}

// WithInjector registers a custom injector, run in order during Build.
func (b *Builder) WithInjector(inj Injector) *Builder {
	if inj != nil {
		b.injectors = append(b.injectors, inj)
	}
	return b
}

func (b *Builder) Build() (*JsRuntime, error) {
	registry := new(require.Registry)
	vm := goja.New()

	r := &JsRuntime{
		vm:       vm,
		registry: registry,
	}

	if b.enableNodejs {
		r.registry.Enable(r.vm)
		console.Enable(r.vm)
	}

	if b.kv != nil {
		b.injectMemoryKv(r, b.kv)
	}

	for _, inj := range b.injectors {
		if err := inj(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (b *Builder) injectMemoryKv(r *JsRuntime, kv *RamKv) {
	obj := r.vm.NewObject()

	// kv.set(key, value)
	obj.Set("set", func(call goja.FunctionCall) goja.Value {
		key := call.Argument(0).String()
		val := call.Argument(1).Export()
		if err := kv.Set(key, val); err != nil {
			return r.vm.NewGoError(err)
		}
		return goja.Undefined()
	})

	// kv.get(key, defaultValue)
	obj.Set("get", func(call goja.FunctionCall) goja.Value {
		key := call.Argument(0).String()
		defaultValue := call.Argument(1)
		val, exists := kv.Get(key)
		if !exists {
			if defaultValue != nil {
				return defaultValue
			}
			return goja.Undefined()
		}
		return r.vm.ToValue(val)
	})

	// kv.del(key)
	obj.Set("del", func(call goja.FunctionCall) goja.Value {
		kv.Del(call.Argument(0).String())
		return goja.Undefined()
	})

	// kv.has(key)
	obj.Set("has", func(call goja.FunctionCall) goja.Value {
		return r.vm.ToValue(kv.Has(call.Argument(0).String()))
	})

	r.vm.Set("kv", obj)
}

func (r *JsRuntime) GetVM() *goja.Runtime {
	return r.vm
}

func (r *JsRuntime) RunScript(script string) (goja.Value, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.vm.RunString(script)
}

// Call invokes a global function. If the result is a promise it is settled by
// draining the VM's job queue; a rejected promise is returned as an error.
// Calling a name that is not a function returns (nil, nil).
func (r *JsRuntime) Call(function string, params ...any) (goja.Value, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	fn, ok := goja.AssertFunction(r.vm.Get(function))
	if !ok {
		return nil, nil
	}
	vals := make([]goja.Value, len(params))
	for i, p := range params {
		vals[i] = r.vm.ToValue(p)
	}
	v, err := fn(goja.Undefined(), vals...)
	if err != nil {
		return nil, err
	}
	return r.settle(v)
}

func (r *JsRuntime) HasFunction(function string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := goja.AssertFunction(r.vm.Get(function))
	return ok
}

// settle resolves promise results. goja only drains its job queue after a
// program run, so a tiny no-op script pushes pending microtasks through.
func (r *JsRuntime) settle(v goja.Value) (goja.Value, error) {
	p, ok := v.Export().(*goja.Promise)
	if !ok {
		return v, nil
	}

	_, _ = r.vm.RunString("void 0")

	switch p.State() {
	case goja.PromiseStateFulfilled:
		return p.Result(), nil
	case goja.PromiseStateRejected:
		return nil, fmt.Errorf("promise rejected: %s", p.Result().String())
	default:
		return nil, errors.New("promise still pending after job queue drain")
	}
}
