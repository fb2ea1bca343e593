package jsruntime

import "sync"

// RamKv is a simple in-memory KV store shared between plugin runtimes.
type RamKv struct {
	data map[string]interface{}
	mu   sync.RWMutex
}

func NewRamKv() *RamKv {
	return &RamKv{
		data: make(map[string]interface{}),
	}
}

func (kv *RamKv) Set(key string, value interface{}) error {
	kv.mu.Lock()
	kv.data[key] = value
	kv.mu.Unlock()
	return nil
}

func (kv *RamKv) Get(key string) (interface{}, bool) {
	kv.mu.RLock()
	val, ok := kv.data[key]
	kv.mu.RUnlock()
	return val, ok
}

func (kv *RamKv) Del(key string) {
	kv.mu.Lock()
	delete(kv.data, key)
	kv.mu.Unlock()
}

func (kv *RamKv) Has(key string) bool {
	kv.mu.RLock()
	_, ok := kv.data[key]
	kv.mu.RUnlock()
	return ok
}
