// Package plugin is the optional extension point for property names
// unrecognized by both the view layer and task.Task.Get : a WASM module, hosted by wazero, exporting a
// get_property(task_json_ptr, task_json_len, name_ptr, name_len) ->
// packed (ptr, len) function that returns either a property value or an
// empty string to mean "not recognized."
package plugin

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/xeruf/mostr-go/internal/debug"
	"github.com/xeruf/mostr-go/internal/task"
)

// Resolver hosts a single compiled WASM module and satisfies
// view.PropertyResolver.
type Resolver struct {
	ctx context.Context
	runtime wazero.Runtime
	module api.Module
	getProp api.Function
	allocate api.Function
}

type taskPayload struct {
	ID string `json:"id"`
	Name string `json:"name,omitempty"`
	State string `json:"state"`
	Hashtags []string `json:"hashtags,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
}

// Load compiles and instantiates the WASM module at path. The module
// must export "get_property" and "allocate" (takes a byte length and
// returns a pointer into linear memory, where the request bytes are then
// written as-is).
func Load(ctx context.Context, wasmPath string, wasmBytes []byte) (*Resolver, error) {
	runtime := wazero.NewRuntime(ctx)
	module, err := runtime.Instantiate(ctx, wasmBytes)
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, fmt.Errorf("plugin: instantiating %s: %w", wasmPath, err)
	}
	getProp := module.ExportedFunction("get_property")
	allocate := module.ExportedFunction("allocate")
	if getProp == nil || allocate == nil {
		_ = runtime.Close(ctx)
		return nil, fmt.Errorf("plugin: %s does not export get_property/allocate", wasmPath)
	}
	return &Resolver{ctx: ctx, runtime: runtime, module: module, getProp: getProp, allocate: allocate}, nil
}

// Close releases the WASM runtime.
func (r *Resolver) Close() error {
	return r.runtime.Close(r.ctx)
}

// Get asks the module to resolve name for t. Any failure (allocation,
// call, or malformed result) is logged and reported as unresolved —
// a plugin failure never aborts rendering.
func (r *Resolver) Get(t *task.Task, name string) (string, bool) {
	payload, err := json.Marshal(toPayload(t))
	if err != nil {
		debug.Logf("plugin: encoding task payload: %v", err)
		return "", false
	}

	taskPtr, err := r.writeString(payload)
	if err != nil {
		debug.Logf("plugin: writing task payload: %v", err)
		return "", false
	}
	namePtr, err := r.writeString([]byte(name))
	if err != nil {
		debug.Logf("plugin: writing property name: %v", err)
		return "", false
	}

	results, err := r.getProp.Call(r.ctx, taskPtr, uint64(len(payload)), namePtr, uint64(len(name)))
	if err != nil || len(results) == 0 {
		debug.Logf("plugin: get_property call failed: %v", err)
		return "", false
	}

	packed := results[0]
	ptr := uint32(packed >> 32)
	length := uint32(packed)
	if length == 0 {
		return "", false
	}
	mem := r.module.Memory()
	buf, ok := mem.Read(ptr, length)
	if !ok {
		debug.Logf("plugin: result pointer out of bounds")
		return "", false
	}
	return string(buf), true
}

func (r *Resolver) writeString(b []byte) (uint64, error) {
	results, err := r.allocate.Call(r.ctx, uint64(len(b)))
	if err != nil || len(results) == 0 {
		return 0, fmt.Errorf("allocate failed: %w", err)
	}
	ptr := uint32(results[0])
	mem := r.module.Memory()
	if !mem.Write(ptr, b) {
		return 0, fmt.Errorf("writing %d bytes at offset %d out of bounds", len(b), ptr)
	}
	return uint64(ptr), nil
}

func toPayload(t *task.Task) taskPayload {
	name, _ := t.Name()
	props := make(map[string]string)
	for _, key := range []string{"desc", "author", "created"} {
		if v, ok := t.Get(key); ok {
			props[key] = v
		}
	}
	return taskPayload{
		ID: t.ID().String(),
		Name: name,
		State: t.CurrentState().Label(),
		Hashtags: t.Hashtags(),
		Properties: props,
	}
}
