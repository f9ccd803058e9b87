// internal/terrain/script.go
package terrain

import (
	"fmt"
	"log"
	"sync"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"go-hex-defense/pkg/hexmap"
)

// Script is a cost function written in tengo. The script sees the globals
// q and r and assigns the global cost; leaving cost undefined or negative
// makes the cell impassable.
//
//	cost = q == 0 ? 3 : 1
//
// Results are cached per coordinate, so the script must be a pure function
// of q and r.
type Script struct {
	mu       sync.Mutex
	compiled *tengo.Compiled
	cache    map[hexmap.Hex]scriptResult
}

type scriptResult struct {
	cost int
	ok   bool
}

// NewScriptCost compiles src once and returns a reusable cost function.
func NewScriptCost(src string) (*Script, error) {
	script := tengo.NewScript([]byte(src))
	_ = script.Add("q", 0)
	_ = script.Add("r", 0)
	_ = script.Add("cost", nil)
	script.SetImports(stdlib.GetModuleMap("math"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("compile cost script: %w", err)
	}
	return &Script{
		compiled: compiled,
		cache:    make(map[hexmap.Hex]scriptResult),
	}, nil
}

// Cost evaluates the script for h. It satisfies hexmap.CostFunc.
func (s *Script) Cost(h hexmap.Hex) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if res, ok := s.cache[h]; ok {
		return res.cost, res.ok
	}
	res, err := s.eval(h)
	if err != nil {
		log.Printf("Terrain: cost script failed at %v: %v", h, err)
		res = scriptResult{}
	}
	s.cache[h] = res
	return res.cost, res.ok
}

func (s *Script) eval(h hexmap.Hex) (scriptResult, error) {
	if err := s.compiled.Set("q", h.Q); err != nil {
		return scriptResult{}, err
	}
	if err := s.compiled.Set("r", h.R); err != nil {
		return scriptResult{}, err
	}
	// cost сбрасывается, чтобы значение прошлого гекса не протекло.
	if err := s.compiled.Set("cost", nil); err != nil {
		return scriptResult{}, err
	}
	if err := s.compiled.Run(); err != nil {
		return scriptResult{}, err
	}
	v := s.compiled.Get("cost")
	if v.IsUndefined() {
		return scriptResult{}, nil
	}
	c := v.Int()
	if c < 0 {
		return scriptResult{}, nil
	}
	return scriptResult{cost: c, ok: true}, nil
}
