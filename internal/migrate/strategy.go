package migrate

import (
	"sort"
	"sync"
)

// Strategy is an immutable policy record controlling how aggressively
// the migrator maps content between variants.
type Strategy struct {
	// Name is the identifier authors pick in the UI.
	Name string `json:"name"`

	// Structural allows the documented structural transforms (flat
	// content group into nested group, button pair into button list,
	// grid-item reshaping).
	Structural bool `json:"structural"`

	// Coerce additionally allows best-effort coercions (list to
	// scalar and back, description to subtitle and back).
	Coerce bool `json:"coerce"`

	// Description is a one-line author-facing summary.
	Description string `json:"description"`
}

// The built-in presets.
var (
	Conservative = Strategy{
		Name:        "conservative",
		Description: "Carry over only fields with an exact structural match; default everything else.",
	}
	Balanced = Strategy{
		Name:        "balanced",
		Structural:  true,
		Description: "Carry over matches plus the documented structural transforms.",
	}
	Flexible = Strategy{
		Name:        "flexible",
		Structural:  true,
		Coerce:      true,
		Description: "Attempt best-effort coercions before falling back to defaults.",
	}
)

var (
	strategyMu sync.RWMutex
	strategies = map[string]Strategy{
		Conservative.Name: Conservative,
		Balanced.Name:     Balanced,
		Flexible.Name:     Flexible,
	}
)

// Register adds or replaces a named strategy. Meant for process-start
// extension, mirroring how the registry is frozen after init.
func Register(s Strategy) {
	strategyMu.Lock()
	defer strategyMu.Unlock()

	strategies[s.Name] = s
}

// Lookup returns the strategy with the given name.
func Lookup(name string) (Strategy, bool) {
	strategyMu.RLock()
	defer strategyMu.RUnlock()

	s, ok := strategies[name]

	return s, ok
}

// StrategyNames returns the registered strategy names, sorted.
func StrategyNames() []string {
	strategyMu.RLock()
	defer strategyMu.RUnlock()

	names := make([]string, 0, len(strategies))
	for name := range strategies {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
