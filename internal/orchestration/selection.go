package orchestration

import "github.com/agbru/kmul/internal/reference"

// GetMultipliersToRun returns the multipliers selected by algo: every
// registered multiplier in name order for "all", otherwise the named one.
// It returns nil when algo is not registered.
func GetMultipliersToRun(algo string, factory reference.Factory) []reference.Multiplier {
	if algo == "all" {
		keys := factory.List() // List() returns sorted keys
		multipliers := make([]reference.Multiplier, 0, len(keys))
		for _, k := range keys {
			if m, err := factory.Get(k); err == nil {
				multipliers = append(multipliers, m)
			}
		}
		return multipliers
	}
	if m, err := factory.Get(algo); err == nil {
		return []reference.Multiplier{m}
	}
	return nil
}
