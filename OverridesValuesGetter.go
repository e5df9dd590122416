package main

import "miniSheet/contracts"

// NewOverridesValuesGetter serves values from a plain map, keys are canonical cell ids
func NewOverridesValuesGetter(overrides map[string]contracts.Value) contracts.CellValuesGetter {
	if len(overrides) == 0 {
		return nil
	}

	return func(cellId string) (contracts.Value, bool) {
		value, ok := overrides[cellId]
		return value, ok
	}
}
