package main

import "miniSheet/contracts"

// NewCellValuesGetterChain asks first and falls back to second for cells first does not know
func NewCellValuesGetterChain(first contracts.CellValuesGetter, second contracts.CellValuesGetter) contracts.CellValuesGetter {
	if second == nil {
		return first
	}

	if first == nil {
		return second
	}

	return func(cellId string) (contracts.Value, bool) {
		if value, ok := first(cellId); ok {
			return value, true
		}

		return second(cellId)
	}
}
