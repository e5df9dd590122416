package main

import (
	"fmt"
	"miniSheet/contracts"
	"strconv"
)

// DisplayMode is the state of a cell in the presenting UI
type DisplayMode int

const (
	DisplayModeValue DisplayMode = iota
	DisplayModeHover
	DisplayModeEditing
)

// DisplayValue shows raw while editing, "raw (value)" for a hovered formula, the value otherwise
func DisplayValue(cell contracts.Cell, mode DisplayMode) string {
	switch {
	case mode == DisplayModeEditing:
		return cell.Raw
	case mode == DisplayModeHover && cell.HasFormula():
		return fmt.Sprintf("%s (%s)", cell.Raw, FormatValue(cell.Value))
	}

	return FormatValue(cell.Value)
}

func FormatValue(value contracts.Value) string {
	switch v := value.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	}

	return fmt.Sprint(value)
}
