package main

import (
	"strings"
)

// Canonicalizer turns user supplied cell ids into the grid form: "  $a$1 " -> "A1"
type Canonicalizer struct {
	replacer *strings.Replacer
}

func NewCanonicalizer() *Canonicalizer {
	// absolute reference markers carry no meaning for a single fixed grid
	return &Canonicalizer{
		replacer: strings.NewReplacer("$", "", " ", "", "\t", ""),
	}
}

func (c *Canonicalizer) Canonicalize(cellId string) string {
	return strings.ToUpper(c.replacer.Replace(cellId))
}
