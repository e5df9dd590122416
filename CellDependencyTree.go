package main

import (
	"sort"
)

// CellDependencyTree is the reverse index of the `deps` relation:
// for every cell it knows which cells reference it. It is updated
// on every deps change instead of scanning the whole grid per lookup.
type CellDependencyTree struct {
	dependingOn map[string][]string
	dependants  map[string]map[string]struct{}
	position    func(cellId string) int
}

func NewCellDependencyTree(position func(cellId string) int) *CellDependencyTree {
	return &CellDependencyTree{
		dependingOn: map[string][]string{},
		dependants:  map[string]map[string]struct{}{},
		position:    position,
	}
}

func (t *CellDependencyTree) SetDependsOn(dependantCellId string, dependingOnCellIds []string) {
	previousDependingListToDelete := map[string]bool{}
	for _, oldDependingOnCellId := range t.dependingOn[dependantCellId] {
		previousDependingListToDelete[oldDependingOnCellId] = true
	}

	for _, dependingOnCellId := range dependingOnCellIds {
		if previousDependingListToDelete[dependingOnCellId] {
			// still referenced, keep the existing edge
			delete(previousDependingListToDelete, dependingOnCellId)
			continue
		}

		if t.dependants[dependingOnCellId] == nil {
			t.dependants[dependingOnCellId] = map[string]struct{}{}
		}
		t.dependants[dependingOnCellId][dependantCellId] = struct{}{}
	}

	for oldDependingOnCellId := range previousDependingListToDelete {
		delete(t.dependants[oldDependingOnCellId], dependantCellId)
		if len(t.dependants[oldDependingOnCellId]) == 0 {
			delete(t.dependants, oldDependingOnCellId)
		}
	}

	if len(dependingOnCellIds) == 0 {
		delete(t.dependingOn, dependantCellId)
		return
	}

	t.dependingOn[dependantCellId] = append([]string{}, dependingOnCellIds...)
}

func (t *CellDependencyTree) GetDependants(dependingOnCellId string) []string {
	dependantSet := t.dependants[dependingOnCellId]
	dependants := make([]string, 0, len(dependantSet))
	for dependantCellId := range dependantSet {
		dependants = append(dependants, dependantCellId)
	}

	sort.Slice(dependants, func(i, j int) bool {
		left, right := t.position(dependants[i]), t.position(dependants[j])
		if left != right {
			return left < right
		}
		return dependants[i] < dependants[j]
	})

	return dependants
}

// GetAllDependants returns transitive dependants in depth-first order, each once.
// cellId itself is included only when it is part of a cycle.
func (t *CellDependencyTree) GetAllDependants(dependingOnCellId string) []string {
	dependants := make([]string, 0)
	t.collectDependants(dependingOnCellId, map[string]bool{}, &dependants)
	return dependants
}

// IsCircular reports whether cellId is reachable from itself through the deps relation
func (t *CellDependencyTree) IsCircular(cellId string) bool {
	for _, dependantCellId := range t.GetAllDependants(cellId) {
		if dependantCellId == cellId {
			return true
		}
	}

	return false
}

func (t *CellDependencyTree) collectDependants(dependingOnCellId string, alreadyCollected map[string]bool, dependants *[]string) {
	for _, dependantCellId := range t.GetDependants(dependingOnCellId) {
		if alreadyCollected[dependantCellId] {
			continue
		}

		alreadyCollected[dependantCellId] = true
		*dependants = append(*dependants, dependantCellId)
		t.collectDependants(dependantCellId, alreadyCollected, dependants)
	}
}
