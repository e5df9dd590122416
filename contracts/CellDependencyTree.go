package contracts

type CellDependencyTree interface {
	// SetDependsOn
	/**
	 * Example, for formula `B1 = A1 + C2`:
	 *    SetDependsOn("B1", []string{"A1", "C2"})
	 * replaces everything B1 depended on before. An empty list removes B1 from the tree.
	 */
	SetDependsOn(dependantCellId string, dependingOnCellIds []string)

	// GetDependants
	/**
	 * Direct dependants only, in grid order.
	 * For `B1 = A1 + C2` and `D4 = B1 * 2`: GetDependants("A1") returns ["B1"].
	 */
	GetDependants(dependingOnCellId string) []string

	// GetAllDependants returns the transitive closure of GetDependants, without cellId itself
	// unless it is part of a cycle.
	GetAllDependants(dependingOnCellId string) []string

	IsCircular(cellId string) bool
}
