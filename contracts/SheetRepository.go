package contracts

type Grid struct {
	Columns []string `json:"columns"`
	Rows    int      `json:"rows"`
	Cells   []Cell   `json:"cells"`
}

type EvaluateResult struct {
	Value Value  `json:"value"`
	Error string `json:"error,omitempty"`
}

type SheetRepository interface {
	SetCell(cellId string, raw string) (*Cell, error)
	GetCell(cellId string) (*Cell, error)
	GetGrid() *Grid
	Evaluate(formula string, overrides map[string]Value) *EvaluateResult
}
