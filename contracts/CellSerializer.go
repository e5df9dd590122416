package contracts

type CellSerializer interface {
	Marshal(cellId string, raw string) []byte
	Unmarshal([]byte) (cellId string, raw string, err error)
}
