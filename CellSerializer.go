package main

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var SerializerError = errors.New("invalid serialized data")

const cellRecordVersion = byte(1)

// CellBinarySerializer encodes a journaled cell as
// version byte | uvarint(len(cellId)) | cellId | raw
type CellBinarySerializer struct {
}

func NewCellBinarySerializer() *CellBinarySerializer {
	return &CellBinarySerializer{}
}

func (s *CellBinarySerializer) Marshal(cellId string, raw string) []byte {
	serializedData := make([]byte, 0, 1+binary.MaxVarintLen16+len(cellId)+len(raw))

	serializedData = append(serializedData, cellRecordVersion)
	serializedData = binary.AppendUvarint(serializedData, uint64(len(cellId)))
	serializedData = append(serializedData, cellId...)
	serializedData = append(serializedData, raw...)
	return serializedData
}

func (s *CellBinarySerializer) Unmarshal(data []byte) (cellId string, raw string, err error) {
	if len(data) < 2 {
		return "", "", fmt.Errorf("%w: should be at least 2 bytes (data: %v)", SerializerError, string(data))
	}

	if data[0] != cellRecordVersion {
		return "", "", fmt.Errorf("%w: unknown record version %d", SerializerError, data[0])
	}

	cellIdLength, n := binary.Uvarint(data[1:])
	if n <= 0 {
		return "", "", fmt.Errorf("%w: broken cell id length", SerializerError)
	}

	offset := 1 + n
	if uint64(len(data)-offset) < cellIdLength {
		return "", "", fmt.Errorf("%w: cell id size is more than bytes amount (size: %d; data: %v)", SerializerError, cellIdLength, string(data))
	}

	cellId = string(data[offset : offset+int(cellIdLength)])
	raw = string(data[offset+int(cellIdLength):])
	return
}
