package repository

import (
	"encoding/json"
	"fmt"

	"noteboard/internal/model"
)

func encodeBoard(b *model.Board) ([]byte, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("error encoding board json: %w", err)
	}
	return data, nil
}

func decodeBoard(data []byte) (*model.Board, error) {
	var b model.Board
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}
	return &b, nil
}
