package broker

import (
	"encoding/json"
	"errors"
	"fmt"

	market "marketboard/internal/domain/entity/market"

	"github.com/google/uuid"
)

var ErrEmptyMessage = errors.New("batch payload is empty")

// BatchMessage is the JSON body carried by the companies exchange.
type BatchMessage struct {
	Batch *market.Batch `json:"batch"`
}

func encodeBatch(batch *market.Batch) ([]byte, error) {
	if batch == nil {
		return nil, ErrEmptyMessage
	}
	body, err := json.Marshal(BatchMessage{Batch: batch})
	if err != nil {
		return nil, fmt.Errorf("marshal batch: %w", err)
	}
	return body, nil
}

func decodeBatch(body []byte) (*market.Batch, error) {
	var payload BatchMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if payload.Batch == nil || payload.Batch.ID == uuid.Nil {
		return nil, ErrEmptyMessage
	}
	if payload.Batch.Companies == nil {
		payload.Batch.Companies = []market.Company{}
	}
	return payload.Batch, nil
}
