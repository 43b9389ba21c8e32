package models

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// OrderList is the canonical sequence of open orders. The backend has
// two response shapes for the open-orders endpoint: a bare JSON array,
// and a {Count, value} wrapper. Both decode into the same slice here,
// at the boundary, so nothing downstream has to care.
type OrderList []Order

type orderListWrapper struct {
	Count int     `json:"Count"`
	Value []Order `json:"value"`
}

func (l *OrderList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*l = nil
		return nil
	}

	if trimmed[0] == '[' {
		var orders []Order
		if err := json.Unmarshal(data, &orders); err != nil {
			return fmt.Errorf("decode order list: %w", err)
		}
		*l = orders
		return nil
	}

	var w orderListWrapper
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decode order list wrapper: %w", err)
	}
	*l = w.Value
	return nil
}

func (l OrderList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]Order(l))
}
