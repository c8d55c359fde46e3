package invest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Holding represents a single position: a quantity of a ticker valued at a
// unit price, grouped under an asset class.
//
// The ID is opaque, assigned at creation and stable across edits.
type Holding struct {
	ID       string  `json:"id"`
	Ticker   string  `json:"ticker" validate:"required,max=20,ticker"`
	Class    string  `json:"class" validate:"required"`
	Quantity float64 `json:"quantity" validate:"gt=0,lte=1000000"`
	Price    float64 `json:"price" validate:"gt=0,lte=1000000"`
}

// Value returns the holding value (quantity × price), see ValueOf.
func (h Holding) Value() float64 { return ValueOf(h.Quantity, h.Price) }

// UnmarshalJSON decodes a holding leniently: numbers may be strings, a numeric
// id is accepted, and fields of the wrong kind decode to their zero value.
func (h *Holding) UnmarshalJSON(data []byte) error {
	if d := bytes.TrimSpace(data); len(d) == 0 || d[0] != '{' {
		return fmt.Errorf("holding is not an object: %s", d)
	}
	var raw struct {
		ID       any    `json:"id"`
		Ticker   any    `json:"ticker"`
		Class    any    `json:"class"`
		Quantity Number `json:"quantity"`
		Price    Number `json:"price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("invalid holding: %w", err)
	}
	*h = Holding{
		ID:       stringOf(raw.ID),
		Ticker:   stringOf(raw.Ticker),
		Class:    stringOf(raw.Class),
		Quantity: float64(raw.Quantity),
		Price:    float64(raw.Price),
	}
	return nil
}

// stringOf returns strings as is, formats numbers, and returns "" for anything else.
func stringOf(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return ""
}

// Portfolio is a collection of holdings, unique by ID. Order is irrelevant to
// every calculation.
type Portfolio []Holding

// UnmarshalJSON decodes an array of holdings. Elements that are not objects
// are dropped, they could not have contributed any value anyway.
func (p *Portfolio) UnmarshalJSON(data []byte) error {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return fmt.Errorf("portfolio is not an array: %w", err)
	}
	res := make(Portfolio, 0, len(elems))
	for _, e := range elems {
		var h Holding
		if err := json.Unmarshal(e, &h); err != nil {
			continue
		}
		res = append(res, h)
	}
	*p = res
	return nil
}

// Find returns the index of the holding with the given id, or -1.
func (p Portfolio) Find(id string) int {
	for i, h := range p {
		if h.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns a copy of p that can be modified without affecting p.
func (p Portfolio) Clone() Portfolio {
	res := make(Portfolio, len(p))
	copy(res, p)
	return res
}
