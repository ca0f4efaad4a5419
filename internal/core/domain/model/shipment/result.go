package shipment

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Result is what the network returned for a created shipment.
//
// Reference is taken from "shipment_id", falling back to "id" when that is
// missing, null, empty, zero or false. Raw keeps the
// response body untouched so it can be stored with the booking.
type Result struct {
	Reference string
	Status    string
	Raw       json.RawMessage
}

// ParseResult decodes a create-shipment response body.
func ParseResult(body []byte) (Result, error) {
	var doc struct {
		ShipmentID any    `json:"shipment_id"`
		ID         any    `json:"id"`
		Status     string `json:"status"`
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return Result{}, fmt.Errorf("decode shipment response: %w", err)
	}

	ref := doc.ShipmentID
	if blank(ref) {
		ref = doc.ID
	}

	res := Result{
		Status: doc.Status,
		Raw:    json.RawMessage(bytes.Clone(body)),
	}
	if !blank(ref) {
		res.Reference = fmt.Sprint(ref)
	}
	return res, nil
}

func blank(v any) bool {
	switch v := v.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case json.Number:
		f, err := v.Float64()
		return err == nil && f == 0
	default:
		return false
	}
}
