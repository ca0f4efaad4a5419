package shipment

// Endpoint is where a parcel is collected from or delivered to. It is either a
// TerminalEndpoint or a StructuredEndpoint; no other implementations exist.
type Endpoint interface {
	isEndpoint()
}

// TerminalEndpoint points at a locker by its network code.
type TerminalEndpoint struct {
	Code string `json:"terminal_id"`
}

func (TerminalEndpoint) isEndpoint() {}

// StructuredEndpoint is a street address in the network's field layout.
// Line2 and PostalCode are sent as empty strings when unknown.
type StructuredEndpoint struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postal_code"`
}

func (StructuredEndpoint) isEndpoint() {}
