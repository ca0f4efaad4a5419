// Package shipment holds the vocabulary of a single locker-network booking:
// package sizes and their service-level codes, the resolved collection and
// delivery endpoints, the request payload and the network's response.
//
// The JSON shape of Payload is the wire contract of POST /shipments.
package shipment
