// Package services provides pure domain services for turning staged parties into
// locker-network shipment requests. Nothing here performs I/O.
//
// The package includes:
//   - EndpointResolver: maps a party to a terminal or a structured street endpoint
//   - ShipmentRequestBuilder: combines sender, customer and package size into a payload
package services
