// Package kernel provides the shared value objects of the locker booking domain.
//
// The package includes:
//   - UUID: identifier for customers and bookings, wrapping github.com/google/uuid
//   - GeoPoint: validated latitude/longitude pair for locker terminals
//
// Both types are immutable and their zero values fail validation.
package kernel
