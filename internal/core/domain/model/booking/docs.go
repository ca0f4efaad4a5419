// Package booking contains the Booking aggregate: the local record of one shipment
// that the locker network accepted.
//
// A booking is written once, right after a successful create-shipment call, and is
// not changed afterwards. Status updates, if any, come from outside this service.
package booking
