// Package pudo talks to the PUDO locker network.
//
// Client is the live gateway: every call carries the bearer API key and JSON
// headers, is bounded by the http.Client timeout and is never retried. Any
// network error or non-2xx response comes back as a *TransportError, which
// matches errs.ErrTransport.
//
// Sandbox is an offline gateway for local runs. It serves a fixed terminal
// list and invents shipment references of the form MOCK_<unix-nanos>.
package pudo
