// Package terminal describes parcel-locker sites as published by the locker network.
//
// Terminals are immutable snapshots: the directory replaces them wholesale on every
// fetch and never edits one in place.
package terminal
