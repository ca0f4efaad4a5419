// Package customer contains the Customer aggregate: a booking recipient staged by
// the operator before a batch is submitted.
package customer
