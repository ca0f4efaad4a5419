// Package queries contains the read side of the application. Handlers read
// straight from the database with SQL, or from the terminal directory, and
// return flat read models for the HTTP layer.
package queries
