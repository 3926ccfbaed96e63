/*
Package logging offers a client for emitting log entries to the Tarmac host
runtime.

Each level (Info, Warn, Error, Debug, Trace) maps to a function of the host
logging capability. Messages may carry key/value pairs, rendered as key=value
after the message. Host failures are ignored. Nop returns a client that
discards everything, which is what the fetch package uses when no logger is
configured.
*/
package logging
