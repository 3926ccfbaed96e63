/*
Package fetchkit holds the runtime configuration and errors shared by the fetch
capability and its supporting clients.

The fetch package issues requests through the Tarmac host, fetchmock replaces
that capability with a scripted stand-in for tests, and catalog describes the
product-catalog resources the stand-in is usually scripted with. DefaultNamespace
is used when a namespace is not explicitly provided.
*/
package fetchkit
