// Package errs defines the error types the API is allowed to answer with.
//
// Every failure the service can produce is funneled into one of four
// shapes before it reaches a client:
//
//   - bad request (400): the caller sent structurally invalid input
//   - not found (404): the addressed record does not exist
//   - store failure (500): the key-value store rejected or failed an operation
//   - unexpected (500): anything the code did not anticipate
//
// The global error handler in the middleware package is the only place
// that serializes these; handlers and services just return them.
package errs
