/*
Package req provides ergonomics for handling an HTTP request.

A Parser decodes a request's payload into a pointer to a struct.
It supports JSON-encoded bodies, URL-encoded form bodies and query parameters.
The struct's tags do two jobs:
matching keys in the payload to fields ("json" or "schema")
and validating the data meets requirements ("validate").

Errors from either job are translated into rango sentinel errors.
A payload failing validation yields ValidationErrors, which unwraps to rango.ErrNotValid,
so handlers can re-render a form with its problems listed.
*/
package req
