/*
The resp package provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

resp provides three main ways of responding to an HTTP request:
- rendering HTML templates
- rendering JSON data
- redirecting

Every rango page is rendered inside one of two layouts.
Layout picks the authenticated layout when the request carries a user
and the unauthenticated one otherwise.
*/
package resp
