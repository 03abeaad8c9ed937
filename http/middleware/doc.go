/*
The middleware package defines what a middleware is in rango and the set of middlewares rango serves requests through.

The available middlewares are:
- AuthorizeApplicator
- CORS
- CurrentUser
- ForceHTTPS
- Idempotent
- InjectIPAddress
- InjectSession
- LogRequest
- Metrics
- RateLimit
- ReportPanic
- RequestID
- RequireAuthed
- RequireUnauthed

The router package assembles the default chain; ordering matters, so a hand-built chain looks like:

	adpts := []middleware.Adapter{
		middleware.ForceHTTPS(env),
		middleware.RequestID(),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.Metrics(httpMetrics),
		middleware.InjectSession(sessionStore, log),
		middleware.CurrentUser(responder, users.UserByID),
	}

*/
package middleware
