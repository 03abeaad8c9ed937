/*
Package visit counts how many distinct days a client has visited the site.

The count lives in the client's session under two keys:

  - "visits": the number of days visited; 1 when absent
  - "last_visit": when the current day's visit began, formatted with [Layout]

[Handle] reads both keys, decides with a [Policy] whether a new visit has begun,
and writes both keys back.
A [Counter] binds a clock and a [Policy] together for use by HTTP handlers.

Persisting the session is the caller's responsibility.
Nothing in this package synchronizes access to a [Store];
concurrent requests sharing one session see last-write-wins behavior.
*/
package visit
