/*
Package logger provides logging functionality to a rango app by defining the required behavior in [Logger]
and providing an implementation of it with [AppLogger].

# Overview

The Logger interface outputs messages at certain levels of importance.
LogLevel is the type to use to represent those levels.
An [AppLogger] is initialized at a certain [LogLevel]
and only emits messages at or above that level of importance.
For example, if initialized with [LogLevelWarn],
only [*AppLogger.Warn], [*AppLogger.Error], and [*AppLogger.Fatal] produce messages.

# AppLogger

Log messages emitted by [AppLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2024/04/28 15:55:21 [DEBUG] handler/index.go:43 'such fun!' log_context: {"user":{"id":1,"email":"rango@example.com"}}

The file and parent directory of where an [AppLogger] method was called comprise the call site.
The log context is a JSON-encoded [LogContext],
which provides a fuller picture of the application state at the time of logging.

# SentryLogger

When a Sentry DSN is available, [NewSentryLogger] wraps an [AppLogger]
and additionally reports errors set on a [LogContext] to Sentry.
*/
package logger
