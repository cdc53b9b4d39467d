/*
Package ranger initializes and manages a trailhead app with sane defaults.

# Ranger

The main entrypoint to package ranger is the [Ranger] type.
A [Ranger] ought to be constructed with [New], optionally passing [RangerOption]s
to replace any of the default components.

[*Ranger.Guide] begins a trailhead app's web server.
By default, [*Ranger.Guide] listens on [DefaultPort] (:3000),
assuming either a reverse proxy proxies requests
or only a client application makes direct requests to the trailhead web server.

Upon calling [*Ranger.Guide], all routes configured up to that point are now active.
Stop that web server with [*Ranger.Shutdown],
cancel the context.Context passed to [WithContext],
or send a signal [*Ranger.Guide] listens for.

Routes registered on a [*Ranger] have their parameters bound by [middleware.InjectParams];
write their handlers as a [router.ActionFunc] and adapt them with [*Ranger.Action].

# Configuration

A developer configures a trailhead app through environment variables
and by passing options to [New].

Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - BASE_URL: the base URL the application runs on; default: http://localhost:3000
  - CORS_ORIGIN: the origin allowed to make cross-origin requests; default: none
  - ENVIRONMENT: the environment the application is running in; cf. [trailhead.Environment]
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - MAINTENANCE_MODE: whether every request is answered with a 503; default: false
  - MAX_BODY_BYTES: the largest URL-encoded or JSON body read; default: 10 MB
  - PORT: the port the application should listen on; default: :3000
  - RATE_LIMIT: the requests per second a single IP address is allowed; default: 5
  - RATE_LIMIT_BURST: the requests a single IP address can burst up to; default: 20
  - SENTRY_DSN: the DSN errors are reported to; default: none
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - TEMPLATE_DIR: the directory HTML templates are read from; default: the working directory
*/
package ranger
