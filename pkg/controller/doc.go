// Package controller holds the HTTP plumbing shared by the bridge API.
//
//   - WithCORS answers preflights and allows the GET, POST and OPTIONS
//     methods the API exposes.
//   - WithLogger puts a request-scoped logger in the context, reuses or
//     generates the X-Request-Id header and echoes it on the response.
//   - PprofMux serves net/http/pprof below PprofPrefix.
package controller
