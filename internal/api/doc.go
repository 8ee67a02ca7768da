// Package api handles incoming HTTP requests, routing, request validation,
// and response formatting. Handlers translate service envelopes into HTTP
// responses; they never branch on raw errors, only on envelope kinds.
package api
