// Package http implements the middleware stages of the scaffold's request
// pipeline.
//
// Every stage is exposed as a method of [Handler] returning a
// [web.Middleware], a [web.HandlerFunc] or a [web.ErrorHook]; the server
// package decides their order. Cross-cutting concerns such as request
// tracing, panic recovery, compression, CORS, security headers, body
// parsing, static files, access and error logging and token extraction all
// live here.
package http
