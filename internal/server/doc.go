// Package server assembles the request pipeline of a service and runs its
// HTTP listener.
//
// Every request passes through three infrastructure wrappers (trace id,
// error chain, panic recovery) and then through a fixed sequence of named
// stages:
//
//	init, compress, cors, views, favicon, access-log, static (one per
//	directory), security, flash, body, augment, before, routes, not-found,
//	error-log, after
//
// Stages that depend on an unset path (views, favicon, static) are left out.
// Errors forwarded by any stage or handler reach the error chain: the
// error-log hook first, then the caller's After hooks and finally a
// terminal responder writing {code, msg}.
package server
