// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package web holds the request-level contract shared by every stage of the
// scaffold's pipeline.
//
// Handlers return errors instead of writing failure responses themselves:
// a [HandlerFunc] that returns a non-nil error forwards it to the
// [ErrorChain] installed in the request context, and middleware does the
// same through [Fail]. The chain runs [ErrorHook] values in order until one
// of them reports the response as produced.
//
// The package also exposes the values attached to a request by the
// pipeline: the configuration ([Config]), merged query and body parameters
// ([Params], [Param]), the parsed body ([BodyOf], [DecodeBody]), the view
// engine ([Render]) and flash messages ([AddFlash], [Flashes]).
package web
