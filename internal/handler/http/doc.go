// Package http contains the web layer of the application: a chi router, one
// thin handler per page, and the embedded HTML templates they render.
//
// Handlers translate service-layer sentinel errors into the user-facing page
// messages; they hold no business logic of their own.
package http
