// Package server exposes the gallery, the render client and the document
// store over HTTP.
//
// # Routes
//
//	GET    /healthz                  liveness probe
//	GET    /version                  build information
//	GET    /examples                 family names
//	GET    /examples/{family}        sample script of a family
//	POST   /render/{format}          render the request body (svg or png)
//	POST   /diagrams?title=T         save the request body as a document
//	GET    /diagrams                 list documents
//	GET    /diagrams/{id}            one document as JSON
//	GET    /diagrams/{id}/{format}   render a saved document
//	DELETE /diagrams/{id}            delete a document
//
// Render routes accept width, height, scale and position query parameters.
// A position other than none wraps the SVG in an HTML div.
//
// Errors are JSON objects {"code": ..., "error": ...} with the HTTP status
// derived from the error code, see [StatusFor].
package server
