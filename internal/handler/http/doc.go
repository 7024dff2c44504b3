// Package http implements the product server's REST transport.
//
// Routes:
//
//	GET    /api/version/
//	GET    /api/products
//	POST   /api/products
//	PUT    /api/products/{id}
//	DELETE /api/products/{id}
//
// Every request is traced, logged and may be gzip-compressed before it
// reaches a handler. Handlers decode JSON, call the service layer and map
// service and store errors to status codes.
package http
