// Package http implements the REST API under /api/v1/.
//
// Every response, successful or not, is a JSON envelope
//
//	{"status": 400003, "body": {"message": "Security code is not valid."}}
//
// where the first three digits of status equal the HTTP status code. Errors
// returned by the service layer are translated to statuses in one place,
// errors_mapper.go. Request tracing, access logging, panic recovery and
// authentication are handled by middleware before a request reaches a
// handler.
package http
