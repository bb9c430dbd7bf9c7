// Package api exposes the serde and pagination packages over HTTP. It is thin
// routing-and-validation glue: request fields are validated, the core packages
// do the work, and their errors are translated into JSON error responses
// (400 for encode/decode/validation errors, 500 for anything unexpected).
//
// Endpoints:
//
//	POST /api/json/serialize    serialize a JSON value with the configured serializer
//	POST /api/json/deserialize  parse a JSON string into its plain value
//	POST /api/json/validate     check whether a string is valid JSON
//	GET|POST /api/json/list     paginated listing (demo list on GET, posted items on POST)
//	POST /api/dict/to_dict      recursive plain-structure conversion
//	GET /health                 health check
//	GET /metrics                Prometheus metrics
package api
