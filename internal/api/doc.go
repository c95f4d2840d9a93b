// Package api serves the object-playground HTTP API.
//
// # Endpoints
//
//   - POST /v1/graph: run the pipeline on the model document in the request
//     body and respond with the graph JSON document
//   - POST /v1/inspect: describe a single node (the walk root, or a named
//     definition via ?node=NAME) without building the full graph
//   - GET /healthz: liveness probe with version info
//
// Model documents are passed in the request body; ?format=toml|yaml|json
// names their format (default json) and ?root=NAME overrides the walk root.
// /v1/graph additionally honors ?max_depth= and ?max_nodes=.
//
// # Errors
//
// Failures respond with a JSON payload carrying the machine-readable error
// code and a user-facing message:
//
//	{"error": {"code": "INVALID_MODEL", "message": "..."}}
//
// Codes map onto HTTP statuses: input problems are 400, unsupported formats
// 415, model problems 422, missing nodes 404, everything else 500.
//
// # Usage
//
//	srv := api.New(api.Options{Addr: ":8080", Logger: logger})
//	if err := srv.ListenAndServe(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// ListenAndServe blocks until ctx is cancelled, then drains in-flight
// requests before returning.
package api
