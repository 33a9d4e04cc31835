// Package server serves rendered documents over HTTP.
//
// A Server maps URL paths to page functions. Each request builds an element
// tree, renders it through a muon.Engine and writes the result through the
// HTML adapter:
//
//	srv := server.New(server.Config{Engine: engine, Logger: logger})
//	srv.Page("/", func(r *http.Request) markup.Element {
//	    return muon.Document(el.Title("Home"), el.Heading(1, "Hello"))
//	})
//	http.ListenAndServe(":8080", srv.Handler())
//
// Routing and request middleware come from chi. The server also answers
// /healthz and, when a metrics handler is configured, the metrics path.
package server
