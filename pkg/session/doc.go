// Package session persists small amounts of per-client state across
// otherwise-stateless HTTP requests, identified by an opaque token exchanged
// via a cookie.
//
// Three pieces make up the package: a mutation-tracking value container
// (Data) that knows whether it needs to be written back, a pluggable
// persistence contract (Store) with a filesystem-backed implementation, and a
// Middleware that wires cookie parsing, store lookup and store write-back
// into the request lifecycle.
//
// # Architecture
//
// A Session is a Data container plus an identifier and a freshly-created
// flag; ShouldSave derives from the two. Stores map identifiers to backing
// records behind a uniform create/read/write/delete contract. The Middleware
// owns the session for the request's duration and persists it at two
// checkpoints: once when response headers are committed (also appending the
// Set-Cookie) and once after the body has been fully produced, so mutations
// made while streaming are captured too.
//
//	┌────────┐  cookie   ┌────────────┐
//	│ Client │ ────────► │ Middleware │
//	└────────┘           └────────────┘
//	                           │ New / Get / Save
//	                           ▼
//	                      ┌────────┐
//	                      │ Store  │ (filesystem, …)
//	                      └────────┘
//
// # Usage
//
//	store, err := session.NewFilesystemStore("/var/lib/myapp/sessions")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sessions := session.NewMiddleware(store)
//
//	mux := http.NewServeMux()
//	mux.Handle("/", sessions.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	    sess := session.MustFromContext(r.Context())
//	    visits, _ := sess.GetInt("visits")
//	    sess.Set("visits", visits+1)
//	    fmt.Fprintf(w, "visit %d", visits+1)
//	})))
//
// The handler reads and mutates session data directly; it never calls save.
// Persistence is the middleware's responsibility.
//
// Applications that want full control can skip the middleware and drive a
// Store by hand: Get on the inbound cookie value, SaveIfModified before the
// response goes out.
//
// # Configuration
//
// Middleware knobs are exposed through Option functions or an env-tagged
// Config struct (see NewFromConfig); the cookie attributes Max-Age, Expires,
// Path, Domain, Secure and HttpOnly are all forwarded verbatim to the cookie
// collaborator.
//
// # Limitations
//
// Deep mutations of values nested inside stored entries are not tracked; set
// the flag by hand with MarkModified. The package does not expire sessions —
// prune stale backing files with an external job. Concurrent requests for
// the same identifier race on save and the last writer wins in full; the
// filesystem store deliberately adds no locking.
package session
