package domain

import "net/http"

// RelayedResponse is an upstream answer ready to be written back to the
// caller: status and body byte-exact, headers already stripped of hop-by-hop
// and length bookkeeping entries.
type RelayedResponse struct {
	Status int
	Header http.Header
	Body   []byte
}
