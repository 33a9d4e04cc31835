package server

import (
	"net/http"
	"strconv"
)

// ContentTypeHTML is the content type of rendered documents.
const ContentTypeHTML = "text/html; charset=utf-8"

// Response is a rendered page ready to be written to a client.
type Response struct {
	Status      int
	ContentType string
	Body        string
}

// HTML is a muon.Adapter that wraps a rendered document in a 200 response.
func HTML(s string) (Response, error) {
	return Response{
		Status:      http.StatusOK,
		ContentType: ContentTypeHTML,
		Body:        s,
	}, nil
}

// ServeHTTP writes the response. A zero Status means 200.
func (r Response) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	status := r.Status
	if status == 0 {
		status = http.StatusOK
	}
	if r.ContentType != "" {
		w.Header().Set("Content-Type", r.ContentType)
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(r.Body)))
	w.WriteHeader(status)
	_, _ = w.Write([]byte(r.Body))
}
