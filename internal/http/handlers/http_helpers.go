package handlers

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
)

// writeJSON takes a response status code and arbitrary data and writes a
// json response to the client.
func writeJSON(w http.ResponseWriter, status int, data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(out); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}
	return nil
}

// fail writes the {ok:false,message} error envelope.
func fail(w http.ResponseWriter, status int, message string) {
	_ = writeJSON(w, status, OKResult{OK: false, Message: message})
}

// clientIP extracts the client address without the port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
