package rest

import "net/http"

func pingHandler(w http.ResponseWriter, _ *http.Request) {
	writeText(w, "pong")
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	writeText(w, "ok")
}

func writeText(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(body)); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
}
