package metrics

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewOpsServer builds the operational server: liveness and readiness probes
// plus the Prometheus scrape endpoint. It listens apart from the public API
// so probes and scrapes never compete with frontend traffic.
func NewOpsServer(port, apiBase string, m *Metrics, log *zap.SugaredLogger) *http.Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	probe := &http.Client{Timeout: 5 * time.Second}

	r := mux.NewRouter()

	r.HandleFunc("/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("still here"))
	})

	// ready only when Discord itself answers; the relay is useless otherwise
	r.HandleFunc("/ready", func(w http.ResponseWriter, r *http.Request) {
		resp, err := probe.Get(apiBase + "/gateway")
		if err != nil {
			log.Warnf("readiness probe: %v", err)
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(err.Error()))
			return
		}
		resp.Body.Close()
		w.WriteHeader(resp.StatusCode)
		if resp.StatusCode == http.StatusOK {
			w.Write([]byte("ready"))
		} else {
			w.Write([]byte("unready"))
		}
	})

	r.Handle("/metrics", m.Handler())

	return &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}
}
