package middlewares

import (
	"io"
	"net/http"
	"time"

	"nutrisurvey-service/internal/pkg/exceptions"
	"nutrisurvey-service/internal/pkg/utils"
)

// Bridge forwards guarded page requests to the frontend origin. It sits
// behind PageGuard, so everything reaching it has already passed the access
// rules.
func (m *Middlewares) Bridge(target string) http.Handler {
	client := &http.Client{
		Timeout:   15 * time.Second,
		Transport: &http.Transport{MaxIdleConnsPerHost: 100},
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fullURL := target + r.URL.Path
		if r.URL.RawQuery != "" {
			fullURL += "?" + r.URL.RawQuery
		}

		req, err := http.NewRequestWithContext(r.Context(), r.Method, fullURL, r.Body)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrBridgeCreateRequest(err))
			return
		}
		req.Header = r.Header.Clone()

		resp, err := client.Do(req)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrBridgeSendRequest(err))
			return
		}
		defer resp.Body.Close()

		for key, values := range resp.Header {
			for _, value := range values {
				w.Header().Add(key, value)
			}
		}
		w.WriteHeader(resp.StatusCode)
		io.Copy(w, resp.Body)
	})
}
