package command

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/function"
	"github.com/matteocargnelutti/netlify-functions-session-cookie/pkg/session"
)

const visitsKey = "visits"

type counterBody struct {
	Visits int `json:"visits"`
}

// countVisit increments the visit counter. DELETE resets the session.
func countVisit(ctx context.Context, method string) (counterBody, error) {
	if method == http.MethodDelete {
		return counterBody{}, session.Clear(ctx)
	}

	s, err := session.FromContext(ctx)
	if err != nil {
		return counterBody{}, err
	}
	n, _ := s.GetInt(visitsKey)
	n++
	s.Set(visitsKey, n)
	return counterBody{Visits: n}, nil
}

// counterFunction is the demo function served at /.netlify/functions/counter.
func counterFunction(ctx context.Context, ev *function.Event) (*function.Response, error) {
	body, err := countVisit(ctx, ev.HTTPMethod)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	return &function.Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(data),
	}, nil
}

// counterHandler is the same counter for plain net/http.
func counterHandler(w http.ResponseWriter, r *http.Request) {
	body, err := countVisit(r.Context(), r.Method)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
