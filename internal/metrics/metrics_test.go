package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordHTTPRequest(t *testing.T) {
	tests := []struct {
		name   string
		method string
		route  string
		status string
	}{
		{name: "venue list", method: "GET", route: "/venues", status: "200"},
		{name: "venue create", method: "POST", route: "/venues/create", status: "303"},
		{name: "missing page", method: "GET", route: "unmatched", status: "404"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(tt.method, tt.route, tt.status))
			RecordHTTPRequest(tt.method, tt.route, tt.status, 15*time.Millisecond)
			after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues(tt.method, tt.route, tt.status))
			if after-before != 1 {
				t.Errorf("counter delta = %v, want 1", after-before)
			}
		})
	}
}

func TestRecordListingCreated(t *testing.T) {
	for _, kind := range []string{"venue", "artist", "show"} {
		before := testutil.ToFloat64(ListingsCreated.WithLabelValues(kind))
		RecordListingCreated(kind)
		RecordListingCreated(kind)
		after := testutil.ToFloat64(ListingsCreated.WithLabelValues(kind))
		if after-before != 2 {
			t.Errorf("%s: counter delta = %v, want 2", kind, after-before)
		}
	}
}
