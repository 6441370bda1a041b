package minio

import "testing"

func TestEndpointURL(t *testing.T) {
	tests := []struct {
		endpoint string
		ssl      bool
		want     string
	}{
		{endpoint: "localhost:9000", want: "http://localhost:9000"},
		{endpoint: "minio.internal:9000", ssl: true, want: "https://minio.internal:9000"},
		{endpoint: "https://s3.example.com/", want: "https://s3.example.com"},
	}
	for _, tt := range tests {
		if got := endpointURL(tt.endpoint, tt.ssl); got != tt.want {
			t.Errorf("endpointURL(%q, %v) = %q, want %q", tt.endpoint, tt.ssl, got, tt.want)
		}
	}
}

func TestObjectURL(t *testing.T) {
	c := &Client{bucketName: "fyyur-images", publicURL: "http://localhost:9000"}
	got := c.ObjectURL("venue/abc.png")
	if got != "http://localhost:9000/fyyur-images/venue/abc.png" {
		t.Errorf("ObjectURL = %q", got)
	}
}
