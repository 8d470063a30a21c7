package outbox

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEnsureSchemaReturnsExistingID(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.Method+" "+r.URL.EscapedPath())
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body["schemaType"] != "JSON" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		_, _ = w.Write([]byte(`{"subject":"roster_events-signed_up-value","id":11,"version":1}`))
	}))
	defer srv.Close()

	client := NewSchemaRegistryClient(srv.URL + "/")
	id, err := client.EnsureSchema(context.Background(), "roster_events-signed_up-value", participantSignedUpSchema)

	require.NoError(t, err)
	require.Equal(t, 11, id)
	require.Equal(t, []string{"POST /subjects/roster_events-signed_up-value"}, paths)
}

func TestEnsureSchemaRegistersUnknownSchema(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path == "/subjects/roster_events-removed-value" {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error_code":40403,"message":"Schema not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id":12}`))
	}))
	defer srv.Close()

	client := NewSchemaRegistryClient(srv.URL)
	id, err := client.EnsureSchema(context.Background(), "roster_events-removed-value", participantRemovedSchema)

	require.NoError(t, err)
	require.Equal(t, 12, id)
	require.Equal(t, []string{
		"/subjects/roster_events-removed-value",
		"/subjects/roster_events-removed-value/versions",
	}, paths)
}

func TestEnsureSchemaSurfacesRegistryErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error_code":50001}`))
	}))
	defer srv.Close()

	client := NewSchemaRegistryClient(srv.URL)
	_, err := client.EnsureSchema(context.Background(), "roster_events-removed-value", participantRemovedSchema)

	require.ErrorContains(t, err, "status 500")
}
