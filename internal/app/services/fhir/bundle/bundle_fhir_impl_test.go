package bundle

import (
	"carebridge-service/internal/pkg/constvars"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestClient(baseUrl string) *SearchClient {
	return &SearchClient{
		BaseUrl:    baseUrl,
		HttpClient: &http.Client{},
		Log:        zap.NewNop(),
	}
}

func TestSearchByPatient(t *testing.T) {
	t.Run("follows next links across pages", func(t *testing.T) {
		var server *httptest.Server
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer token-1", r.Header.Get(constvars.HeaderAuthorization))
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationFHIRJSON)

			if r.URL.Path == "/Condition" {
				fmt.Fprintf(w, `{
					"resourceType": "Bundle",
					"type": "searchset",
					"link": [{"relation": "next", "url": "%s/page2"}],
					"entry": [
						{"resource": {"resourceType": "Condition", "id": "cond-1"}},
						{"resource": {"resourceType": "Condition", "id": "cond-2"}}
					]
				}`, server.URL)
				return
			}

			fmt.Fprint(w, `{
				"resourceType": "Bundle",
				"type": "searchset",
				"entry": [{"resource": {"resourceType": "Condition", "id": "cond-3"}}]
			}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		resources, err := client.SearchByPatient(context.Background(), constvars.ResourceCondition, "patient-1", "token-1")
		assert.NoError(t, err)
		assert.Len(t, resources, 3)
	})

	t.Run("no data is an empty slice, not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"resourceType": "Bundle", "type": "searchset", "total": 0}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		resources, err := client.SearchByPatient(context.Background(), constvars.ResourceObservation, "patient-1", "token-1")
		assert.NoError(t, err)
		assert.NotNil(t, resources)
		assert.Empty(t, resources)
	})

	t.Run("a non-200 response is a fetch failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			fmt.Fprint(w, `{"resourceType": "OperationOutcome", "issue": [{"severity": "error", "diagnostics": "upstream unavailable"}]}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		resources, err := client.SearchByPatient(context.Background(), constvars.ResourceCondition, "patient-1", "token-1")
		assert.Error(t, err)
		assert.Nil(t, resources)
	})
}

func TestRead(t *testing.T) {
	t.Run("returns the raw resource body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/Patient/patient-1", r.URL.Path)
			fmt.Fprint(w, `{"resourceType": "Patient", "id": "patient-1"}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		body, err := client.Read(context.Background(), constvars.ResourcePatient, "patient-1", "token-1")
		assert.NoError(t, err)
		assert.Contains(t, string(body), `"id": "patient-1"`)
	})

	t.Run("a missing resource is a fetch failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"resourceType": "OperationOutcome", "issue": [{"severity": "error", "diagnostics": "not found"}]}`)
		}))
		defer server.Close()

		client := newTestClient(server.URL)
		body, err := client.Read(context.Background(), constvars.ResourcePatient, "missing", "token-1")
		assert.Error(t, err)
		assert.Nil(t, body)
	})
}
