package bundle

import (
	"carebridge-service/internal/pkg/constvars"
	"carebridge-service/internal/pkg/exceptions"
	"carebridge-service/internal/pkg/fhir_dto"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"go.uber.org/zap"
)

var (
	searchClientInstance *SearchClient
	onceSearchClient     sync.Once
)

// SearchClient pages through searchset bundles on the external FHIR source.
// Every per-resource client delegates the HTTP and paging mechanics here and
// only decodes the raw entries into its own DTO.
type SearchClient struct {
	BaseUrl    string
	HttpClient *http.Client
	Log        *zap.Logger
}

func NewSearchClient(baseUrl string, logger *zap.Logger) *SearchClient {
	onceSearchClient.Do(func() {
		searchClientInstance = &SearchClient{
			BaseUrl:    baseUrl,
			HttpClient: &http.Client{},
			Log:        logger,
		}
	})
	return searchClientInstance
}

// SearchByPatient fetches every entry of `{base}/{resourceType}?patient={id}`
// following the bundle's next links until the result set is exhausted. An
// empty result set is an empty slice with a nil error.
func (c *SearchClient) SearchByPatient(ctx context.Context, resourceType constvars.ResourceType, patientID, accessToken string) ([]json.RawMessage, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestID).(string)
	c.Log.Info("bundleSearchClient.SearchByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, string(resourceType)),
	)

	nextURL := fmt.Sprintf("%s/%s?patient=%s", c.BaseUrl, resourceType, url.QueryEscape(patientID))
	resources := make([]json.RawMessage, 0)

	for nextURL != "" {
		page, err := c.fetchBundle(ctx, requestID, resourceType, nextURL, accessToken)
		if err != nil {
			return nil, err
		}
		for _, entry := range page.Entry {
			if len(entry.Resource) == 0 {
				continue
			}
			resources = append(resources, entry.Resource)
		}
		nextURL = page.NextLink()
	}

	c.Log.Info("bundleSearchClient.SearchByPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, string(resourceType)),
		zap.Int(constvars.LoggingCountKey, len(resources)),
	)
	return resources, nil
}

// Read fetches a single resource by ID, `{base}/{resourceType}/{id}`.
func (c *SearchClient) Read(ctx context.Context, resourceType constvars.ResourceType, resourceID, accessToken string) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestID).(string)
	c.Log.Info("bundleSearchClient.Read called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, string(resourceType)),
	)

	endpoint := fmt.Sprintf("%s/%s/%s", c.BaseUrl, resourceType, url.PathEscape(resourceID))
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("bundleSearchClient.Read error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req, accessToken)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		c.Log.Error("bundleSearchClient.Read error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.buildSourceError(requestID, resourceType, resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("bundleSearchClient.Read error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, resourceType)
	}
	return body, nil
}

func (c *SearchClient) fetchBundle(ctx context.Context, requestID string, resourceType constvars.ResourceType, endpoint, accessToken string) (*fhir_dto.Bundle, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		c.Log.Error("bundleSearchClient.fetchBundle error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req, accessToken)

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		c.Log.Error("bundleSearchClient.fetchBundle error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.buildSourceError(requestID, resourceType, resp)
	}

	page := new(fhir_dto.Bundle)
	if err := json.NewDecoder(resp.Body).Decode(page); err != nil {
		c.Log.Error("bundleSearchClient.fetchBundle error decoding bundle",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeResponse(err, resourceType)
	}
	return page, nil
}

func (c *SearchClient) setHeaders(req *http.Request, accessToken string) {
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationFHIRJSON)
	if accessToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+accessToken)
	}
}

func (c *SearchClient) buildSourceError(requestID string, resourceType constvars.ResourceType, resp *http.Response) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error("bundleSearchClient error reading error body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrGetFHIRResource(err, resourceType)
	}

	var outcome fhir_dto.OperationOutcome
	if err := json.Unmarshal(bodyBytes, &outcome); err == nil && len(outcome.Issue) > 0 {
		fhirErrorIssue := fmt.Errorf("%s", outcome.Issue[0].Diagnostics)
		c.Log.Error("bundleSearchClient FHIR source error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceTypeKey, string(resourceType)),
			zap.Error(fhirErrorIssue),
		)
		return exceptions.ErrGetFHIRResource(fhirErrorIssue, resourceType)
	}

	statusErr := fmt.Errorf("unexpected status %d from the external source", resp.StatusCode)
	c.Log.Error("bundleSearchClient FHIR source error",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, string(resourceType)),
		zap.Error(statusErr),
	)
	return exceptions.ErrGetFHIRResource(statusErr, resourceType)
}
