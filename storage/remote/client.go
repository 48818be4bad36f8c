// Package remote implements the record protocol over HTTP.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/trezcool/shule/core"
	"github.com/trezcool/shule/core/record"
)

// Headers
const (
	HeaderProjectID = "X-Project-Id"
	HeaderRequestID = "X-Request-Id"
)

var apiPrefix = "/v1/tables/"

type Client struct {
	baseURL   string
	projectID string
	publicKey string
	rest      *rest.Client
}

var _ record.Client = (*Client)(nil) // interface compliance check

func NewClient(conf *core.Config) *Client {
	return &Client{
		baseURL:   conf.Remote.BaseURL,
		projectID: conf.Remote.ProjectID,
		publicKey: conf.Remote.PublicKey,
		rest:      &rest.Client{HTTPClient: &http.Client{Timeout: conf.Remote.Timeout}},
	}
}

// SetPublicKey sets the key sent as bearer token.
func (c *Client) SetPublicKey(key string) {
	c.publicKey = key
}

func (c *Client) FetchRecords(ctx context.Context, table string, params record.FetchParams) (record.FetchResponse, error) {
	var resp record.FetchResponse
	err := c.send(ctx, http.MethodPost, table, "/fetch", params, &resp)
	return resp, err
}

func (c *Client) GetRecordByID(ctx context.Context, table string, id int, params record.FetchParams) (record.GetResponse, error) {
	var resp record.GetResponse
	err := c.send(ctx, http.MethodPost, table, "/records/"+strconv.Itoa(id), params, &resp)
	return resp, err
}

func (c *Client) CreateRecords(ctx context.Context, table string, params record.BatchParams) (record.BatchResponse, error) {
	var resp record.BatchResponse
	err := c.send(ctx, http.MethodPost, table, "/records", params, &resp)
	return resp, err
}

func (c *Client) UpdateRecords(ctx context.Context, table string, params record.BatchParams) (record.BatchResponse, error) {
	var resp record.BatchResponse
	err := c.send(ctx, http.MethodPut, table, "/records", params, &resp)
	return resp, err
}

func (c *Client) DeleteRecords(ctx context.Context, table string, params record.DeleteParams) (record.BatchResponse, error) {
	var resp record.BatchResponse
	err := c.send(ctx, http.MethodDelete, table, "/records", params, &resp)
	return resp, err
}

// send posts body as JSON and decodes the envelope into out.
// Error statuses are only transport errors when their body is not an envelope.
func (c *Client) send(ctx context.Context, method, table, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "encoding request")
	}

	req := rest.Request{
		Method:  rest.Method(method),
		BaseURL: c.baseURL + apiPrefix + table + path,
		Headers: map[string]string{
			"Content-Type":  "application/json",
			"Accept":        "application/json",
			"Authorization": "Bearer " + c.publicKey,
			HeaderProjectID: c.projectID,
			HeaderRequestID: uuid.New().String(),
		},
		Body: payload,
	}
	res, err := c.rest.SendWithContext(ctx, req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, req.BaseURL)
	}

	decodeErr := json.Unmarshal([]byte(res.Body), out)
	if res.StatusCode >= http.StatusBadRequest {
		if decodeErr == nil && isEnvelope(res.Body) {
			return nil
		}
		return fmt.Errorf("status %d: %s", res.StatusCode, res.Body)
	}
	if decodeErr != nil {
		return errors.Wrap(decodeErr, "decoding response")
	}
	return nil
}

// isEnvelope reports whether body is a JSON object carrying the success flag.
func isEnvelope(body string) bool {
	var probe struct {
		Success *bool `json:"success"`
	}
	return json.Unmarshal([]byte(body), &probe) == nil && probe.Success != nil
}
