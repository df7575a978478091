// Package qai provides the HTTP client for the QAI platform API.
package qai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shaoqingyang/qingcloud-sdk-go/signature"
)

// trainTimeFormat is the wire format for training job time filters.
const trainTimeFormat = "2006-01-02 15:04:05"

// GetTrainsInput contains the options for listing training jobs.
// Zero-valued optional fields are omitted from the request entirely, not
// sent as empty values.
type GetTrainsInput struct {
	// Namespace selects the namespace. Defaults to NamespaceAll.
	Namespace string

	// Name filters jobs by name.
	Name string

	// ImageName filters jobs by image name.
	ImageName string

	// Reverse reverses the sort order.
	Reverse bool

	// Offset is the pagination offset.
	Offset int

	// Limit is the page size. Defaults to 100.
	Limit int

	// OrderBy is the sort field. Omitted when empty.
	OrderBy string

	// Status filters by job status. Omitted when nil.
	Status []string

	// Endpoints filters by serving endpoint. Omitted when nil.
	Endpoints []string

	// StartAt filters jobs started at or after this time. Omitted when nil.
	StartAt *time.Time

	// EndAt filters jobs started at or before this time. Omitted when nil.
	EndAt *time.Time

	// Owner filters jobs by owner. Omitted when empty.
	Owner string
}

// GetTrains lists training jobs in a namespace as raw JSON.
func (c *Client) GetTrains(ctx context.Context, input GetTrainsInput) (string, error) {
	if input.Namespace == "" {
		input.Namespace = NamespaceAll
	}
	if input.Limit == 0 {
		input.Limit = 100
	}

	params := c.zoneParams()
	params["namespace"] = signature.String(input.Namespace)
	params["name"] = signature.String(input.Name)
	params["image_name"] = signature.String(input.ImageName)
	params["reverse"] = signature.Bool(input.Reverse)
	params["offset"] = signature.Int(input.Offset)
	params["limit"] = signature.Int(input.Limit)

	if input.OrderBy != "" {
		params["order_by"] = signature.String(input.OrderBy)
	}
	if input.Status != nil {
		params["status"] = signature.Strings(input.Status...)
	}
	if input.Endpoints != nil {
		params["endpoints"] = signature.Strings(input.Endpoints...)
	}
	if input.StartAt != nil {
		params["start_at"] = signature.String(input.StartAt.Format(trainTimeFormat))
	}
	if input.EndAt != nil {
		params["end_at"] = signature.String(input.EndAt.Format(trainTimeFormat))
	}
	if input.Owner != "" {
		params["owner"] = signature.String(input.Owner)
	}

	path := fmt.Sprintf(TrainsPathFormat, input.Namespace)
	return c.SendRequest(ctx, http.MethodGet, path, params, nil, nil)
}

// TrainsMetrics returns metrics for the given training jobs as raw JSON.
// At least one resource id is required.
func (c *Client) TrainsMetrics(ctx context.Context, namespace string, resourceIDs []string) (string, error) {
	if len(resourceIDs) == 0 {
		return "", ErrMissingResourceIDs
	}
	if namespace == "" {
		namespace = NamespaceAll
	}

	params := c.zoneParams()
	params["namespace"] = signature.String(namespace)
	params["resource_ids"] = signature.Strings(resourceIDs...)

	path := fmt.Sprintf(TrainsMetricsPathFormat, namespace)
	return c.SendRequest(ctx, http.MethodGet, path, params, nil, nil)
}
