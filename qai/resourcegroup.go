// Package qai provides the HTTP client for the QAI platform API.
package qai

import (
	"context"
	"net/http"

	"github.com/shaoqingyang/qingcloud-sdk-go/signature"
)

// GetResourceGroupsInput contains the options for listing resource groups.
type GetResourceGroupsInput struct {
	// Offset is the pagination offset.
	Offset int

	// Limit is the page size. Defaults to 20.
	Limit int

	// Reverse reverses the sort order.
	Reverse bool

	// OrderBy is the sort field. Defaults to "created_at".
	OrderBy string

	// SearchWord filters groups by name.
	SearchWord string
}

// GetResourceGroups lists the caller's resource groups as raw JSON.
func (c *Client) GetResourceGroups(ctx context.Context, input GetResourceGroupsInput) (string, error) {
	if input.Limit == 0 {
		input.Limit = 20
	}
	if input.OrderBy == "" {
		input.OrderBy = "created_at"
	}

	params := c.zoneParams()
	params["offset"] = signature.Int(input.Offset)
	params["limit"] = signature.Int(input.Limit)
	params["reverse"] = signature.Bool(input.Reverse)
	params["order_by"] = signature.String(input.OrderBy)
	params["search_word"] = signature.String(input.SearchWord)

	return c.SendRequest(ctx, http.MethodGet, ResourceGroupPath, params, nil, nil)
}

// GetShareUsers lists the sub accounts a resource group is shared with.
func (c *Client) GetShareUsers(ctx context.Context, rgID string, offset, limit int) (string, error) {
	if limit == 0 {
		limit = 20
	}

	params := c.zoneParams()
	params["rg_id"] = signature.String(rgID)
	params["offset"] = signature.Int(offset)
	params["limit"] = signature.Int(limit)

	return c.SendRequest(ctx, http.MethodGet, ShareResourceGroupPath, params, nil, nil)
}

// ShareResourceGroupInput contains the options for sharing a resource
// group with sub accounts.
type ShareResourceGroupInput struct {
	// RGID is the resource group to share.
	RGID string `json:"rg_id"`

	// IsAll shares with every sub account when 1; with only the accounts
	// listed in ShareUserIDs when 0.
	IsAll int `json:"is_all"`

	// ShareUserIDs is the set of sub accounts to share with.
	ShareUserIDs []string `json:"share_user_ids"`
}

// ShareResourceGroup shares a resource group with sub accounts. The share
// selection travels in the JSON body; only the zone is signed.
func (c *Client) ShareResourceGroup(ctx context.Context, input ShareResourceGroupInput) (string, error) {
	return c.SendRequest(ctx, http.MethodPost, ShareResourceGroupPath, c.zoneParams(), input, nil)
}

// RemoveSharedResourceGroup revokes sharing of a resource group. IsAll 1
// removes every sub account; 0 removes only those in shareUserIDs.
func (c *Client) RemoveSharedResourceGroup(ctx context.Context, rgID string, isAll int, shareUserIDs []string) (string, error) {
	params := c.zoneParams()
	params["rg_id"] = signature.String(rgID)
	params["is_all"] = signature.Int(isAll)
	params["share_user_ids"] = signature.Strings(shareUserIDs...)

	return c.SendRequest(ctx, http.MethodDelete, ShareResourceGroupPath, params, nil, nil)
}
