// Package qai provides the HTTP client for the QAI platform API.
// Request signing is delegated to the signature package; this package is
// the dispatch layer: URL assembly, headers, method handling, and failure
// classification.
package qai

// =============================================================================
// Endpoint Paths
// =============================================================================

const (
	// WorkGroupPath serves account and work group information.
	WorkGroupPath = "/api/workgroup/"

	// ResourceGroupPath lists and manages resource groups.
	ResourceGroupPath = "/api/resource_groups/"

	// ShareResourceGroupPath manages resource group sharing.
	ShareResourceGroupPath = "/api/resource_groups/share/"

	// TrainsPathFormat lists training jobs within a namespace.
	TrainsPathFormat = "/api/ns/%s/trains/"

	// TrainsMetricsPathFormat serves metrics for training jobs within a
	// namespace.
	TrainsMetricsPathFormat = "/api/ns/%s/trains/metrics/"
)

// =============================================================================
// Request Headers
// =============================================================================

const (
	// ChannelHeader identifies the calling channel to the platform.
	ChannelHeader = "Channel"

	// ChannelAPI is the channel value for direct API callers.
	ChannelAPI = "api"

	// RequestIDHeader carries a client-generated id for request tracing.
	RequestIDHeader = "X-Request-Id"
)

// =============================================================================
// Defaults
// =============================================================================

const (
	// DefaultHost is the public QAI endpoint.
	DefaultHost = "ai.coreshub.cn"

	// DefaultPort is the default HTTPS port.
	DefaultPort = 443

	// DefaultProtocol is the default URL scheme.
	DefaultProtocol = "https"

	// NamespaceAll selects every namespace visible to the caller.
	NamespaceAll = "ALL"
)
