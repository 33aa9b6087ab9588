package report

import (
	"net/http"
	"time"
)

// Kind classifies how a call failed.
type Kind string

const (
	// KindTransport means no HTTP response was received (DNS, TLS, timeout, refused).
	KindTransport Kind = "transport"
	// KindStatus means the server answered with a status outside 200/201/204.
	KindStatus Kind = "status"
	// KindMalformed means the call succeeded structurally but the payload
	// lacked a field the workflow depends on.
	KindMalformed Kind = "malformed"
)

// Well-known classification tags.
const (
	TagConnectivity = "Connectivity Check Error"
	TagIdentity     = "Identity Resolution Error"
	TagProject      = "Project Creation Error"
	TagTeam         = "Team Lookup Error"
	TagPolicy       = "Policy Lookup Error"
	TagInvitation   = "User Invitation Error"
	TagEnvironment  = "Environment Creation Error"
)

// FailureRecord captures the full context of one failed call.
type FailureRecord struct {
	Tag       string    `json:"tag"`
	Kind      Kind      `json:"kind"`
	Timestamp time.Time `json:"timestamp"`

	Method         string      `json:"method"`
	URL            string      `json:"url"`
	RequestHeaders http.Header `json:"requestHeaders,omitempty"`
	RequestBody    string      `json:"requestBody,omitempty"`

	StatusCode      int         `json:"statusCode,omitempty"`
	ResponseHeaders http.Header `json:"responseHeaders,omitempty"`
	ResponseBody    string      `json:"responseBody,omitempty"`

	// Error holds the transport error or the reason a payload was rejected.
	Error string `json:"error,omitempty"`
}

