package httpx

import (
	"fmt"
	"net/http"
)

// UserAgentRoundTripper подставляет User-Agent во все исходящие запросы.
// Shopify-витрины отдают заглушку вместо JSON, если UA похож на бота.
type UserAgentRoundTripper struct {
	next      http.RoundTripper
	userAgent string
}

func NewUserAgentRoundTripper(next http.RoundTripper, userAgent string) UserAgentRoundTripper {
	return UserAgentRoundTripper{
		next:      next,
		userAgent: userAgent,
	}
}

// RoundTrip implements http.RoundTripper interface.
func (rt UserAgentRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", rt.userAgent)

	resp, err := rt.next.RoundTrip(clone)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip %w", err)
	}

	return resp, nil
}
