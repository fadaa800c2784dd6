package requestcontext

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/nft-snap/pkg/logger"
	"github.com/gaze-network/nft-snap/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/lo"
)

type clientIPKey struct{}

type WithClientIPConfig struct {
	// TrustedProxiesIP lists every CIDR a proxy in front of the server may use.
	// When set, X-Forwarded-For is walked from the right and the first
	// address outside these ranges is the client.
	TrustedProxiesIP []string `mapstructure:"trusted_proxies_ip"`

	// TrustedHeader (e.g. X-Real-IP, CF-Connecting-IP) wins over everything else
	// when it holds a valid address.
	TrustedHeader string `mapstructure:"trusted_proxies_header"`

	// EnableRejectMalformedRequest answers 403 when the request came through
	// proxies but no client address could be trusted.
	EnableRejectMalformedRequest bool `mapstructure:"enable_reject_malformed_request"`
}

// WithClientIP resolves the client address with X-Forwarded-For spoofing protection.
// It panics if a trusted proxy range is not a valid CIDR.
func WithClientIP(config WithClientIPConfig) Option {
	proxies, err := parseCIDRs(config.TrustedProxiesIP)
	if err != nil {
		logger.Panic("Invalid trusted proxies", slogx.Error(err))
	}

	return func(ctx context.Context, c *fiber.Ctx) (context.Context, error) {
		ip, ok := resolveClientIP(c, config.TrustedHeader, proxies)
		if !ok {
			if config.EnableRejectMalformedRequest {
				logger.WarnContext(ctx, "Rejected request with untrusted forwarding chain",
					slog.String("module", "requestcontext"),
					slog.String("remoteIP", c.IP()),
					slog.Any("ips", c.IPs()),
				)
				return nil, &Rejection{Status: http.StatusForbidden, Code: "forbidden", Message: "not allowed to access"}
			}
			ip = c.IPs()[0]
		}
		return context.WithValue(ctx, clientIPKey{}, ip), nil
	}
}

// resolveClientIP reports false when the request was proxied and the
// forwarded chain could not be trusted.
func resolveClientIP(c *fiber.Ctx, trustedHeader string, proxies []*net.IPNet) (string, bool) {
	if trustedHeader != "" {
		if ip := c.Get(trustedHeader); net.ParseIP(ip) != nil {
			return ip, true
		}
	}

	forwarded := c.IPs()
	if len(forwarded) == 0 {
		return c.IP(), true
	}
	if len(proxies) == 0 {
		return "", false
	}

	for i := len(forwarded) - 1; i >= 0; i-- {
		ip := net.ParseIP(forwarded[i])
		if ip != nil && !isTrusted(proxies, ip) {
			return ip.String(), true
		}
	}
	// every hop is a proxy we know
	return forwarded[0], true
}

func isTrusted(proxies []*net.IPNet, ip net.IP) bool {
	return lo.ContainsBy(proxies, func(n *net.IPNet) bool { return n.Contains(ip) })
}

func parseCIDRs(ranges []string) ([]*net.IPNet, error) {
	nets := make([]*net.IPNet, 0, len(ranges))
	for _, r := range ranges {
		_, ipnet, err := net.ParseCIDR(r)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid CIDR %q", r)
		}
		nets = append(nets, ipnet)
	}
	return nets, nil
}

// GetClientIP returns the address stored by WithClientIP, or "".
func GetClientIP(ctx context.Context) string {
	ip, _ := ctx.Value(clientIPKey{}).(string)
	return ip
}
