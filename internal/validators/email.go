package validators

import (
	"context"
	"net"
	"net/mail"
	"strings"
)

// IsEmailWellFormed aceita apenas o endereço puro, sem nome de exibição.
func IsEmailWellFormed(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email && strings.Contains(email, "@")
}

// Resolver é o subconjunto de *net.Resolver usado na checagem de domínio.
type Resolver interface {
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupIPAddr(ctx context.Context, host string) ([]net.IPAddr, error)
}

type EmailDomainChecker struct {
	resolver Resolver
}

func NewEmailDomainChecker(r Resolver) *EmailDomainChecker {
	if r == nil {
		r = net.DefaultResolver
	}
	return &EmailDomainChecker{resolver: r}
}

// IsEmailDomainValid aceita o domínio que tem registro MX ou, na falta, A/AAAA.
func (c *EmailDomainChecker) IsEmailDomainValid(ctx context.Context, email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := c.resolver.LookupMX(ctx, domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := c.resolver.LookupIPAddr(ctx, domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
