package util

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

// ErrInvalidDomain is returned when a string cannot be read as a domain name.
var ErrInvalidDomain = errors.New("invalid domain name")

var domainPattern = regexp.MustCompile(
	`^[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?\.([a-z]{2,}|xn--[a-z0-9-]{2,}|[a-z]{2,}\.[a-z]{2,})$`,
)

// NormalizeDomain turns user input such as "https://www.Example.com/" into
// "example.com". Internationalized names are converted to their ASCII form.
func NormalizeDomain(raw string) (string, error) {
	d := strings.TrimSpace(raw)
	d = strings.TrimPrefix(d, "http://")
	d = strings.TrimPrefix(d, "https://")
	if i := strings.IndexAny(d, "/?#"); i >= 0 {
		d = d[:i]
	}
	d = strings.ToLower(d)
	d = strings.TrimPrefix(d, "www.")
	d = strings.TrimSuffix(d, ".")

	if d == "" {
		return "", ErrInvalidDomain
	}

	ascii, err := idna.Lookup.ToASCII(d)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDomain, raw, err)
	}

	return ascii, nil
}

// ValidDomain reports whether name is a bare registrable domain
// (label.tld or label.sld.tld), already normalized.
func ValidDomain(name string) bool {
	return domainPattern.MatchString(name)
}

// DomainLabel returns the registrable label of name without its public suffix:
// "example.co.uk" and "blog.example.com" both yield "example".
func DomainLabel(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}

	if etld1, err := publicsuffix.EffectiveTLDPlusOne(name); err == nil {
		name = etld1
	}

	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}
