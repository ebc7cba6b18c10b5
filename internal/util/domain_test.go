package util

import (
	"errors"
	"testing"
)

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"example.com", "example.com"},
		{"https://www.Example.com/", "example.com"},
		{"http://shop.example.com/path?q=1", "shop.example.com"},
		{"  TechPro.io  ", "techpro.io"},
		{"example.com.", "example.com"},
		{"bücher.de", "xn--bcher-kva.de"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeDomain(tt.in)
			if err != nil {
				t.Fatalf("NormalizeDomain(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("NormalizeDomain(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeDomain_Empty(t *testing.T) {
	for _, in := range []string{"", "   ", "https://", "www."} {
		if _, err := NormalizeDomain(in); !errors.Is(err, ErrInvalidDomain) {
			t.Errorf("NormalizeDomain(%q) error = %v, want ErrInvalidDomain", in, err)
		}
	}
}

func TestValidDomain(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"example.com", true},
		{"my-site.org", true},
		{"example.co.uk", true},
		{"xn--bcher-kva.de", true},
		{"a.io", true},
		{"-bad.com", false},
		{"bad-.com", false},
		{"nodot", false},
		{"example.c", false},
		{"a.b.c.d", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidDomain(tt.name); got != tt.want {
			t.Errorf("ValidDomain(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDomainLabel(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"example.com", "example"},
		{"example.co.uk", "example"},
		{"blog.example.com", "example"},
		{"TechPro.io", "techpro"},
		{"localhost", "localhost"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := DomainLabel(tt.name); got != tt.want {
			t.Errorf("DomainLabel(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestStableSeed(t *testing.T) {
	// Reference value of 64-bit FNV-1a for the empty string.
	if got := StableSeed(""); got != 0xcbf29ce484222325 {
		t.Errorf("StableSeed(\"\") = %#x, want offset basis", got)
	}
	if StableSeed("example.com") != StableSeed("example.com") {
		t.Error("StableSeed is not deterministic")
	}
	if StableSeed("example.com") == StableSeed("example.org") {
		t.Error("distinct inputs should not collide here")
	}
}
