package domain_test

import (
	"testing"

	"go.trai.ch/dpms/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("zlib")
	is2 := domain.NewInternedString("zlib")

	if is1.Value() != is2.Value() {
		t.Errorf("Expected handles to be equal for identical strings, got %v and %v", is1.Value(), is2.Value())
	}

	if is1.String() != "zlib" {
		t.Errorf("Expected String() to return %q, got %q", "zlib", is1.String())
	}
}
