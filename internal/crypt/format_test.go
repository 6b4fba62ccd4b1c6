package crypt

import (
	"errors"
	"testing"

	pkerrors "pagelock/internal/errors"
)

// TestFrozenFormatTable pins every published parameter set. A failure
// here means an existing version was edited, which silently breaks every
// artifact published under it. Add a new version instead.
func TestFrozenFormatTable(t *testing.T) {
	want := []Format{
		{Version: 1, Iterations: 100000, SaltLen: 16, NonceLen: 12, KeyLen: 32},
		{Version: 2, Iterations: 600000, SaltLen: 16, NonceLen: 12, KeyLen: 32},
	}

	versions := Versions()
	if len(versions) != len(want) {
		t.Fatalf("Expected %d versions, got %v", len(want), versions)
	}

	for i, w := range want {
		got, err := FormatFor(w.Version)
		if err != nil {
			t.Fatalf("FormatFor(%d) failed: %v", w.Version, err)
		}
		if got != w {
			t.Errorf("Version %d: got %+v, want %+v", w.Version, got, w)
		}
		if versions[i] != w.Version {
			t.Errorf("Versions()[%d] = %d, want %d", i, versions[i], w.Version)
		}
	}
}

func TestFormatForUnknownVersion(t *testing.T) {
	for _, v := range []int{0, -1, 3, 99} {
		if _, err := FormatFor(v); !errors.Is(err, pkerrors.ErrUnknownVersion) {
			t.Errorf("FormatFor(%d): expected ErrUnknownVersion, got %v", v, err)
		}
	}
}

func TestDefaultVersionIsPublished(t *testing.T) {
	if _, err := FormatFor(DefaultVersion); err != nil {
		t.Fatalf("Default version %d is not in the format table: %v", DefaultVersion, err)
	}
}

func TestAssociatedDataBindsVersion(t *testing.T) {
	f1, _ := FormatFor(1)
	f2, _ := FormatFor(2)

	if string(f1.aad()) != AADPrefix+"1" {
		t.Errorf("Unexpected v1 associated data: %q", f1.aad())
	}
	if string(f1.aad()) == string(f2.aad()) {
		t.Error("Different versions must bind different associated data")
	}
}
