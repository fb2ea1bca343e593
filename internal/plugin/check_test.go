package plugin

import (
	"strings"
	"testing"
)

func validManifest() *Manifest {
	return &Manifest{
		Id:             "HeightMap",
		Name:           "Height Map",
		Author:         "Duet3D Ltd",
		Version:        "3.6.0",
		DwcVersion:     "3.6.0",
		SbcPermissions: []string{"objectModelRead", "readSystem"},
	}
}

func TestCheckManifestValid(t *testing.T) {
	if !CheckManifest(validManifest()) {
		t.Fatal("expected valid manifest to pass")
	}
}

func TestCheckManifestId(t *testing.T) {
	cases := map[string]string{
		"empty":      "",
		"whitespace": "   ",
		"too long":   strings.Repeat("x", 33),
		"slash":      "bad/id",
		"colon":      "bad:id",
	}
	for name, id := range cases {
		t.Run(name, func(t *testing.T) {
			m := validManifest()
			m.Id = id
			if CheckManifest(m) {
				t.Fatalf("expected id %q to be rejected", id)
			}
		})
	}

	m := validManifest()
	m.Id = "My.Plugin-2_beta 1"
	if !CheckManifest(m) {
		t.Fatal("expected dots, dashes, underscores and spaces to be allowed")
	}
}

func TestCheckManifestName(t *testing.T) {
	for _, name := range []string{"", "  ", strings.Repeat("x", 65), "bad/name"} {
		m := validManifest()
		m.Name = name
		if CheckManifest(m) {
			t.Fatalf("expected name %q to be rejected", name)
		}
	}
}

func TestCheckManifestAuthorAndVersion(t *testing.T) {
	m := validManifest()
	m.Author = " "
	if CheckManifest(m) {
		t.Fatal("expected missing author to be rejected")
	}

	m = validManifest()
	m.Version = ""
	if CheckManifest(m) {
		t.Fatal("expected missing version to be rejected")
	}
}

func TestCheckManifestPermissions(t *testing.T) {
	m := validManifest()
	m.SbcPermissions = append(m.SbcPermissions, "formatHardDrive")
	if CheckManifest(m) {
		t.Fatal("expected unknown permission to be rejected")
	}

	m = validManifest()
	m.SbcPermissions = nil
	if !CheckManifest(m) {
		t.Fatal("expected manifest without permissions to pass")
	}
}

func TestCheckVersion(t *testing.T) {
	cases := []struct {
		actual, required string
		want             bool
	}{
		{"3.5.0", "", true},
		{"3.5.0", "3.5.0", true},
		{"3.5.0", "3.5", true},
		{"3.5", "3.5.0", true},
		{"3.5.0", "3.5.1", false},
		{"3.5.0", "4.0.0", false},
		{"3.5.0", "3.5.0-rc1", true},
		// pre-release markers vanish into the delimiter set
		{"3.5.0-beta1", "3.5.0", true},
		{"3.4-b1", "3.4-a1", true},
	}
	for _, tc := range cases {
		if got := CheckVersion(tc.actual, tc.required); got != tc.want {
			t.Errorf("CheckVersion(%q, %q) = %v, want %v", tc.actual, tc.required, got, tc.want)
		}
	}
}
