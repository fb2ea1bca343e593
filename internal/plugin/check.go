package plugin

import (
	"log/slog"
	"regexp"
	"strings"
)

// CheckManifest checks if the given manifest is valid. Validation is
// advisory: the result is a plain boolean and violations are only reported to
// the log, one distinct message per category.
func CheckManifest(manifest *Manifest) bool {
	if strings.TrimSpace(manifest.Id) == "" || len(manifest.Id) > 32 {
		slog.Warn("Invalid plugin identifier", slog.String("id", manifest.Id))
		return false
	}
	for _, r := range manifest.Id {
		if !isAllowedManifestChar(r) {
			slog.Warn("Illegal characters in plugin identifier", slog.String("id", manifest.Id))
			return false
		}
	}

	if strings.TrimSpace(manifest.Name) == "" || len(manifest.Name) > 64 {
		slog.Warn("Invalid plugin name", slog.String("id", manifest.Id), slog.String("name", manifest.Name))
		return false
	}
	for _, r := range manifest.Name {
		if !isAllowedManifestChar(r) {
			slog.Warn("Illegal characters in plugin name", slog.String("id", manifest.Id), slog.String("name", manifest.Name))
			return false
		}
	}

	if strings.TrimSpace(manifest.Author) == "" {
		slog.Warn("Missing plugin author", slog.String("id", manifest.Id))
		return false
	}
	if strings.TrimSpace(manifest.Version) == "" {
		slog.Warn("Missing plugin version", slog.String("id", manifest.Id))
		return false
	}

	for _, perm := range manifest.SbcPermissions {
		if !IsSbcPermission(perm) {
			slog.Warn("Unsupported SBC permission", slog.String("id", manifest.Id), slog.String("permission", perm))
			return false
		}
	}

	return true
}

func isAllowedManifestChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
		r == ' ' || r == '.' || r == '-' || r == '_'
}

// Delimiters between version segments. The letters are meant to isolate
// alpha/beta pre-release markers but split on ANY 'a' or 'b' character; kept
// as-is for compatibility with the manifests already in the wild.
var versionDelimiters = regexp.MustCompile(`[+.\-ab]`)

// CheckVersion checks whether the actual version fulfils the required one.
// An empty requirement is always compatible. Segments are compared pairwise
// up to the shorter sequence; extra trailing segments on either side are
// ignored.
func CheckVersion(actual, required string) bool {
	if required == "" {
		return true
	}

	actualItems := versionDelimiters.Split(actual, -1)
	requiredItems := versionDelimiters.Split(required, -1)
	for i := 0; i < len(actualItems) && i < len(requiredItems); i++ {
		if actualItems[i] != requiredItems[i] {
			return false
		}
	}
	return true
}
