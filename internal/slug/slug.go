// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives URL-safe proposal identifiers from human-entered
// client names.
package slug

import (
	"regexp"
	"strings"
)

var (
	// nonAlphanumeric matches anything that isn't a lowercase letter,
	// digit, whitespace, or hyphen. Stripped outright, so accented and
	// non-Latin characters simply disappear.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9\s-]`)
	// whitespaceRun collapses any run of whitespace into one hyphen.
	whitespaceRun = regexp.MustCompile(`\s+`)
	// multipleHyphens collapses consecutive hyphens into one.
	multipleHyphens = regexp.MustCompile(`-{2,}`)
)

// Generate creates a slug from the given name: lowercase, whitespace runs
// become single hyphens, everything outside [a-z0-9-] is stripped.
// Example: "Graduación 2025!!" → "graduacin-2025". An empty result means
// the name cannot identify a proposal; callers must treat it as invalid.
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = nonAlphanumeric.ReplaceAllString(result, "")
	result = whitespaceRun.ReplaceAllString(result, "-")
	result = multipleHyphens.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
