// Copyright 2025 Trident Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package uriref is the RDF-facing URI/IRI algebra this module builds on:
// an RFC 3986/3987 reference parser plus the containment, resolution,
// relativization and file-URI operations layered on top of it.
package uriref

import (
	"strings"

	"github.com/jplu/rio/status"
	"golang.org/x/text/unicode/norm"
)

// View is a parsed URI/IRI reference. It may be relative or absolute; use
// IsAbsolute to tell the two apart before calling a method that requires
// one.
//
// A View built by FileURI carries no scanned raw/slices: its double-percent
// escape for a literal "%" (see fileuri.go) is not valid RFC 3986
// percent-encoding, so it cannot round-trip through the strict scanner
// this type otherwise wraps. Such a View stores its components directly
// instead, and valid is left false (matching the zero Views String,
// Resolve and the others already treat as empty).
type View struct {
	valid  bool
	raw    string
	slices uriSlices

	isFile        bool
	fileAuthority string
	filePath      string
}

// Parse parses s into a View without Unicode normalization, preserving the
// exact input bytes.
func Parse(s string) (View, error) {
	slices, err := scan(s, nil, false, &voidSink{})
	if err != nil {
		return View{}, status.Wrap(status.BadUri, "invalid uri reference: "+s, err)
	}
	return View{valid: true, raw: s, slices: slices}, nil
}

// ParseNormalized parses s after normalizing it to Unicode Normalization
// Form C, for callers that need canonical-equivalence comparisons.
func ParseNormalized(s string) (View, error) {
	normalized := norm.NFC.String(s)
	slices, err := scan(normalized, nil, false, &voidSink{})
	if err != nil {
		return View{}, status.Wrap(status.BadUri, "invalid uri reference: "+s, err)
	}
	return View{valid: true, raw: normalized, slices: slices}, nil
}

// String returns the view's underlying string form.
func (v View) String() string {
	switch {
	case v.isFile:
		return "file://" + v.fileAuthority + v.filePath
	case !v.valid:
		return ""
	default:
		return v.raw
	}
}

// IsAbsolute reports whether the view carries a scheme.
func (v View) IsAbsolute() bool {
	return v.isFile || (v.valid && v.slices.schemeEnd != 0)
}

// Scheme returns the scheme component, if present.
func (v View) Scheme() (string, bool) {
	switch {
	case v.isFile:
		return "file", true
	case !v.valid || v.slices.schemeEnd == 0:
		return "", false
	default:
		return v.raw[:v.slices.schemeEnd-1], true
	}
}

// Authority returns the authority component, if present.
func (v View) Authority() (string, bool) {
	switch {
	case v.isFile:
		return v.fileAuthority, v.fileAuthority != ""
	case !v.valid || v.slices.authorityEnd <= v.slices.schemeEnd:
		return "", false
	default:
		return strings.TrimPrefix(v.raw[v.slices.schemeEnd:v.slices.authorityEnd], "//"), true
	}
}

// Path returns the path component (possibly empty).
func (v View) Path() string {
	switch {
	case v.isFile:
		return v.filePath
	case !v.valid:
		return ""
	default:
		return v.raw[v.slices.authorityEnd:v.slices.pathEnd]
	}
}

// Query returns the query component, if present.
func (v View) Query() (string, bool) {
	if !v.valid || v.slices.pathEnd >= v.slices.queryEnd {
		return "", false
	}
	return v.raw[v.slices.pathEnd+1 : v.slices.queryEnd], true
}

// Fragment returns the fragment component, if present.
func (v View) Fragment() (string, bool) {
	if !v.valid || v.slices.queryEnd >= len(v.raw) {
		return "", false
	}
	return v.raw[v.slices.queryEnd+1:], true
}

// Resolve resolves ref against v per RFC 3986 §5.2.2, returning a new
// absolute View. ref is normalized to NFC before resolution, for
// consistency with the rest of this package's normalization behavior.
func (v View) Resolve(ref string) (View, error) {
	if !v.valid {
		return View{}, status.New(status.BadArg, "cannot resolve against an empty or file-uri base")
	}

	normalizedRef := norm.NFC.String(ref)
	var b strings.Builder
	b.Grow(len(v.raw) + len(ref))

	base := &scanBase{raw: v.raw, slices: v.slices}
	slices, err := scan(normalizedRef, base, false, &stringSink{builder: &b})
	if err != nil {
		return View{}, status.Wrap(status.BadUri, "failed to resolve "+ref, err)
	}
	return View{valid: true, raw: b.String(), slices: slices}, nil
}

// Relativize computes a relative reference that, resolved against v,
// yields target. Both v and target must be absolute. If they do not share
// a scheme and authority, or target's path carries dot-segments, the
// result is target unchanged (spec's "cannot be relativized" case).
func (v View) Relativize(target View) (View, error) {
	if !v.IsAbsolute() {
		return View{}, status.New(status.BadArg, "relativize base must be absolute")
	}
	if !target.IsAbsolute() {
		return View{}, status.New(status.BadArg, "relativize target must be absolute")
	}
	rel, err := relativize(v, target)
	if err != nil {
		return target, nil //nolint:nilerr // un-relativizable targets pass through unchanged, per spec
	}
	return rel, nil
}

// IsWithin reports whether v and base share a scheme and authority, and
// v's path extends strictly below base's path (i.e. below base's last
// "/").
func IsWithin(v, base View) bool {
	if !v.valid || !base.valid {
		return false
	}
	vScheme, vOK := v.Scheme()
	bScheme, bOK := base.Scheme()
	if !vOK || !bOK || vScheme != bScheme {
		return false
	}
	vAuth, _ := v.Authority()
	bAuth, _ := base.Authority()
	if vAuth != bAuth {
		return false
	}
	basePath := base.Path()
	slash := strings.LastIndexByte(basePath, '/')
	if slash < 0 {
		return false
	}
	prefix := basePath[:slash+1]
	vPath := v.Path()
	return len(vPath) > len(prefix) && strings.HasPrefix(vPath, prefix)
}
