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

package uriref

import "strings"

// resolvedSlices holds a reference's components, fully decomposed, while
// the resolution algorithm (RFC 3986 §5.2) is assembling them.
type resolvedSlices struct {
	Scheme       string
	Authority    string
	Path         string
	Query        string
	Fragment     string
	HasAuthority bool
	HasQuery     bool
	HasFragment  bool
}

func isValidRefScheme(schemePart string) bool {
	if len(schemePart) == 0 || !isASCIILetter(rune(schemePart[0])) {
		return false
	}
	for i := 1; i < len(schemePart); i++ {
		r := rune(schemePart[i])
		if !isASCIILetter(r) && !isASCIIDigit(r) && r != '+' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

func extractRefScheme(ref string) (string, string, bool) {
	i := strings.Index(ref, ":")
	if i < 0 {
		return "", ref, false
	}
	schemePart := ref[:i]
	if !isValidRefScheme(schemePart) {
		return "", ref, false
	}
	return schemePart, ref[i+1:], true
}

// deconstructRef splits a relative-reference string into its parts, ahead
// of running it through resolveComponents.
func deconstructRef(ref string) (scheme, authority, path, query, fragment string, hasAuthority, hasQuery, hasFragment bool) {
	if i := strings.Index(ref, "#"); i != -1 {
		hasFragment = true
		fragment = ref[i+1:]
		ref = ref[:i]
	}
	if i := strings.Index(ref, "?"); i != -1 {
		hasQuery = true
		query = ref[i+1:]
		ref = ref[:i]
	}

	scheme, ref, _ = extractRefScheme(ref)

	if strings.HasPrefix(ref, "//") {
		hasAuthority = true
		ref = ref[2:]
		if endAuth := strings.Index(ref, "/"); endAuth == -1 {
			authority = ref
		} else {
			authority = ref[:endAuth]
			path = ref[endAuth:]
		}
	} else {
		path = ref
	}
	return scheme, authority, path, query, fragment, hasAuthority, hasQuery, hasFragment
}

// resolvePathAndQuery implements the path/query half of RFC 3986 §5.2.2.
func (s *uriScanner) resolvePathAndQuery(
	t *resolvedSlices,
	rPath, rQuery string, rHasQuery bool,
	basePath, baseQuery string, hasBaseQuery, hasBaseAuthority bool,
) {
	if rPath != "" {
		if strings.HasPrefix(rPath, "/") {
			t.Path = removeDotSegments(rPath)
		} else {
			mergePath := basePath
			if mergePath == "" && hasBaseAuthority {
				mergePath = "/"
			}
			t.Path = resolvePath(mergePath, rPath)
		}
		t.Query = rQuery
		t.HasQuery = rHasQuery
		return
	}

	t.Path = basePath
	if rHasQuery {
		t.Query = rQuery
		t.HasQuery = true
	} else {
		t.Query = baseQuery
		t.HasQuery = hasBaseQuery
	}
}

// resolveComponents implements RFC 3986 §5.2's reference-resolution
// algorithm.
func (s *uriScanner) resolveComponents(relativeRef string) *resolvedSlices {
	rScheme, rAuthority, rPath, rQuery, rFragment, rHasAuthority, rHasQuery, rHasFragment := deconstructRef(relativeRef)

	if rScheme != "" {
		return &resolvedSlices{
			Scheme:       rScheme,
			Authority:    rAuthority,
			Path:         removeDotSegments(rPath),
			Query:        rQuery,
			Fragment:     rFragment,
			HasAuthority: rHasAuthority,
			HasQuery:     rHasQuery,
			HasFragment:  rHasFragment,
		}
	}

	baseScheme, baseAuthority, basePath, hasBaseAuthority, baseQuery, hasBaseQuery := s.getBaseComponents()

	t := &resolvedSlices{
		Fragment:    rFragment,
		HasFragment: rHasFragment,
		Scheme:      baseScheme,
	}

	if rHasAuthority {
		t.Authority = rAuthority
		t.HasAuthority = true
		t.Path = removeDotSegments(rPath)
		t.Query = rQuery
		t.HasQuery = rHasQuery
	} else {
		s.resolvePathAndQuery(t, rPath, rQuery, rHasQuery, basePath, baseQuery, hasBaseQuery, hasBaseAuthority)
		t.Authority = baseAuthority
		t.HasAuthority = hasBaseAuthority
	}
	return t
}

func (s *uriScanner) getBaseComponents() (scheme, authority, path string, hasAuthority bool, query string, hasQuery bool) {
	base := s.base

	if base.schemeEnd > 0 {
		scheme = base.raw[:base.schemeEnd-1]
	}
	if base.authorityEnd > base.schemeEnd {
		hasAuthority = true
		start := base.schemeEnd
		if strings.HasPrefix(base.raw[start:], "//") {
			start += 2
		}
		if base.authorityEnd > start {
			authority = base.raw[start:base.authorityEnd]
		}
	}
	path = base.raw[base.authorityEnd:base.pathEnd]
	if base.queryEnd > base.pathEnd {
		query = base.raw[base.pathEnd+1 : base.queryEnd]
		hasQuery = true
	}
	return scheme, authority, path, hasAuthority, query, hasQuery
}

// recomposeIRI writes the resolved components to the scanner's output and
// records their slices.
func (s *uriScanner) recomposeIRI(t *resolvedSlices) {
	if t.Scheme != "" {
		s.output.writeString(t.Scheme)
		s.output.writeRune(':')
	}
	s.slices.schemeEnd = s.output.len()

	if t.HasAuthority {
		s.output.writeString("//")
		s.output.writeString(t.Authority)
	}
	s.slices.authorityEnd = s.output.len()

	s.output.writeString(t.Path)
	s.slices.pathEnd = s.output.len()

	if t.HasQuery {
		s.output.writeRune('?')
		s.output.writeString(t.Query)
	}
	s.slices.queryEnd = s.output.len()

	if t.HasFragment {
		s.output.writeRune('#')
		s.output.writeString(t.Fragment)
	}
}

// parseRelativeNoBase parses a relative reference as a standalone
// relative-path reference, when no base is available to resolve against.
func (s *uriScanner) parseRelativeNoBase() error {
	s.slices.schemeEnd = 0
	s.inputSchemeEnd = 0
	if s.input.startsWith('/') {
		s.input.next()
		s.output.writeRune('/')
		return s.parsePath()
	}
	return s.parsePathNoScheme()
}

// validateRelativeRef runs a void sub-scan over relativeRef to confirm
// it's well-formed before resolveComponents touches it.
func (s *uriScanner) validateRelativeRef(relativeRef string) error {
	validation := &uriScanner{
		raw:       relativeRef,
		base:      &scannerBase{hasBase: false},
		input:     newCursor(relativeRef),
		output:    &voidSink{},
		unchecked: false,
	}
	if err := validation.parseSchemeStart(); err != nil {
		return err
	}

	if validation.slices.schemeEnd > 0 {
		// Parsed as absolute; reject the ambiguous "scheme:rootless-path"
		// form (RFC 3986 §4.2), which a relative-path reference can't use.
		uriAfterScheme := relativeRef[validation.inputSchemeEnd:]
		if !strings.HasPrefix(uriAfterScheme, "/") {
			return &scanError{message: "invalid uri character in first path segment", char: ':'}
		}
	}

	return nil
}

// parseRelative resolves a relative reference against the scanner's base,
// or (absent a base) parses it standalone as a relative-path reference.
func (s *uriScanner) parseRelative() error {
	if !s.base.hasBase {
		return s.parseRelativeNoBase()
	}

	relativeRef := s.input.tail()
	if err := s.validateRelativeRef(relativeRef); err != nil {
		return err
	}

	t := s.resolveComponents(relativeRef)
	s.recomposeIRI(t)
	return nil
}
