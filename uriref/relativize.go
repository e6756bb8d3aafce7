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

import (
	"errors"
	"strings"
)

// errRelativizeDotSegments is returned when the target's path contains
// dot segments ("." or "..") and so cannot be relativized until
// normalized (View.Relativize treats this as "leave target unchanged").
var errRelativizeDotSegments = errors.New("target path contains dot segments and cannot be relativized")

// relativize dispatches to the right case of RFC 3986's reference-
// relativization (the inverse of §5.2's resolution): same scheme and
// authority, comparable paths, a shared directory prefix reduced to a run
// of "../" up-references.
func relativize(base, abs View) (View, error) {
	absPath := abs.Path()
	for _, segment := range strings.Split(absPath, "/") {
		if segment == "." || segment == ".." {
			return View{}, errRelativizeDotSegments
		}
	}

	baseScheme, _ := base.Scheme()
	absScheme, _ := abs.Scheme()
	if baseScheme != absScheme {
		return Parse(abs.String())
	}

	baseAuthority, hasBaseAuthority := base.Authority()
	absAuthority, hasAbsAuthority := abs.Authority()

	if hasBaseAuthority != hasAbsAuthority || (hasBaseAuthority && baseAuthority != absAuthority) {
		return Parse(abs.String())
	}

	basePath := base.Path()

	if absPath == "" && basePath != "" {
		if !hasAbsAuthority {
			return Parse(abs.String())
		}
		return Parse(abs.String()[abs.slices.schemeEnd:])
	}

	if basePath == absPath {
		return relativizeForSamePath(base, abs)
	}

	if !hasBaseAuthority {
		return relativizeForNoAuthority(base, abs)
	}

	return relativizeWithAuthority(base, abs)
}

// relativizeWithAuthority handles the general case: both base and target
// carry an authority, so their paths are compared directory by directory.
func relativizeWithAuthority(base, abs View) (View, error) {
	basePath := base.Path()
	targetPath := abs.Path()

	if basePath == "" {
		basePath = "/"
	}
	if targetPath == "" {
		targetPath = "/"
	}

	baseDir := basePath
	if lastSlash := strings.LastIndex(baseDir, "/"); lastSlash > -1 {
		baseDir = baseDir[:lastSlash+1]
	}

	baseSegs := strings.Split(strings.Trim(baseDir, "/"), "/")
	trimmedTargetPath := strings.TrimPrefix(targetPath, "/")
	targetSegs := strings.Split(trimmedTargetPath, "/")

	if baseDir == "/" {
		baseSegs = []string{}
	}
	if targetPath == "/" {
		targetSegs = []string{}
	}

	commonLen := 0
	for commonLen < len(baseSegs) && commonLen < len(targetSegs) && baseSegs[commonLen] == targetSegs[commonLen] {
		commonLen++
	}

	var b strings.Builder
	for i := commonLen; i < len(baseSegs); i++ {
		b.WriteString("../")
	}
	b.WriteString(strings.Join(targetSegs[commonLen:], "/"))
	relPath := b.String()

	if relPath == "" {
		// Same directory as the base "file": "." means "target is that
		// directory itself", distinct from an empty same-name reference.
		lastTargetSlash := strings.LastIndex(targetPath, "/")
		if lastTargetSlash > -1 && targetPath[lastTargetSlash+1:] == "" {
			return buildRelativeRef(".", abs)
		}
	}

	return buildRelativeRef(relPath, abs)
}

// buildRelativeRef appends abs's query/fragment onto relPath and parses
// the result as a standalone reference.
func buildRelativeRef(relPath string, abs View) (View, error) {
	absQuery, hasAbsQuery := abs.Query()
	absFragment, hasAbsFragment := abs.Fragment()

	var b strings.Builder
	b.WriteString(relPath)
	if hasAbsQuery {
		b.WriteRune('?')
		b.WriteString(absQuery)
	}
	if hasAbsFragment {
		b.WriteRune('#')
		b.WriteString(absFragment)
	}
	return Parse(b.String())
}

// relativizeForNoAuthority handles relativization when neither side has an
// authority.
func relativizeForNoAuthority(base, abs View) (View, error) {
	basePath := base.Path()
	absPath := abs.Path()

	baseSegs := strings.Split(basePath, "/")
	absSegs := strings.Split(absPath, "/")

	var baseDirSegs []string
	if len(baseSegs) > 0 {
		baseDirSegs = baseSegs[:len(baseSegs)-1]
	}

	commonSegs := 0
	for commonSegs < len(baseDirSegs) && commonSegs < len(absSegs) && baseDirSegs[commonSegs] == absSegs[commonSegs] {
		commonSegs++
	}

	var b strings.Builder
	for i := commonSegs; i < len(baseDirSegs); i++ {
		b.WriteString("../")
	}
	b.WriteString(strings.Join(absSegs[commonSegs:], "/"))

	relPath := b.String()
	if relPath == "" && basePath != absPath {
		relPath = "."
	}

	if !strings.HasPrefix(relPath, ".") && !strings.HasPrefix(relPath, "/") {
		if firstColon := strings.Index(relPath, ":"); firstColon != -1 {
			firstSlash := strings.Index(relPath, "/")
			if firstSlash == -1 || firstColon < firstSlash {
				// Would otherwise be mistaken for a scheme-bearing reference.
				relPath = "./" + relPath
			}
		}
	}

	return buildRelativeRef(relPath, abs)
}

// relativizeForSamePathWithEmptyTargetQuery handles the edge case where
// the paths match but only the base carries a query.
func relativizeForSamePathWithEmptyTargetQuery(abs View) (View, error) {
	_, hasAbsAuthority := abs.Authority()
	if !hasAbsAuthority {
		return Parse(abs.String())
	}

	absPath := abs.Path()
	if absPath != "" {
		lastSlash := strings.LastIndex(absPath, "/")
		relPath := absPath[lastSlash+1:]
		if relPath == "" {
			relPath = "."
		}
		return buildRelativeRef(relPath, abs)
	}

	return Parse(abs.String()[abs.slices.schemeEnd:])
}

// relativizeForSamePath handles the case where base and target paths are
// identical.
func relativizeForSamePath(base, abs View) (View, error) {
	baseQuery, hasBaseQuery := base.Query()
	absQuery, hasAbsQuery := abs.Query()
	absFragment, hasAbsFragment := abs.Fragment()

	if hasBaseQuery == hasAbsQuery && baseQuery == absQuery {
		if hasAbsFragment {
			return Parse("#" + absFragment)
		}
		return Parse("")
	}

	if !hasAbsQuery && hasBaseQuery {
		return relativizeForSamePathWithEmptyTargetQuery(abs)
	}

	return Parse(abs.String()[abs.slices.pathEnd:])
}
