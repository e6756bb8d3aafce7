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

// applyDotSegmentRules applies rules 2A-2D of RFC 3986 §5.2.4 to the front
// of in, against the segments already moved to output. It reports whether
// a rule matched.
func applyDotSegmentRules(in string, output []string) (string, []string, bool) {
	switch {
	case strings.HasPrefix(in, "../"):
		return in[3:], output, true
	case strings.HasPrefix(in, "./"):
		return in[2:], output, true
	case strings.HasPrefix(in, "/./"):
		return "/" + in[3:], output, true
	case in == "/.":
		return "/", output, true
	case strings.HasPrefix(in, "/../") || in == "/..":
		newIn := "/"
		if len(in) > len("/..") {
			newIn += in[4:]
		}
		if len(output) > 0 {
			lastSegment := output[len(output)-1]
			output = output[:len(output)-1]
			if len(output) == 0 && !strings.HasPrefix(lastSegment, "/") {
				newIn = strings.TrimPrefix(newIn, "/")
			}
		}
		return newIn, output, true
	case in == "." || in == "..":
		return "", output, true
	default:
		return in, output, false
	}
}

// extractFirstSegment implements rule 2E of RFC 3986 §5.2.4, splitting the
// first path segment off of in.
func extractFirstSegment(in string) (string, string) {
	slashIndex := strings.Index(in, "/")
	if slashIndex == 0 {
		nextSlash := strings.Index(in[1:], "/")
		if nextSlash == -1 {
			return in, ""
		}
		return in[:nextSlash+1], in[nextSlash+1:]
	}
	if slashIndex == -1 {
		return in, ""
	}
	return in[:slashIndex], in[slashIndex:]
}

// removeDotSegments implements the "Remove Dot Segments" algorithm of RFC
// 3986 §5.2.4, normalizing away "." and ".." path segments.
func removeDotSegments(input string) string {
	var output []string
	in := input

	for len(in) > 0 {
		var ruleApplied bool
		in, output, ruleApplied = applyDotSegmentRules(in, output)
		if ruleApplied {
			continue
		}
		segment, remainder := extractFirstSegment(in)
		in = remainder
		output = append(output, segment)
	}

	return strings.Join(output, "")
}

// resolvePath merges relPath onto the directory of basePath per RFC 3986
// §5.2.2/§5.2.3 and removes the resulting dot segments. This is the
// merge step that plays the spec's path_prefix role: basePath up to (and
// including) its last "/" stands in for the prefix a relative path is
// resolved against.
func resolvePath(basePath, relPath string) string {
	lastSlash := strings.LastIndex(basePath, "/")
	if lastSlash == -1 {
		return removeDotSegments(relPath)
	}
	return removeDotSegments(basePath[:lastSlash+1] + relPath)
}
