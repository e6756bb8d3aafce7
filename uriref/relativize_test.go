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

import "testing"

func TestRelativizeCommonDirectory(t *testing.T) {
	t.Parallel()
	base, err := Parse("http://example.org/a/b/c")
	if err != nil {
		t.Fatal(err)
	}
	target, err := Parse("http://example.org/a/b/d")
	if err != nil {
		t.Fatal(err)
	}
	rel, err := base.Relativize(target)
	if err != nil {
		t.Fatal(err)
	}
	if rel.String() != "d" {
		t.Errorf("Relativize() = %q, want %q", rel.String(), "d")
	}
}

func TestRelativizeRequiresUpReferences(t *testing.T) {
	t.Parallel()
	base, err := Parse("http://example.org/a/b/c/d")
	if err != nil {
		t.Fatal(err)
	}
	target, err := Parse("http://example.org/a/x")
	if err != nil {
		t.Fatal(err)
	}
	rel, err := base.Relativize(target)
	if err != nil {
		t.Fatal(err)
	}
	if rel.String() != "../../x" {
		t.Errorf("Relativize() = %q, want %q", rel.String(), "../../x")
	}
}

func TestRelativizeDifferentAuthorityLeavesTargetUnchanged(t *testing.T) {
	t.Parallel()
	base, err := Parse("http://example.org/a")
	if err != nil {
		t.Fatal(err)
	}
	target, err := Parse("http://other.example/a")
	if err != nil {
		t.Fatal(err)
	}
	rel, err := base.Relativize(target)
	if err != nil {
		t.Fatal(err)
	}
	if rel.String() != target.String() {
		t.Errorf("Relativize() = %q, want target unchanged %q", rel.String(), target.String())
	}
}

func TestRelativizeDotSegmentsInTargetLeaveItUnchanged(t *testing.T) {
	t.Parallel()
	base, err := Parse("http://example.org/a/b")
	if err != nil {
		t.Fatal(err)
	}
	target, err := Parse("http://example.org/a/./b")
	if err != nil {
		t.Fatal(err)
	}
	rel, err := base.Relativize(target)
	if err != nil {
		t.Fatal(err)
	}
	if rel.String() != target.String() {
		t.Errorf("Relativize() = %q, want target unchanged %q", rel.String(), target.String())
	}
}

func TestRelativizeRoundTripsThroughResolve(t *testing.T) {
	t.Parallel()
	cases := []struct{ base, target string }{
		{"http://example.org/a/b/c", "http://example.org/a/b/d"},
		{"http://example.org/a/b/c", "http://example.org/x/y"},
		{"http://example.org/a/b/", "http://example.org/a/b/"},
		{"http://example.org/a/b?q=1", "http://example.org/a/b?q=2"},
		{"http://example.org/a/b", "http://example.org/a/b#frag"},
	}
	for _, tt := range cases {
		base, err := Parse(tt.base)
		if err != nil {
			t.Fatal(err)
		}
		target, err := Parse(tt.target)
		if err != nil {
			t.Fatal(err)
		}
		rel, err := base.Relativize(target)
		if err != nil {
			t.Fatal(err)
		}
		resolved, err := base.Resolve(rel.String())
		if err != nil {
			t.Fatalf("Resolve(%q) after Relativize: %v", rel.String(), err)
		}
		if resolved.String() != target.String() {
			t.Errorf("round trip for base=%q target=%q: got %q via relative %q", tt.base, tt.target, resolved.String(), rel.String())
		}
	}
}

func TestIsWithinVariants(t *testing.T) {
	t.Parallel()
	base, err := Parse("http://example.org/a/b/")
	if err != nil {
		t.Fatal(err)
	}
	within, err := Parse("http://example.org/a/b/c")
	if err != nil {
		t.Fatal(err)
	}
	notWithin, err := Parse("http://example.org/a/x")
	if err != nil {
		t.Fatal(err)
	}
	otherAuthority, err := Parse("http://other.example/a/b/c")
	if err != nil {
		t.Fatal(err)
	}
	if !IsWithin(within, base) {
		t.Error("expected within to be within base")
	}
	if IsWithin(notWithin, base) {
		t.Error("expected notWithin to not be within base")
	}
	if IsWithin(otherAuthority, base) {
		t.Error("expected otherAuthority to not be within base")
	}
	if IsWithin(base, base) {
		t.Error("a view is not within itself")
	}
}
