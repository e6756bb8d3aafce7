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

package node

import "testing"

func TestValidateLanguageTagAccepts(t *testing.T) {
	t.Parallel()
	tags := []string{
		"en",
		"en-US",
		"en-us",
		"fr-CA",
		"zh-Hans",
		"zh-Hans-CN",
		"zh-yue-HK",
		"sr-Latn-RS",
		"es-419",
		"de-CH-1901",
		"en-a-bbb-x-a-ccc",
		"x-private",
		"i-klingon",
	}
	for _, tag := range tags {
		if err := validateLanguageTag(tag); err != nil {
			t.Errorf("validateLanguageTag(%q) = %v, want nil", tag, err)
		}
	}
}

func TestValidateLanguageTagRejects(t *testing.T) {
	t.Parallel()
	tags := []string{
		"",
		"-en",
		"en--US",
		"thisistoolongasubtag",
		"en-a",
		"en-a-bbb-a-ccc",
		"en_US",
		"en US",
		"en-ü",
	}
	for _, tag := range tags {
		if err := validateLanguageTag(tag); err == nil {
			t.Errorf("validateLanguageTag(%q) = nil, want an error", tag)
		}
	}
}

func TestValidateLanguageTagRejectsDuplicateSingleton(t *testing.T) {
	t.Parallel()
	if err := validateLanguageTag("en-a-bbb-a-ccc"); err == nil {
		t.Fatal("expected an error for a duplicate extension singleton")
	}
}

func TestValidateLanguageTagAllowsRepeatedVariants(t *testing.T) {
	t.Parallel()
	// well-formedness alone doesn't reject a variant used twice; only
	// IANA registry validation (not performed here) would.
	if err := validateLanguageTag("sl-rozaj-rozaj"); err != nil {
		t.Errorf("validateLanguageTag(%q) = %v, want nil", "sl-rozaj-rozaj", err)
	}
}

func TestNewLiteralValidatesLanguageTag(t *testing.T) {
	t.Parallel()
	if _, err := NewLiteral("hello", HasLanguage, "en-US"); err != nil {
		t.Fatalf("NewLiteral with valid language tag: %v", err)
	}
	if _, err := NewLiteral("hello", HasLanguage, "not_a_tag"); err == nil {
		t.Fatal("expected NewLiteral to reject a malformed language tag")
	}
}
