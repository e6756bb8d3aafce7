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

import (
	"errors"
	"strings"
)

// Well-formedness limits from RFC 5646 §2.1's ABNF.
const (
	maxSubtagLen        = 8 // every subtag is at most eight characters
	maxExtlangs         = 1 // at most one extended language subtag
	scriptLen           = 4 // a script subtag is always four letters
	regionAlphaLen      = 2 // an alphabetic region subtag is always two letters
	regionNumericLen    = 3 // a numeric region subtag is always three digits
	extlangLen          = 3 // an extended language subtag is always three letters
	shortPrimaryLangLen = 3 // primary languages this short may carry an extlang
)

// Errors reported by validateLanguageTag, naming the BCP 47 rule a tag
// failed.
var (
	errLangEmptyExtension     = errors.New("if an extension subtag is present, it must not be empty")
	errLangEmptyPrivateUse    = errors.New("if the 'x' subtag is present, it must not be empty")
	errLangForbiddenChar      = errors.New("language tag contains a character outside [A-Za-z0-9-]")
	errLangInvalidSubtag      = errors.New("a subtag fails to parse as extlang, script, region or variant")
	errLangInvalidLanguage    = errors.New("the primary language subtag is invalid")
	errLangSubtagTooLong      = errors.New("a subtag may be eight characters in length at maximum")
	errLangEmptySubtag        = errors.New("a subtag must not be empty")
	errLangTooManyExtlangs    = errors.New("at most one extended language subtag is allowed")
	errLangDuplicateSingleton = errors.New("the same extension singleton appears more than once")
)

// langtagState tracks what kind of subtag is expected next while walking a
// tag's hyphen-separated subtags left to right.
type langtagState int

const (
	langStart         langtagState = iota // expecting the primary language
	langAfterLanguage                     // after a short (<=3 letter) primary language
	langAfterExtLang                      // after a long primary language or an extlang
	langAfterScript                       // after a script
	langAfterRegion                       // after a region
	langInVariant                         // inside a run of variants
	langInExtension                       // inside an extension sequence, after its singleton
	langInPrivateUse                      // inside a private-use sequence, after "x"
)

// langtagValidator walks a candidate BCP 47 tag's subtags and checks them
// against the grammar in RFC 5646 §2.1. It performs no IANA registry
// lookups: this module only needs well-formedness, not the stricter
// registered-subtag validity a full implementation would also check.
type langtagValidator struct {
	state             langtagState
	extlangsCount     int
	extensionExpected bool
	seenSingletons    map[rune]struct{}
}

func isLangtagChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-'
}

func isAlphabeticSubtag(s string) bool {
	if s == "" {
		return false
	}
	for i := range s {
		if !isAlpha(s[i]) {
			return false
		}
	}
	return true
}

func isNumericSubtag(s string) bool {
	if s == "" {
		return false
	}
	for i := range s {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func isAlphanumericSubtag(s string) bool {
	if s == "" {
		return false
	}
	for i := range s {
		if !isAlpha(s[i]) && !isDigit(s[i]) {
			return false
		}
	}
	return true
}

func validateSubtagLength(subtag string) error {
	switch {
	case len(subtag) == 0:
		return errLangEmptySubtag
	case len(subtag) > maxSubtagLen:
		return errLangSubtagTooLong
	default:
		return nil
	}
}

// validateLanguageTag checks tag against the BCP 47 well-formedness grammar:
// a primary language subtag followed by any number of hyphen-separated
// extlang, script, region, variant, extension and private-use subtags, in
// that order. Grandfathered tags (e.g. "i-klingon") are not treated as a
// special case: their subtags happen to satisfy this same grammar as an
// ordinary private-language tag followed by a long variant-shaped subtag.
func validateLanguageTag(tag string) error {
	for _, r := range tag {
		if !isLangtagChar(r) {
			return errLangForbiddenChar
		}
	}

	v := &langtagValidator{}
	return v.run(tag)
}

func (v *langtagValidator) run(tag string) error {
	subtags := strings.Split(tag, "-")
	trailingHyphen := len(subtags) > 1 && subtags[len(subtags)-1] == ""
	if trailingHyphen {
		subtags = subtags[:len(subtags)-1]
	}

	if len(subtags) > 0 && strings.EqualFold(subtags[0], "x") {
		return v.parsePrivateUseOnly(subtags)
	}

	if err := v.processSubtags(subtags); err != nil {
		return err
	}

	return v.checkFinalState(trailingHyphen)
}

func (v *langtagValidator) parsePrivateUseOnly(subtags []string) error {
	if len(subtags) == 1 {
		return errLangEmptyPrivateUse
	}
	for _, subtag := range subtags[1:] {
		if err := validateSubtagLength(subtag); err != nil {
			return err
		}
	}
	v.state = langInPrivateUse
	return nil
}

func (v *langtagValidator) processSubtags(subtags []string) error {
	for i, subtag := range subtags {
		if err := validateSubtagLength(subtag); err != nil {
			return err
		}

		switch v.state {
		case langInPrivateUse:
			// no further constraints on private-use subtags beyond length
		case langInExtension:
			if err := v.handleExtensionSubtag(subtag); err != nil {
				return err
			}
		default:
			if err := v.handleLangtagSubtag(i, subtag); err != nil {
				return err
			}
		}
	}
	return nil
}

func (v *langtagValidator) checkFinalState(trailingHyphen bool) error {
	if trailingHyphen {
		if v.extensionExpected {
			return errLangEmptyExtension
		}
		if v.state == langInPrivateUse {
			return errLangEmptyPrivateUse
		}
	}
	if v.extensionExpected {
		// a singleton ("-a", "-u") with nothing following it, e.g. "en-a"
		return errLangEmptyExtension
	}
	return nil
}

func (v *langtagValidator) handlePrimaryLanguage(subtag string) error {
	if len(subtag) < 1 || len(subtag) > maxSubtagLen || !isAlphabeticSubtag(subtag) {
		return errLangInvalidLanguage
	}
	v.state = langAfterExtLang
	if len(subtag) <= shortPrimaryLangLen {
		v.state = langAfterLanguage
	}
	return nil
}

func (v *langtagValidator) handleLangtagSubtag(i int, subtag string) error {
	if i == 0 {
		return v.handlePrimaryLanguage(subtag)
	}
	if len(subtag) == 1 {
		return v.handleSingleton(subtag)
	}

	if v.extlangsCount >= maxExtlangs && len(subtag) == extlangLen && isAlphabeticSubtag(subtag) {
		return errLangTooManyExtlangs
	}

	// Subtags are ambiguous in isolation, so try them in the grammar's own
	// order: extlang, then script, then region, then variant.
	if v.tryParseAsExtlang(subtag) {
		v.state = langAfterExtLang
		return nil
	}
	if v.tryParseAsScript(subtag) {
		v.state = langAfterScript
		return nil
	}
	if v.tryParseAsRegion(subtag) {
		v.state = langAfterRegion
		return nil
	}
	if v.tryParseAsVariant(subtag) {
		v.state = langInVariant
		return nil
	}

	return errLangInvalidSubtag
}

func (v *langtagValidator) tryParseAsExtlang(subtag string) bool {
	if v.state != langAfterLanguage || v.extlangsCount >= maxExtlangs ||
		len(subtag) != extlangLen || !isAlphabeticSubtag(subtag) {
		return false
	}
	v.extlangsCount++
	return true
}

func (v *langtagValidator) tryParseAsScript(subtag string) bool {
	return v.state <= langAfterExtLang && len(subtag) == scriptLen && isAlphabeticSubtag(subtag)
}

func (v *langtagValidator) tryParseAsRegion(subtag string) bool {
	isRegionFmt := (len(subtag) == regionAlphaLen && isAlphabeticSubtag(subtag)) ||
		(len(subtag) == regionNumericLen && isNumericSubtag(subtag))
	return v.state <= langAfterScript && isRegionFmt
}

func (v *langtagValidator) tryParseAsVariant(subtag string) bool {
	if v.state > langAfterRegion && v.state != langInVariant {
		return false
	}
	return isAlphanumericSubtag(subtag)
}

func (v *langtagValidator) handleExtensionSubtag(subtag string) error {
	if len(subtag) == 1 {
		return v.handleSingleton(subtag)
	}
	v.extensionExpected = false
	return nil
}

func (v *langtagValidator) handleSingleton(subtag string) error {
	if v.extensionExpected {
		return errLangEmptyExtension
	}
	s := rune(subtag[0])
	if s >= 'A' && s <= 'Z' {
		s += 'a' - 'A'
	}
	if v.seenSingletons == nil {
		v.seenSingletons = make(map[rune]struct{})
	}
	if _, ok := v.seenSingletons[s]; ok {
		return errLangDuplicateSingleton
	}
	v.seenSingletons[s] = struct{}{}

	if s == 'x' {
		v.state = langInPrivateUse
		return nil
	}
	v.state = langInExtension
	v.extensionExpected = true
	return nil
}
