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
	"net"
	"strings"

	"golang.org/x/net/idna"
)

const ipvFutureParts = 2 // "v1.abc" splits into version and address

func (s *uriScanner) parseUserinfo(userinfo string) error {
	if userinfo == "" {
		return nil
	}
	if !s.unchecked {
		if err := validateBidiComponent(userinfo); err != nil {
			return err
		}
	}

	var tempBuffer strings.Builder
	tempScanner := &uriScanner{
		input:     newCursor(userinfo),
		output:    &stringSink{builder: &tempBuffer},
		unchecked: s.unchecked,
	}

	for {
		r, ok := tempScanner.input.next()
		if !ok {
			break
		}
		if err := tempScanner.readURLCodepointOrEchar(r, func(c rune) bool {
			return isIUnreservedOrSubDelims(c) || c == ':'
		}); err != nil {
			return err
		}
	}

	s.output.writeString(tempBuffer.String())
	s.output.writeRune('@')
	return nil
}

// validateHost checks host for structural validity (IP-literal form, bidi
// rules).
func (s *uriScanner) validateHost(host string) error {
	if strings.HasPrefix(host, "[") {
		if !strings.HasSuffix(host, "]") {
			return &scanError{message: "invalid host ip: unterminated ip literal", details: host}
		}
		if err := s.validateIPLiteral(host[1 : len(host)-1]); err != nil {
			return err
		}
	} else if err := validateBidiHost(host); err != nil {
		return err
	}
	return nil
}

func (s *uriScanner) parseHost(host string) error {
	if host == "" {
		return nil
	}
	if !s.unchecked {
		if err := s.validateHost(host); err != nil {
			return err
		}
	}

	var tempBuffer strings.Builder
	tempScanner := &uriScanner{
		input:     newCursor(host),
		output:    &stringSink{builder: &tempBuffer},
		unchecked: s.unchecked,
	}

	for {
		r, ok := tempScanner.input.next()
		if !ok {
			break
		}

		if r == '%' {
			if err := tempScanner.readEchar(); err != nil {
				return err
			}
			continue
		}

		// A host allows different characters depending on whether it's an
		// IP literal or a registered name; accept the union.
		isIPLiteralChar := r == '[' || r == ']' || r == ':'
		if !s.unchecked && !isIUnreservedOrSubDelims(r) && !isIPLiteralChar {
			return &scanError{message: "invalid character in host", char: r}
		}
		tempScanner.output.writeRune(r)
	}

	s.output.writeString(tempBuffer.String())
	return nil
}

func (s *uriScanner) parsePort(port string) error {
	if port == "" {
		return nil
	}
	if !s.unchecked {
		for _, r := range port {
			if !isASCIIDigit(r) {
				return &scanError{message: "invalid port character", char: r}
			}
		}
	}
	s.output.writeRune(':')
	s.output.writeString(port)
	return nil
}

// parseAuthority consumes and validates the authority component.
func (s *uriScanner) parseAuthority() error {
	authorityStr := s.input.tail()
	end := len(authorityStr)
	for i, r := range authorityStr {
		if r == '/' || r == '?' || r == '#' {
			end = i
			break
		}
	}
	authorityPart := authorityStr[:end]

	userinfo, host, port := splitAuthority(authorityPart)

	if err := s.parseUserinfo(userinfo); err != nil {
		return err
	}
	if err := s.parseHost(host); err != nil {
		return err
	}
	if err := s.parsePort(port); err != nil {
		return err
	}

	s.input.reset(authorityStr[end:])
	s.slices.authorityEnd = s.output.len()

	return nil
}

// validateIPLiteral checks the text inside "[" "]" as an IPv6 or
// IPvFuture address.
func (s *uriScanner) validateIPLiteral(ipLiteral string) error {
	if strings.HasPrefix(ipLiteral, "v") || strings.HasPrefix(ipLiteral, "V") {
		return s.validateIPVFuture(ipLiteral)
	}
	if net.ParseIP(ipLiteral) == nil {
		return &scanError{message: "invalid host ip", details: ipLiteral}
	}
	return nil
}

func (s *uriScanner) validateIPVFuture(ip string) error {
	parts := strings.SplitN(ip[1:], ".", ipvFutureParts)
	if len(parts) != ipvFutureParts {
		return &scanError{message: "invalid ipvfuture format: no dot separator", details: ip}
	}
	version, address := parts[0], parts[1]
	if version == "" {
		return &scanError{message: "invalid ipvfuture: missing version", details: ip}
	}
	for _, r := range version {
		if !isASCIIHexDigit(r) {
			return &scanError{message: "invalid ipvfuture version char", char: r}
		}
	}
	if address == "" {
		return &scanError{message: "invalid ipvfuture: empty address part", details: ip}
	}
	for _, r := range address {
		if !isUnreservedOrSubDelims(r) && r != ':' {
			return &scanError{message: "invalid ipvfuture address char", char: r}
		}
	}
	return nil
}

// splitAuthority splits an authority string into userinfo, host and port.
func splitAuthority(authority string) (userinfo, host, port string) {
	endUserinfo := strings.LastIndex(authority, "@")
	hostport := authority
	if endUserinfo != -1 {
		userinfo = authority[:endUserinfo]
		hostport = authority[endUserinfo+1:]
	}

	if strings.HasPrefix(hostport, "[") {
		endBracket := strings.LastIndex(hostport, "]")
		if endBracket == -1 {
			host = hostport
			return userinfo, host, port
		}
		host = hostport[:endBracket+1]
		if len(hostport) > endBracket+1 && hostport[endBracket+1] == ':' {
			port = hostport[endBracket+2:]
		}
		return userinfo, host, port
	}

	if endHost := strings.LastIndex(hostport, ":"); endHost != -1 {
		host = hostport[:endHost]
		port = hostport[endHost+1:]
	} else {
		host = hostport
	}
	return userinfo, host, port
}

// normalizeHostAndPort applies case, IDNA, and scheme-default-port
// normalization.
func normalizeHostAndPort(host, port, scheme string) (string, string) {
	normalizedHost := strings.ToLower(host)

	if !strings.HasPrefix(normalizedHost, "[") {
		unicodeHost := normalizedHost
		if asciiHost, err := idna.ToASCII(normalizedHost); err == nil {
			if uh, errUnicode := idna.ToUnicode(asciiHost); errUnicode == nil {
				unicodeHost = uh
			}
		}
		// x/net/idna implements IDNA2008, which (unlike IDNA2003/Nameprep)
		// never folds German Eszett 'ß' to "ss"; fold it by hand so
		// normalization still matches RFC 3491 Table B.2 here.
		normalizedHost = strings.ReplaceAll(unicodeHost, "ß", "ss")
	}

	normalizedPort := port
	if normalizedPort != "" {
		isDefaultPort := (scheme == "http" && normalizedPort == "80") ||
			(scheme == "https" && normalizedPort == "443") ||
			(scheme == "ftp" && normalizedPort == "21") ||
			(scheme == "ws" && normalizedPort == "80") ||
			(scheme == "wss" && normalizedPort == "443")
		if isDefaultPort {
			normalizedPort = ""
		}
	}

	return normalizedHost, normalizedPort
}
