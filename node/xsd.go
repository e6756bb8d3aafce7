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

// Well-known datatype URIs attached by the canonical numeric constructors.
const (
	xsdNamespace  = "http://www.w3.org/2001/XMLSchema#"
	rdfNamespace  = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	xsdString     = xsdNamespace + "string"
	xsdBoolean    = xsdNamespace + "boolean"
	xsdDecimal    = xsdNamespace + "decimal"
	xsdInteger    = xsdNamespace + "integer"
	xsdDouble     = xsdNamespace + "double"
	xsdFloat      = xsdNamespace + "float"
	xsdHexBinary  = xsdNamespace + "hexBinary"
	xsdBase64Bin  = xsdNamespace + "base64Binary"
	rdfLangString = rdfNamespace + "langString"
)

func datatypeNode(uri string) *Node {
	return &Node{kind: Uri, value: uri}
}

// Exported datatype URI strings, for callers outside this package (the
// reader and writer) that need to tag a literal with a well-known xsd/rdf
// datatype without duplicating these namespace strings.
const (
	XSDString     = xsdString
	XSDBoolean    = xsdBoolean
	XSDDecimal    = xsdDecimal
	XSDInteger    = xsdInteger
	XSDDouble     = xsdDouble
	XSDFloat      = xsdFloat
	XSDHexBinary  = xsdHexBinary
	XSDBase64Bin  = xsdBase64Bin
	RDFLangString = rdfLangString
	RDFType       = rdfNamespace + "type"
	RDFFirst      = rdfNamespace + "first"
	RDFRest       = rdfNamespace + "rest"
	RDFNil        = rdfNamespace + "nil"
)
