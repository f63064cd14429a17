// Copyright (C) 2026 the Alter-Converter authors. All Rights Reserved.

// Package testdocs provides shared input fixtures for tests and benchmarks.
//
// The markup reader locates closing tags by forward text search, so an
// element with nested elements must be the last child of its parent; the
// fixtures are shaped to respect that.
package testdocs

// Markup is a representative markup document exercising nesting,
// attributes, self-closing tags, and text content.
const Markup = `<library name="central" floor="2">
  <sensor unit="C" reading="21.5"/>
  <note>closed on holidays</note>
  <book id="go1" lang="en">
    <title>The Go Programming Language</title>
    <author>Donovan</author>
    <year>2015</year>
  </book>
</library>`

// Object is an object-notation document using the "#name"/"@attr" record
// idiom, shaped to reconcile into the same structure Markup parses to.
const Object = `{
  "library": {
    "@name": "central",
    "@floor": "2",
    "#library": {
      "sensor": {"@unit": "C", "@reading": "21.5", "#sensor": ""},
      "note": "closed on holidays",
      "book": {
        "@id": "go1",
        "@lang": "en",
        "#book": {
          "title": "The Go Programming Language",
          "author": "Donovan",
          "year": 2015
        }
      }
    }
  }
}`

// ObjectPlain is an ordinary nested object with no attribute idioms.
const ObjectPlain = `{
  "config": {
    "host": "localhost",
    "port": 8080,
    "comment": null,
    "limits": {
      "open": 32,
      "idle": 4
    }
  }
}`
