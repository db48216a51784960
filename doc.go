// Package pathdoc addresses and mutates trees of JSON values through
// slash-delimited paths.
//
// A document is a Value: Null, Bool, Number, String, *Array or *Object.
// Objects keep key insertion order so Stringify(Parse(x)) keeps the order of
// x. Paths such as "items/2/price" are split on '/'; empty segments are
// dropped, so "" is the root.
//
//	doc, err := pathdoc.Parse(`{"user":{"tags":["a"]}}`)
//	_ = pathdoc.Set(doc, pathdoc.ParsePath("user/tags/1"), pathdoc.String("b"))
//	v, ok := pathdoc.Get(doc, pathdoc.ParsePath("user/tags/1"))
//
// Set creates missing intermediate objects and never leaves a document half
// written when it fails. Errors carry string codes (see Issue and IssueOf)
// and match the Err* sentinels through errors.Is.
//
// Input is tokenized by a pluggable JSONDriver. The default is encoding/json;
// importing github.com/reoring/pathdoc/source switches to goccy/go-json.
// ParseOpt adds duplicate-key, depth and size limits to any Source.
package pathdoc
