// Package source installs the goccy/go-json driver as the process-wide JSON
// driver of pathdoc when imported:
//
//	import _ "github.com/reoring/pathdoc/source"
package source

import (
	"github.com/reoring/pathdoc"
	drvgojson "github.com/reoring/pathdoc/source/gojson"
)

// init lives outside the root package to avoid an import cycle.
func init() { pathdoc.SetJSONDriver(drvgojson.Driver()) }
