package benchmarks_test

import (
	"bytes"
	"fmt"
	"strconv"
	"testing"

	"github.com/reoring/pathdoc"
	"github.com/reoring/pathdoc/source/gojson"
	"github.com/reoring/pathdoc/source/yamlsrc"
)

// ---- Helpers ----

// generateHugeJSONArray returns a JSON array of objects of the form:
// [{"id":"obj_0","name":"n0","age":0,"active":true,"meta":{"score":0},"k0":"v0_0",...}, ...]
func generateHugeJSONArray(numObjects int, extraFields int) []byte {
	var buf bytes.Buffer
	buf.Grow(numObjects * (64 + extraFields*16))
	buf.WriteByte('[')
	for i := 0; i < numObjects; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		fmt.Fprintf(&buf, "\"id\":\"obj_%d\",", i)
		fmt.Fprintf(&buf, "\"name\":\"n%d\",", i)
		fmt.Fprintf(&buf, "\"age\":%d,", i)
		buf.WriteString("\"active\":" + strconv.FormatBool(i%2 == 0) + ",")
		fmt.Fprintf(&buf, "\"meta\":{\"score\":%d}", i)
		for k := 0; k < extraFields; k++ {
			fmt.Fprintf(&buf, ",\"k%d\":\"v%d_%d\"", k, i, k)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

func withDriver(b *testing.B, d pathdoc.JSONDriver) {
	b.Helper()
	pathdoc.SetJSONDriver(d)
	b.Cleanup(pathdoc.UseDefaultJSONDriver)
}

func benchParse(b *testing.B, data []byte) {
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathdoc.ParseBytes(data); err != nil {
			b.Fatal(err)
		}
	}
}

// ---- Parse per driver ----

func Benchmark_Parse_HugeArray_EncodingJSON(b *testing.B) {
	withDriver(b, pathdoc.DefaultJSONDriver())
	benchParse(b, generateHugeJSONArray(1000, 8))
}

func Benchmark_Parse_HugeArray_GoJSON(b *testing.B) {
	withDriver(b, gojson.Driver())
	benchParse(b, generateHugeJSONArray(1000, 8))
}

func Benchmark_Parse_HugeArray_YAML(b *testing.B) {
	v, err := pathdoc.ParseBytes(generateHugeJSONArray(200, 4))
	if err != nil {
		b.Fatal(err)
	}
	data, err := yamlsrc.Marshal(v)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := yamlsrc.Parse(data); err != nil {
			b.Fatal(err)
		}
	}
}

// ---- Path access ----

func Benchmark_ParseGet_Early(b *testing.B) {
	data := generateHugeJSONArray(1000, 8)
	p := pathdoc.ParsePath("3/meta/score")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		doc, err := pathdoc.ParseBytes(data)
		if err != nil {
			b.Fatal(err)
		}
		if _, ok := pathdoc.Get(doc, p); !ok {
			b.Fatal("missing")
		}
	}
}

func Benchmark_Lookup_Early(b *testing.B) {
	data := generateHugeJSONArray(1000, 8)
	p := pathdoc.ParsePath("3/meta/score")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok, err := pathdoc.LookupBytes(data, p); err != nil || !ok {
			b.Fatal(ok, err)
		}
	}
}

func Benchmark_Set_Nested(b *testing.B) {
	doc, err := pathdoc.ParseBytes(generateHugeJSONArray(100, 2))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p := pathdoc.Path{strconv.Itoa(i % 100), "meta", "tags", "last"}
		if err := pathdoc.Set(doc, p, pathdoc.Number(i)); err != nil {
			b.Fatal(err)
		}
	}
}

func Benchmark_Stringify_HugeArray(b *testing.B) {
	doc, err := pathdoc.ParseBytes(generateHugeJSONArray(1000, 8))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = pathdoc.AppendJSON(nil, doc)
	}
}
