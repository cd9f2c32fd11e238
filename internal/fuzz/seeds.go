package fuzztests

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

var snippetSeeds = []string{
	"",
	"struct A { 1: i32 a }\n",
	"const i32 X = 1\n",
	"include \"a.thrift\"\n",
	"namespace go demo.api\n",
	"typedef list<map<string, i64>> Rows\n",
	"enum Color { RED = 1; GREEN, BLUE = 0x10 }\n",
	"exception Oops { 1: string msg } (code = \"x\")\n",
	"service S extends B { oneway void ping(), i32 add(1: i32 a, 2: i32 b) throws (1: Oops e) }\n",
	"const map<string, list<double>> M = {\"a\": [1.5, -2; 3e4], 'b': []}\n",
	"// comment\n/* block */ # hash\nunion U { 1: optional binary b = \"\" }\n",
}

func addCorpusSeeds(f *testing.F) {
	paths, _ := filepath.Glob(filepath.Join("..", "format", "testdata", "*.thrift"))
	for _, path := range paths {
		// #nosec G304 -- path comes from repository testdata
		src, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f.Add(clampSeed(src))
	}
	for _, s := range snippetSeeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
