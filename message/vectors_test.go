package message

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

type groupVectors struct {
	Valid []struct {
		Name   string `yaml:"name"`
		Stream string `yaml:"stream"`
		Code   string `yaml:"code"`
		Count  int    `yaml:"count"`
	} `yaml:"valid"`
	Invalid []struct {
		Name   string `yaml:"name"`
		Stream string `yaml:"stream"`
		Kind   string `yaml:"kind"`
	} `yaml:"invalid"`
}

func loadGroupVectors(t *testing.T) groupVectors {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("..", "testdata", "conformance", "cesr", "groups.yaml"))
	if err != nil {
		t.Fatalf("read vectors: %v", err)
	}
	var v groupVectors
	if err := yaml.Unmarshal(raw, &v); err != nil {
		t.Fatalf("unmarshal vectors: %v", err)
	}
	if len(v.Valid) == 0 || len(v.Invalid) == 0 {
		t.Fatalf("vector file is empty")
	}
	return v
}

func TestGroupVectorsValid(t *testing.T) {
	for _, tc := range loadGroupVectors(t).Valid {
		t.Run(tc.Name, func(t *testing.T) {
			g, rest, err := ParseGroup([]byte(tc.Stream), ColdCtB64)
			if err != nil {
				t.Fatalf("ParseGroup: %v", err)
			}
			if len(rest) != 0 {
				t.Fatalf("remainder %d bytes", len(rest))
			}
			if g.Code() != tc.Code {
				t.Fatalf("code %s, want %s", g.Code(), tc.Code)
			}
			if g.Count() != tc.Count {
				t.Fatalf("count %d, want %d", g.Count(), tc.Count)
			}
			q, err := g.QB64()
			if err != nil {
				t.Fatalf("QB64: %v", err)
			}
			if q != tc.Stream {
				t.Fatalf("re-rendered stream differs from the vector")
			}

			// The same vector must survive the binary domain.
			b2, err := g.QB2()
			if err != nil {
				t.Fatalf("QB2: %v", err)
			}
			fromBin, rest, err := ParseGroup(b2, ColdCtOpB2)
			if err != nil || len(rest) != 0 {
				t.Fatalf("binary ParseGroup: %v (remainder %d)", err, len(rest))
			}
			bq, err := fromBin.QB64()
			if err != nil {
				t.Fatalf("QB64: %v", err)
			}
			if bq != tc.Stream {
				t.Fatalf("binary round trip differs from the vector")
			}
		})
	}
}

func TestGroupVectorsInvalid(t *testing.T) {
	for _, tc := range loadGroupVectors(t).Invalid {
		t.Run(tc.Name, func(t *testing.T) {
			_, _, err := ParseGroup([]byte(tc.Stream), ColdCtB64)
			if err == nil {
				t.Fatalf("expected failure")
			}
			if !IsKind(err, Kind(tc.Kind)) {
				t.Fatalf("kind %v, want %s", err, tc.Kind)
			}
		})
	}
}
