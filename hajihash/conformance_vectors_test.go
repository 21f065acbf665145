package hajihash

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
)

type conformanceVector struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Input     string `json:"input"`
	Digest    string `json:"digest"`
	CheckWord string `json:"check_word"`
	CID       string `json:"cid"`
}

type conformanceFile struct {
	CanonVersion string              `json:"canon_version"`
	Vectors      []conformanceVector `json:"vectors"`
}

func loadConformanceVectors(t *testing.T) conformanceFile {
	t.Helper()
	path := filepath.Join("..", "testdata", "conformance", "hajihash-1", "vectors.json")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read vectors: %v", err)
	}
	var f conformanceFile
	if err := json.Unmarshal(b, &f); err != nil {
		t.Fatalf("decode vectors: %v", err)
	}
	if len(f.Vectors) == 0 {
		t.Fatalf("no vectors")
	}
	return f
}

func vectorMessage(t *testing.T, v conformanceVector) any {
	t.Helper()
	switch v.Kind {
	case "string":
		return v.Input
	case "bytes":
		b, err := hex.DecodeString(v.Input)
		if err != nil {
			t.Fatalf("%s: bad hex input: %v", v.Name, err)
		}
		return b
	case "json":
		var decoded any
		if err := json.Unmarshal([]byte(v.Input), &decoded); err != nil {
			t.Fatalf("%s: bad json input: %v", v.Name, err)
		}
		return decoded
	default:
		t.Fatalf("%s: unknown kind %q", v.Name, v.Kind)
		return nil
	}
}

func TestConformanceVectors_DigestCheckWordCID(t *testing.T) {
	f := loadConformanceVectors(t)
	if f.CanonVersion != CanonVersion {
		t.Fatalf("vectors target %s, library implements %s", f.CanonVersion, CanonVersion)
	}
	for _, v := range f.Vectors {
		msg := vectorMessage(t, v)

		d, err := Digest(msg)
		if err != nil {
			t.Fatalf("%s: Digest: %v", v.Name, err)
		}
		if d.String() != v.Digest {
			t.Fatalf("%s: digest mismatch: got %s want %s", v.Name, d, v.Digest)
		}

		w, err := CheckWord(msg)
		if err != nil {
			t.Fatalf("%s: CheckWord: %v", v.Name, err)
		}
		if w.String() != v.CheckWord {
			t.Fatalf("%s: check word mismatch: got %s want %s", v.Name, w, v.CheckWord)
		}

		c, err := d.CID()
		if err != nil {
			t.Fatalf("%s: CID: %v", v.Name, err)
		}
		if c != v.CID {
			t.Fatalf("%s: CID mismatch: got %s want %s", v.Name, c, v.CID)
		}

		if !VerifyDigest(msg, d) || !VerifyCheckWord(msg, w) {
			t.Fatalf("%s: expected verification to succeed", v.Name)
		}
	}
}
