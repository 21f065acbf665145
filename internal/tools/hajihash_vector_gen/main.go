package main

import (
	"encoding/hex"
	"fmt"
	"os"

	json "github.com/goccy/go-json"

	"xdao.co/hajihash/hajihash"
)

type vector struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Input     string `json:"input"`
	Digest    string `json:"digest"`
	CheckWord string `json:"check_word"`
	CID       string `json:"cid"`
}

type vectorFile struct {
	CanonVersion string   `json:"canon_version"`
	Vectors      []vector `json:"vectors"`
}

func mustVector(name, kind, input string, message any) vector {
	d, err := hajihash.Digest(message)
	if err != nil {
		panic(err)
	}
	c, err := d.CID()
	if err != nil {
		panic(err)
	}
	return vector{
		Name:      name,
		Kind:      kind,
		Input:     input,
		Digest:    d.String(),
		CheckWord: d.CheckWord().String(),
		CID:       c,
	}
}

func mustJSON(text string) any {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		panic(err)
	}
	return v
}

func main() {
	raw := []byte{0xff, 0x00, 0x10}
	composite := `{"b":["<a&b>"],"a":1}`
	out := vectorFile{
		CanonVersion: hajihash.CanonVersion,
		Vectors: []vector{
			mustVector("apple", "string", "apple", "apple"),
			mustVector("banana", "string", "banana", "banana"),
			mustVector("empty", "string", "", ""),
			mustVector("unicode", "string", "héllo", "héllo"),
			mustVector("html", "string", "<a&b>", "<a&b>"),
			mustVector("raw_bytes", "bytes", hex.EncodeToString(raw), raw),
			mustVector("html_composite", "json", composite, mustJSON(composite)),
		},
	}
	b, err := json.MarshalIndentWithOption(out, "", "  ", json.DisableHTMLEscape())
	if err != nil {
		panic(err)
	}
	if _, err := fmt.Fprintf(os.Stdout, "%s\n", b); err != nil {
		panic(err)
	}
}
