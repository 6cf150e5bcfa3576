// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package serializer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

type testDoc struct {
	Name  string         `json:"name" yaml:"name"`
	Count int            `json:"count" yaml:"count"`
	Tags  map[string]int `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func TestWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatJSON, &buf)

	if err := w.Serialize(t.Context(), testDoc{Name: "gateway", Count: 3}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	var got testDoc
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got.Name != "gateway" || got.Count != 3 {
		t.Errorf("round-trip mismatch: %+v", got)
	}
}

func TestWriterYAML(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatYAML, &buf)

	if err := w.Serialize(t.Context(), testDoc{Name: "gateway", Count: 3}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.Contains(buf.String(), "name: gateway") {
		t.Errorf("unexpected YAML output: %s", buf.String())
	}
}

func TestWriterTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(FormatTable, &buf)

	if err := w.Serialize(t.Context(), testDoc{Name: "gateway", Count: 3, Tags: map[string]int{"a": 1}}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "FIELD") || !strings.Contains(out, "Name") {
		t.Errorf("unexpected table output: %s", out)
	}
	if !strings.Contains(out, "Tags.a") {
		t.Errorf("expected flattened map key, got: %s", out)
	}
}

func TestNewWriterDefaultsUnknownFormatToJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(Format("xml"), &buf)

	if err := w.Serialize(t.Context(), testDoc{Name: "x"}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("expected JSON fallback, got: %s", buf.String())
	}
}

func TestWriterCloseIdempotent(t *testing.T) {
	w := NewStdoutWriter(FormatJSON)
	if err := w.Close(); err != nil {
		t.Errorf("first close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}
