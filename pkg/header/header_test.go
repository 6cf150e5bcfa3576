// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package header

import (
	"testing"
)

func TestInitSnapshot(t *testing.T) {
	h := &Header{}
	h.Init(KindSnapshot, "rebootcheck/v1", "v1.2.3")

	if h.Kind != KindSnapshot {
		t.Errorf("expected kind %q, got %q", KindSnapshot, h.Kind)
	}
	if h.APIVersion != "rebootcheck/v1" {
		t.Errorf("unexpected apiVersion %q", h.APIVersion)
	}
	if h.Metadata["version"] != "v1.2.3" {
		t.Errorf("expected unprefixed version key for snapshots, got %v", h.Metadata)
	}
	if h.Metadata["timestamp"] == "" {
		t.Error("expected timestamp metadata")
	}
	if h.Metadata["id"] == "" {
		t.Error("expected generated id metadata")
	}
}

func TestInitReportUsesPrefixedKeys(t *testing.T) {
	h := &Header{}
	h.Init(KindReport, "rebootcheck/v1", "v1.2.3")

	if h.Metadata["report-version"] != "v1.2.3" {
		t.Errorf("expected report-version key, got %v", h.Metadata)
	}
	if h.Metadata["report-timestamp"] == "" {
		t.Error("expected report-timestamp metadata")
	}
}

func TestNewWithOptions(t *testing.T) {
	h := New(
		WithKind(KindReport),
		WithAPIVersion("rebootcheck/v1"),
		WithMetadata("host", "gateway"),
	)

	if h.Kind != KindReport {
		t.Errorf("expected kind %q, got %q", KindReport, h.Kind)
	}
	if h.Metadata["host"] != "gateway" {
		t.Errorf("expected host metadata, got %v", h.Metadata)
	}
}

func TestKindIsValid(t *testing.T) {
	if !Kind(KindSnapshot).IsValid() {
		t.Error("Snapshot should be valid")
	}
	if Kind("Recipe").IsValid() {
		t.Error("unknown kind should be invalid")
	}
}
