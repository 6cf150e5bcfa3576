// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

// Package header provides the common metadata header embedded in snapshot
// and report documents.
package header

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	KindSnapshot = "Snapshot"
	KindReport   = "Report"
)

// Kind represents the type of a rebootcheck document.
type Kind string

// String returns the string representation of the Kind.
func (k Kind) String() string {
	return string(k)
}

// IsValid checks if the Kind is one of the recognized kinds.
func (k Kind) IsValid() bool {
	switch k {
	case KindSnapshot, KindReport:
		return true
	default:
		return false
	}
}

// Header contains metadata and versioning information for rebootcheck
// documents. It follows Kubernetes-style resource conventions with Kind,
// APIVersion, and Metadata fields.
type Header struct {
	// Kind is the type of the document.
	Kind Kind `json:"kind,omitempty" yaml:"kind,omitempty" mapstructure:"kind"`

	// APIVersion is the schema version of the document.
	APIVersion string `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty" mapstructure:"apiVersion"`

	// Metadata contains key-value pairs with metadata about the document.
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty" mapstructure:"metadata"`
}

// Option is a functional option for configuring Header instances.
type Option func(*Header)

// WithMetadata returns an Option that adds a metadata key-value pair to the
// Header. If the Metadata map is nil, it will be initialized.
func WithMetadata(key, value string) Option {
	return func(h *Header) {
		if h.Metadata == nil {
			h.Metadata = make(map[string]string)
		}
		h.Metadata[key] = value
	}
}

// WithKind returns an Option that sets the Kind field of the Header.
func WithKind(kind Kind) Option {
	return func(h *Header) {
		h.Kind = kind
	}
}

// WithAPIVersion returns an Option that sets the APIVersion field of the Header.
func WithAPIVersion(version string) Option {
	return func(h *Header) {
		h.APIVersion = version
	}
}

// New creates a new Header instance with the provided functional options.
// The Metadata map is initialized automatically.
func New(opts ...Option) *Header {
	h := &Header{
		Metadata: make(map[string]string),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Init initializes the Header with the specified kind, apiVersion, and tool
// version. It populates Metadata with a generated id, the creation timestamp,
// and the tool version. For Snapshot kind, uses unprefixed keys (timestamp,
// version). For other kinds, uses kind-prefixed keys (report-timestamp,
// report-version).
func (h *Header) Init(kind Kind, apiVersion string, version string) {
	h.Kind = kind
	h.APIVersion = apiVersion
	h.Metadata = make(map[string]string)

	timestampKey := "timestamp"
	versionKey := "version"
	if kind != KindSnapshot {
		kindStr := strings.ToLower(string(kind))
		timestampKey = fmt.Sprintf("%s-timestamp", kindStr)
		versionKey = fmt.Sprintf("%s-version", kindStr)
	}

	h.Metadata["id"] = uuid.NewString()
	h.Metadata[timestampKey] = time.Now().UTC().Format(time.RFC3339)
	if version != "" {
		h.Metadata[versionKey] = version
	}
}
