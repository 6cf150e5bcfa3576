// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

// Package serializer provides utilities for reading and writing snapshot and
// report documents in various formats.
//
// The package supports three output formats:
//   - JSON: machine-readable structured data with indentation
//   - YAML: human-readable configuration format
//   - Table: human-readable tabular output with flattened keys
//
// Usage:
//
//	writer := serializer.NewStdoutWriter(serializer.FormatJSON)
//	defer writer.Close()
//	if err := writer.Serialize(ctx, report); err != nil {
//	    return err
//	}
package serializer

import "context"

// Serializer is an interface for serializing document data. Implementations
// can serialize data to various formats such as JSON, YAML, or tables.
//
// The context parameter is provided for cancellation consistency across
// implementations that may perform slower I/O.
type Serializer interface {
	Serialize(ctx context.Context, doc any) error
}

// Closer is an optional interface that Serializers can implement
// if they need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
