// Copyright (c) 2026 Marc Allgeier (fidpa)
// SPDX-License-Identifier: MIT

package snapshot

import (
	"log/slog"

	"github.com/mitchellh/mapstructure"

	"github.com/fidpa/rebootcheck/pkg/errors"
	"github.com/fidpa/rebootcheck/pkg/serializer"
)

// Parse decodes a loose snapshot document into its typed view. Decoding is
// weakly typed: scalar mismatches that can be converted (e.g. "90" for a
// numeric disk percentage) are converted, and unknown keys are ignored.
//
// Individual malformed sub-fields do not fail the parse; they are logged and
// left at their zero value so that only the affected sub-check degrades.
func Parse(raw map[string]any) (*Snapshot, error) {
	if raw == nil {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "snapshot document is empty")
	}

	var snap Snapshot
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &snap,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, "failed to build snapshot decoder", err)
	}

	if err := decoder.Decode(raw); err != nil {
		// Partial decodes are usable: the failed fields stay at their zero
		// value and resolve through the documented per-field defaults.
		slog.Warn("snapshot document decoded with field errors", "error", err)
	}

	return &snap, nil
}

// Load reads a snapshot document from a JSON or YAML file and decodes it
// into its typed view. A file that cannot be read or deserialized is a fatal
// collaborator failure; the comparison run must not start without both
// documents.
func Load(path string) (*Snapshot, error) {
	raw, err := serializer.FromFile[map[string]any](path)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeNotFound, "failed to load snapshot", err,
			map[string]any{"path": path})
	}

	snap, err := Parse(*raw)
	if err != nil {
		return nil, errors.WrapWithContext(errors.ErrCodeInvalidRequest, "failed to parse snapshot", err,
			map[string]any{"path": path})
	}

	slog.Debug("loaded snapshot",
		"path", path,
		"type", snap.Type,
		"timestamp", snap.Timestamp)

	return snap, nil
}
