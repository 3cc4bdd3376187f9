// SPDX-License-Identifier: EPL-2.0

// Package metadata parses the free-form metadata option into file tags.
//
// The text is read as data, never evaluated. Anything other than a flat
// mapping of scalar values fails with ErrInvalid:
//
//	tags, err := metadata.Parse(`{"title": "Take 3", "year": 2024}`)
//	if errors.Is(err, metadata.ErrInvalid) {
//	    // log and skip tagging
//	}
package metadata
