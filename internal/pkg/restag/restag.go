// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package restag is the common tag shape shared by every provider client,
// the queue message contract, and the child-tag builder. Provider tag-list
// key conventions (the SDK's "Key"/"Value" struct, a plain map, ...) are
// translated into this shape once, at the catalog boundary.
package restag

import "strings"

// ReservedPrefix is the prefix every operation tag key begins with.
const ReservedPrefix = "sched-"

// Tag is a single resource tag, in provider-agnostic form.
type Tag struct {
	Key   string `json:"Key"`
	Value string `json:"Value"`
}

// IsReserved reports whether a tag key is one the scheduler owns.
func IsReserved(key string) bool {
	return strings.HasPrefix(key, ReservedPrefix)
}

// Get returns the value of the first tag with the given key.
func Get(tags []Tag, key string) (string, bool) {
	for _, t := range tags {
		if t.Key == key {
			return t.Value, true
		}
	}
	return "", false
}

// Map flattens a tag list into a map, last write wins on duplicate keys.
func Map(tags []Tag) map[string]string {
	m := make(map[string]string, len(tags))
	for _, t := range tags {
		m[t.Key] = t.Value
	}
	return m
}
