// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package naming builds deterministic backup child names and the tag list
// propagated from a parent resource to the child a backup operation
// creates, per spec §4.5.
package naming

import (
	"crypto/rand"
	"strings"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/cycle"
	"github.com/sqlxpert/lights-off-aws/internal/pkg/restag"
)

// DefaultPrefix is the fixed prefix every child name begins with.
const DefaultPrefix = "zsched"

// suffixAlphabet excludes characters that are easy to misread: 0, o, 1, l, i.
const suffixAlphabet = "23456789abcdefghjkmnpqrstuvwxyz"

// DefaultSuffixLen is the default length of the random name suffix.
const DefaultSuffixLen = 5

// RandomSuffix draws a suffix of n characters from the unambiguous alphabet.
func RandomSuffix(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = suffixAlphabet[int(b)%len(suffixAlphabet)]
	}
	return string(out), nil
}

// ChildNameOptions configures BuildChildName.
type ChildNameOptions struct {
	Prefix      string // defaults to DefaultPrefix
	SuffixLen   int    // defaults to DefaultSuffixLen
	MaxLen      int    // 0 means unbounded; enforces a destination service's length cap
	InvalidChar func(r rune) bool
}

// BuildChildName composes the fixed prefix, the parent name or identifier
// (with forbidden characters replaced by X), the cycle instant in compact
// UTC form, and a random suffix, hyphen-separated. When MaxLen is set and
// the composed name would exceed it, only the parent segment is truncated;
// the prefix, cycle-time, and suffix segments are always kept intact.
func BuildChildName(parent string, at cycle.Instant, opts ChildNameOptions) (string, error) {
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	suffixLen := opts.SuffixLen
	if suffixLen == 0 {
		suffixLen = DefaultSuffixLen
	}
	suffix, err := RandomSuffix(suffixLen)
	if err != nil {
		return "", err
	}

	sanitized := sanitize(parent, opts.InvalidChar)
	cycleStr := at.Compact()

	if opts.MaxLen > 0 {
		fixed := len(prefix) + len(cycleStr) + len(suffix) + 3 // three hyphens
		budget := opts.MaxLen - fixed
		if budget < 0 {
			budget = 0
		}
		if len(sanitized) > budget {
			sanitized = sanitized[:budget]
		}
	}

	return strings.Join([]string{prefix, sanitized, cycleStr, suffix}, "-"), nil
}

func sanitize(s string, invalid func(rune) bool) string {
	if invalid == nil {
		invalid = defaultInvalidChar
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if invalid(r) {
			b.WriteByte('X')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// defaultInvalidChar allows alphanumerics, hyphen, and underscore: the
// conservative intersection of the naming rules of the resource types this
// system backs up (AMI names, DB/cluster snapshot identifiers).
func defaultInvalidChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return false
	case r >= 'A' && r <= 'Z':
		return false
	case r >= '0' && r <= '9':
		return false
	case r == '-' || r == '_':
		return false
	default:
		return true
	}
}

// Fixed child tag keys, reserved regardless of CopyTags.
const (
	TagKeyName        = "Name"
	TagKeyParentName  = "sched-parent-name"
	TagKeyParentID    = "sched-parent-id"
	TagKeyOp          = "sched-op"
	TagKeyCycleStart  = "sched-cycle-start"
	TagKeyCycleTimeISO = "sched-time"
)

// ChildTagsOptions configures BuildChildTags.
type ChildTagsOptions struct {
	ChildName    string
	ParentName   string
	ParentID     string
	// Op is the full reserved tag key for the triggering operation, e.g.
	// "sched-backup", not the bare operation name: it becomes the
	// sched-op tag's value verbatim.
	Op           string
	CycleStart   cycle.Instant
	ParentTags   []restag.Tag
	CopyTags     bool
	IncludeISOTime bool // set for backup-service intermediaries that otherwise lose the cycle time, per spec §6
}

// BuildChildTags composes the fixed tag set and, when CopyTags is enabled,
// appends every parent tag whose key does not begin with the reserved
// prefix. Keys that collide with the fixed set are skipped: the fixed
// value always wins.
func BuildChildTags(opts ChildTagsOptions) []restag.Tag {
	fixed := []restag.Tag{
		{Key: TagKeyName, Value: opts.ChildName},
		{Key: TagKeyParentName, Value: opts.ParentName},
		{Key: TagKeyParentID, Value: opts.ParentID},
		{Key: TagKeyOp, Value: opts.Op},
		{Key: TagKeyCycleStart, Value: opts.CycleStart.String()},
	}
	if opts.IncludeISOTime {
		fixed = append(fixed, restag.Tag{Key: TagKeyCycleTimeISO, Value: opts.CycleStart.String()})
	}

	reserved := make(map[string]bool, len(fixed))
	for _, t := range fixed {
		reserved[t.Key] = true
	}

	out := make([]restag.Tag, len(fixed))
	copy(out, fixed)

	if !opts.CopyTags {
		return out
	}
	for _, t := range opts.ParentTags {
		if restag.IsReserved(t.Key) || reserved[t.Key] {
			continue
		}
		out = append(out, t)
	}
	return out
}
