// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package cycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFloor(t *testing.T) {
	in := time.Date(2031, 7, 4, 14, 7, 33, 42, time.UTC)
	want := time.Date(2031, 7, 4, 14, 0, 0, 0, time.UTC)
	require.Equal(t, want, Floor(in))
}

func TestFloor_AlreadyAligned(t *testing.T) {
	in := time.Date(2031, 7, 4, 14, 10, 0, 0, time.UTC)
	require.Equal(t, in, Floor(in))
}

func TestInstant_StringAndCompact(t *testing.T) {
	i := FromTime(time.Date(2031, 7, 4, 14, 0, 0, 0, time.UTC))
	require.Equal(t, "2031-07-04T14:00:00Z", i.String())
	require.Equal(t, "20310704T1400Z", i.Compact())
}

func TestInstant_Tuple(t *testing.T) {
	// 2031-07-04 is a Friday.
	i := FromTime(time.Date(2031, 7, 4, 14, 0, 0, 0, time.UTC))
	tuple := i.Tuple()
	require.Equal(t, 4, tuple.Day)
	require.Equal(t, 5, tuple.Weekday)
	require.Equal(t, 14, tuple.Hour)
	require.Equal(t, 0, tuple.Minute)
}

func TestInstant_TupleSunday(t *testing.T) {
	// 2031-07-06 is a Sunday; ISO weekday is 7.
	i := FromTime(time.Date(2031, 7, 6, 0, 0, 0, 0, time.UTC))
	require.Equal(t, 7, i.Tuple().Weekday)
}

func TestParseInstant_RoundTrip(t *testing.T) {
	i := FromTime(time.Date(2031, 7, 4, 14, 0, 0, 0, time.UTC))
	parsed, err := ParseInstant(i.String())
	require.NoError(t, err)
	require.Equal(t, i, parsed)
}

func TestExpired(t *testing.T) {
	i := FromTime(time.Date(2031, 7, 4, 14, 0, 0, 0, time.UTC))
	now := i.Time().Add(9*time.Minute + 30*time.Second)
	require.True(t, i.Expired(now, ExpirationThreshold))

	now2 := i.Time().Add(8 * time.Minute)
	require.False(t, i.Expired(now2, ExpirationThreshold))
}
