// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package awsclassify turns an AWS SDK error into an opresult.Kind,
// shared across every provider client's Invoke closure so the
// transient/permanent/benign split in spec §9 is made in one place
// instead of once per catalog entry.
package awsclassify

import (
	"errors"
	"strings"

	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"

	"github.com/sqlxpert/lights-off-aws/internal/pkg/opresult"
)

// benignSubstrings are messages that indicate the resource is already in
// the desired state: the operation is a no-op, not a failure.
var benignSubstrings = []string{
	"already running",
	"already stopped",
	"is not in a state",
	"InvalidInstanceState",
	"already in progress",
}

// permanentCodes are AWS error codes that will never succeed on retry.
var permanentCodes = map[string]bool{
	"AccessDenied":                    true,
	"UnauthorizedOperation":           true,
	"ValidationError":                 true,
	"InvalidParameterValue":           true,
	"InvalidParameterCombination":     true,
	"UnsupportedHibernationConfiguration": true,
	"InvalidVolume.NotFound":          true,
	"InvalidInstanceID.NotFound":      true,
	"DBInstanceNotFound":              true,
	"DBClusterNotFoundFault":          true,
}

// Classify inspects err and reports which of opresult's outcomes it
// represents. Errors the SDK itself marks as throttling (request.IsErrorThrottle),
// and any code not explicitly known as permanent, default to Transient:
// spec §9 prefers a redundant retry over a silently dropped operation.
func Classify(err error) opresult.Kind {
	if err == nil {
		return opresult.Ok
	}
	msg := err.Error()
	for _, s := range benignSubstrings {
		if strings.Contains(msg, s) {
			return opresult.Benign
		}
	}
	var aerr awserr.Error
	if errors.As(err, &aerr) {
		if permanentCodes[aerr.Code()] {
			return opresult.Permanent
		}
		if request.IsErrorThrottle(aerr) {
			return opresult.Transient
		}
	}
	return opresult.Transient
}
