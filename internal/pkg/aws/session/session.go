// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package session provides functions that return AWS sessions to use in
// the AWS SDK. The Finder and Doer each run as a single-role process (a
// Lambda function or an equivalent long-lived worker), so unlike a CLI
// this package has no profile or assumed-role switching: it always
// resolves credentials from the ambient execution environment.
package session

import (
	"fmt"
	"runtime"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
)

const userAgentHeader = "User-Agent"

// userAgentVersion is stamped into every request's User-Agent header, for
// correlating API calls with the scheduler build in provider-side logs.
var userAgentVersion = "dev"

// userAgentHandler returns an HTTP request handler that sets a custom user agent on all AWS requests.
func userAgentHandler() request.NamedHandler {
	return request.NamedHandler{
		Name: "UserAgentHandler",
		Fn: func(r *request.Request) {
			userAgent := r.HTTPRequest.Header.Get(userAgentHeader)
			r.HTTPRequest.Header.Set(userAgentHeader,
				fmt.Sprintf("lights-off-aws/%s (%s) %s", userAgentVersion, runtime.GOOS, userAgent))
		},
	}
}

// Provider holds methods to create sessions.
type Provider struct{}

// Default returns a session configured against the ambient credential
// chain (execution-role credentials when running as a Lambda function).
func (p *Provider) Default() (*session.Session, error) {
	sess, err := session.NewSessionWithOptions(session.Options{
		Config: aws.Config{
			CredentialsChainVerboseErrors: aws.Bool(true),
		},
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, err
	}
	sess.Handlers.Build.PushBackNamed(userAgentHandler())
	return sess, err
}

// DefaultWithRegion returns a session configured against the ambient
// credential chain and the input region.
func (p *Provider) DefaultWithRegion(region string) (*session.Session, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(region),
	})
	if err != nil {
		return nil, err
	}
	sess.Handlers.Build.PushBackNamed(userAgentHandler())
	return sess, err
}
