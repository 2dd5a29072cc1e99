/*
  Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.

  Licensed under the Apache License, Version 2.0 (the "License").
  You may not use this file except in compliance with the License.
  You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

  Unless required by applicable law or agreed to in writing, software
  distributed under the License is distributed on an "AS IS" BASIS,
  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
  See the License for the specific language governing permissions and
  limitations under the License.
*/

// Package iam generates short-lived RDS IAM authentication tokens that
// substitute the stored password at connect time.
package iam

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/rds/auth"

	"mysqlhook/auth_helpers"
	"mysqlhook/connection"
	"mysqlhook/error_util"
)

// BuildAuthTokenFunc matches auth.BuildAuthToken from the AWS SDK.
type BuildAuthTokenFunc func(
	ctx context.Context,
	endpoint string,
	region string,
	dbUser string,
	creds aws.CredentialsProvider,
	optFns ...func(options *auth.BuildAuthTokenOptions)) (string, error)

// TokenUtility is the external "generate auth token" collaborator. The
// token fetch is a single-shot call: transient token-service failures are
// not retried at this layer.
type TokenUtility interface {
	GenerateAuthenticationToken(ctx context.Context, user string, host string, port int, awsRecord *connection.Record) (string, error)
}

type RegularTokenUtility struct {
	buildAuthToken BuildAuthTokenFunc
}

func NewRegularTokenUtility() *RegularTokenUtility {
	return &RegularTokenUtility{buildAuthToken: auth.BuildAuthToken}
}

// SetBuildAuthTokenFunc replaces the SDK call. Test use only.
func (u *RegularTokenUtility) SetBuildAuthTokenFunc(f BuildAuthTokenFunc) {
	u.buildAuthToken = f
}

func (u *RegularTokenUtility) GenerateAuthenticationToken(
	ctx context.Context,
	user string,
	host string,
	port int,
	awsRecord *connection.Record) (string, error) {
	region, err := auth_helpers.GetAwsRegion(host, awsRecord)
	if err != nil {
		return "", err
	}
	if region == "" {
		return "", error_util.NewInvalidConfigurationError(error_util.GetMessage("IamTokenUtility.unableToDetermineRegion", host))
	}

	awsCredentialsProvider, err := auth_helpers.GetAwsCredentialsProvider(ctx, awsRecord)
	if err != nil {
		connID := ""
		if awsRecord != nil {
			connID = awsRecord.ConnID
		}
		return "", error_util.NewCredentialsError(error_util.GetMessage("IamTokenUtility.errorGettingAwsCredentials", connID, err), err)
	}

	token, err := u.buildAuthToken(ctx, host+":"+strconv.Itoa(port), string(region), user, awsCredentialsProvider)
	if err != nil {
		slog.Debug(error_util.GetMessage("IamTokenUtility.errorGeneratingNewToken", err))
		return "", error_util.NewCredentialsError(error_util.GetMessage("IamTokenUtility.errorGeneratingNewToken", err), err)
	}
	slog.Debug(error_util.GetMessage("IamTokenUtility.generatedNewToken"))
	return token, nil
}
