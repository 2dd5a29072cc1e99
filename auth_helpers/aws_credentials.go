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

// Package auth_helpers resolves AWS credentials and regions out of a
// referenced AWS connection record.
package auth_helpers

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"mysqlhook/connection"
	"mysqlhook/region_util"
)

// GetAwsCredentialsProvider builds a credentials provider from the AWS
// connection record: login/password hold a static access key pair. A record
// without a login, or no record at all, falls back to the default chain.
func GetAwsCredentialsProvider(ctx context.Context, awsRecord *connection.Record) (aws.CredentialsProvider, error) {
	if awsRecord != nil && awsRecord.Login != "" {
		return credentials.NewStaticCredentialsProvider(awsRecord.Login, awsRecord.Password, ""), nil
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return cfg.Credentials, nil
}

// GetAwsRegion resolves the region from the record's region_name extra
// entry, falling back to the database host name.
func GetAwsRegion(host string, awsRecord *connection.Record) (region_util.Region, error) {
	explicit := ""
	if awsRecord != nil {
		extra, err := awsRecord.ExtraOptions()
		if err != nil {
			return "", err
		}
		explicit = extra.RegionName
	}
	return region_util.GetRegion(host, explicit), nil
}
