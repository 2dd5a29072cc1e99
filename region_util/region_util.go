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

// Package region_util resolves the AWS region used when generating IAM
// authentication tokens: an explicit region wins, otherwise the region is
// parsed out of an RDS hostname.
package region_util

import (
	"regexp"
	"strings"
)

type Region string

// regionPattern matches region strings such as us-east-1, eu-isoe-west-1
// and us-gov-west-1.
var regionPattern = regexp.MustCompile(`^[a-z]{2}(-[a-z]+)+-\d+$`)

// rdsHostPattern extracts the region segment of an RDS DNS name, e.g.
// mydb.cluster-xyz.us-east-1.rds.amazonaws.com.
var rdsHostPattern = regexp.MustCompile(`\.([a-z0-9-]+)\.rds\.amazonaws\.com\.?$`)

// GetRegion returns the explicit region when it is set and valid, otherwise
// the region parsed from the host. An empty result means no region could be
// determined.
func GetRegion(host string, explicitRegion string) Region {
	if region := GetRegionFromRegionString(explicitRegion); region != "" {
		return region
	}
	return GetRegionFromHost(host)
}

func GetRegionFromHost(host string) Region {
	match := rdsHostPattern.FindStringSubmatch(strings.ToLower(host))
	if match == nil {
		return ""
	}
	return GetRegionFromRegionString(match[1])
}

// arnPattern captures the region element of an ARN such as
// arn:aws:secretsmanager:us-east-2:123456789012:secret:mysecret.
var arnPattern = regexp.MustCompile(`^arn:[^:\s]*:[^:\s]*:([^:\s]+):`)

func GetRegionFromArn(arn string) Region {
	match := arnPattern.FindStringSubmatch(strings.TrimSpace(arn))
	if match == nil {
		return ""
	}
	return GetRegionFromRegionString(match[1])
}

func GetRegionFromRegionString(regionString string) Region {
	normalized := strings.ToLower(strings.TrimSpace(regionString))
	if !regionPattern.MatchString(normalized) {
		return ""
	}
	return Region(normalized)
}
