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

package region_util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRegionFromHost(t *testing.T) {
	assert.Equal(t, Region("us-east-1"), GetRegionFromHost("mydb.cluster-xyz.us-east-1.rds.amazonaws.com"))
	assert.Equal(t, Region("eu-west-2"), GetRegionFromHost("instance.abc123.eu-west-2.rds.amazonaws.com."))
	assert.Equal(t, Region(""), GetRegionFromHost("localhost"))
	assert.Equal(t, Region(""), GetRegionFromHost("mydb.example.com"))
}

func TestGetRegionFromRegionString(t *testing.T) {
	assert.Equal(t, Region("us-east-1"), GetRegionFromRegionString("us-east-1"))
	assert.Equal(t, Region("us-gov-west-1"), GetRegionFromRegionString(" US-GOV-WEST-1 "))
	assert.Equal(t, Region(""), GetRegionFromRegionString("not-a-region"))
	assert.Equal(t, Region(""), GetRegionFromRegionString(""))
}

func TestGetRegionExplicitWins(t *testing.T) {
	region := GetRegion("mydb.cluster-xyz.us-east-1.rds.amazonaws.com", "eu-central-1")
	assert.Equal(t, Region("eu-central-1"), region)
}

func TestGetRegionFallsBackToHost(t *testing.T) {
	region := GetRegion("mydb.cluster-xyz.us-east-1.rds.amazonaws.com", "")
	assert.Equal(t, Region("us-east-1"), region)
}

func TestGetRegionFromArn(t *testing.T) {
	assert.Equal(t, Region("us-east-2"),
		GetRegionFromArn("arn:aws:secretsmanager:us-east-2:123456789012:secret:mysecret"))
	assert.Equal(t, Region(""), GetRegionFromArn("prod/mysql"))
	assert.Equal(t, Region(""), GetRegionFromArn(""))
}
