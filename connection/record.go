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

// Package connection holds the stored connection model: an immutable record
// with named fields plus a free-form JSON extra bag, and a registry that
// resolves records by connection id.
package connection

import "mysqlhook/property_util"

// Record is one stored connection. It is owned by the registry and treated
// as immutable input by every resolver.
type Record struct {
	ConnID   string
	ConnType string
	Login    string
	Password string
	Host     string
	Schema   string
	// Port is zero when the record does not set one; resolution substitutes
	// the dialect default.
	Port  int
	Extra string
}

// PortOrDefault returns the record port, or 3306 when unset.
func (r *Record) PortOrDefault() int {
	if r.Port == 0 {
		return property_util.DEFAULT_PORT
	}
	return r.Port
}

// ExtraOptions parses and validates the record's extra bag once.
func (r *Record) ExtraOptions() (*ExtraOptions, error) {
	return ParseExtra(r.Extra)
}
