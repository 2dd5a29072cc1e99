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

package connection

import (
	"bytes"
	"encoding/json"
	"strings"

	"mysqlhook/error_util"
)

// SSLOptions holds paths of the PEM files used for a TLS connection.
type SSLOptions struct {
	Cert string `json:"cert"`
	CA   string `json:"ca"`
	Key  string `json:"key"`
}

func (s SSLOptions) IsZero() bool {
	return s == SSLOptions{}
}

// ExtraOptions is the validated form of a record's extra bag. Recognized
// keys become typed fields; every key except 'client' is additionally kept
// in Query, verbatim, for URI query-string construction.
type ExtraOptions struct {
	Charset    string
	Cursor     string
	UnixSocket string
	SSL        SSLOptions
	SSLMode    string
	Client     string
	IAM        bool
	AwsConnID  string
	SecretID   string
	RegionName string
	Query      map[string]string
}

// ParseExtra validates the JSON extra bag once, up front. An empty extra is
// valid and yields zero options.
func ParseExtra(extra string) (*ExtraOptions, error) {
	opts := &ExtraOptions{Query: map[string]string{}}
	if strings.TrimSpace(extra) == "" {
		return opts, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(extra), &raw); err != nil {
		return nil, error_util.NewInvalidConfigurationError(error_util.GetMessage("ExtraOptions.malformedExtra", err)).Wrap(err)
	}

	var err error
	for key, value := range raw {
		switch key {
		case "charset":
			err = json.Unmarshal(value, &opts.Charset)
		case "cursor":
			err = json.Unmarshal(value, &opts.Cursor)
		case "unix_socket":
			err = json.Unmarshal(value, &opts.UnixSocket)
		case "ssl":
			if err = parseSSL(value, &opts.SSL); err != nil {
				return nil, error_util.NewInvalidConfigurationError(error_util.GetMessage("ExtraOptions.malformedSslExtra", err)).Wrap(err)
			}
		case "ssl_mode":
			err = json.Unmarshal(value, &opts.SSLMode)
		case "client":
			err = json.Unmarshal(value, &opts.Client)
		case "iam":
			err = json.Unmarshal(value, &opts.IAM)
		case "aws_conn_id":
			err = json.Unmarshal(value, &opts.AwsConnID)
		case "secrets_manager_secret_id":
			err = json.Unmarshal(value, &opts.SecretID)
		case "region_name":
			err = json.Unmarshal(value, &opts.RegionName)
		}
		if err != nil {
			return nil, error_util.NewInvalidConfigurationError(error_util.GetMessage("ExtraOptions.malformedExtra", err)).Wrap(err)
		}
		if key != "client" {
			opts.Query[key] = renderQueryValue(value)
		}
	}
	return opts, nil
}

// parseSSL accepts either a JSON object or a JSON-string-encoded object.
func parseSSL(value json.RawMessage, out *SSLOptions) error {
	trimmed := strings.TrimSpace(string(value))
	if strings.HasPrefix(trimmed, "\"") {
		var encoded string
		if err := json.Unmarshal(value, &encoded); err != nil {
			return err
		}
		return json.Unmarshal([]byte(encoded), out)
	}
	return json.Unmarshal(value, out)
}

// renderQueryValue flattens a raw extra value into the text used as a URI
// query parameter. Strings are used as-is; everything else keeps its
// compact JSON encoding.
func renderQueryValue(value json.RawMessage) string {
	var s string
	if err := json.Unmarshal(value, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, value); err != nil {
		return string(value)
	}
	return buf.String()
}
