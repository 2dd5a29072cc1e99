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

package hook

import (
	"context"
	"log/slog"
	"strconv"

	"mysqlhook/connection"
	"mysqlhook/dialect"
	"mysqlhook/error_util"
	"mysqlhook/property_util"
)

// ResolveNativeParams maps the hook's connection record and its extra bag
// into native driver parameters. Resolution is pure apart from the optional
// IAM token fetch and Secrets Manager lookup, both explicit external calls.
// Each conditional addition is independent of the others.
func (h *MySqlHook) ResolveNativeParams(ctx context.Context) (map[string]string, error) {
	record, err := h.resolveRecord()
	if err != nil {
		return nil, err
	}
	extra, err := record.ExtraOptions()
	if err != nil {
		return nil, err
	}
	return h.resolveNativeParams(ctx, record, extra)
}

func (h *MySqlHook) resolveNativeParams(ctx context.Context, record *connection.Record, extra *connection.ExtraOptions) (map[string]string, error) {
	login, password := record.Login, record.Password
	if extra.SecretID != "" {
		awsRecord, err := h.resolveAwsRecord(extra.AwsConnID)
		if err != nil {
			return nil, err
		}
		secret, err := h.Secrets.GetDbSecret(ctx, extra.SecretID, record.Host, awsRecord)
		if err != nil {
			return nil, err
		}
		login, password = secret.Username, secret.Password
	}

	props := map[string]string{}
	property_util.USER.Set(props, login)
	property_util.PASSWORD.Set(props, password)
	property_util.HOST.Set(props, record.Host)
	property_util.DATABASE.Set(props, h.schema(record))
	property_util.PORT.Set(props, strconv.Itoa(record.PortOrDefault()))

	if extra.Charset != "" {
		property_util.CHARSET.Set(props, extra.Charset)
		property_util.USE_UNICODE.Set(props, "true")
	}
	if extra.Cursor != "" {
		strategy, err := dialect.ParseCursorStrategy(extra.Cursor)
		if err != nil {
			return nil, err
		}
		property_util.CURSOR_CLASS.Set(props, strategy.String())
	}
	if h.LocalInfile {
		property_util.LOCAL_INFILE.Set(props, "1")
	}
	if extra.UnixSocket != "" {
		property_util.UNIX_SOCKET.Set(props, extra.UnixSocket)
	}
	if !extra.SSL.IsZero() {
		if extra.SSL.CA != "" {
			property_util.SSL_CA.Set(props, extra.SSL.CA)
		}
		if extra.SSL.Cert != "" {
			property_util.SSL_CERT.Set(props, extra.SSL.Cert)
		}
		if extra.SSL.Key != "" {
			property_util.SSL_KEY.Set(props, extra.SSL.Key)
		}
	}
	if extra.SSLMode != "" {
		property_util.SSL_MODE.Set(props, extra.SSLMode)
	}
	if extra.IAM {
		awsRecord, err := h.resolveAwsRecord(extra.AwsConnID)
		if err != nil {
			return nil, err
		}
		token, err := h.TokenUtility.GenerateAuthenticationToken(ctx, login, record.Host, record.PortOrDefault(), awsRecord)
		if err != nil {
			return nil, err
		}
		property_util.PASSWORD.Set(props, token)
		property_util.ALLOW_CLEARTEXT_PASSWORD.Set(props, "true")
		slog.Debug(error_util.GetMessage("MySqlHook.iamTokenSubstituted"))
	}
	if h.InitCommand != "" {
		property_util.INIT_COMMAND.Set(props, h.InitCommand)
	}

	return props, nil
}

// resolveAwsRecord looks up the referenced AWS connection record. A missing
// default record is not an error: the SDK default credential chain applies.
func (h *MySqlHook) resolveAwsRecord(awsConnID string) (*connection.Record, error) {
	explicit := awsConnID != ""
	if !explicit {
		awsConnID = connection.DEFAULT_AWS_CONN_ID
	}
	record, err := h.registry().Resolve(awsConnID)
	if err != nil {
		if !explicit {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}
