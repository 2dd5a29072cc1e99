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
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mysqlhook/connection"
	"mysqlhook/error_util"
	"mysqlhook/property_util"
	"mysqlhook/region_util"
	"mysqlhook/secrets"
)

type fakeTokenUtility struct {
	token string
	err   error

	user      string
	host      string
	port      int
	awsRecord *connection.Record
	calls     int
}

func (f *fakeTokenUtility) GenerateAuthenticationToken(
	_ context.Context, user string, host string, port int, awsRecord *connection.Record) (string, error) {
	f.user, f.host, f.port, f.awsRecord = user, host, port, awsRecord
	f.calls++
	return f.token, f.err
}

func paramsHook(record *connection.Record) *MySqlHook {
	h := NewMySqlHook()
	h.Registry = connection.NewRegistry()
	h.Record = record
	return h
}

func testRecord(extra string) *connection.Record {
	return &connection.Record{
		ConnID:   "mysql_default",
		Login:    "login",
		Password: "password",
		Host:     "host",
		Schema:   "schema",
		Extra:    extra,
	}
}

func TestResolveNativeParamsDefaults(t *testing.T) {
	h := paramsHook(testRecord(""))

	props, err := h.ResolveNativeParams(context.TODO())
	require.NoError(t, err)

	assert.Equal(t, "login", property_util.USER.Get(props))
	assert.Equal(t, "password", property_util.PASSWORD.Get(props))
	assert.Equal(t, "host", property_util.HOST.Get(props))
	assert.Equal(t, "schema", property_util.DATABASE.Get(props))
	assert.Equal(t, "3306", property_util.PORT.Get(props))
	assert.False(t, property_util.CHARSET.IsSet(props))
	assert.False(t, property_util.CURSOR_CLASS.IsSet(props))
	assert.False(t, property_util.LOCAL_INFILE.IsSet(props))
	assert.False(t, property_util.UNIX_SOCKET.IsSet(props))
	assert.False(t, property_util.INIT_COMMAND.IsSet(props))
}

func TestResolveNativeParamsPort(t *testing.T) {
	record := testRecord("")
	record.Port = 3307
	h := paramsHook(record)

	props, err := h.ResolveNativeParams(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, "3307", property_util.PORT.Get(props))
}

func TestResolveNativeParamsCharsetImpliesUnicode(t *testing.T) {
	h := paramsHook(testRecord(`{"charset": "utf-8"}`))

	props, err := h.ResolveNativeParams(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, "utf-8", property_util.CHARSET.Get(props))
	assert.Equal(t, "true", property_util.USE_UNICODE.Get(props))
}

func TestResolveNativeParamsCursor(t *testing.T) {
	for extraCursor, expected := range map[string]string{
		"sscursor":     "sscursor",
		"DictCursor":   "dictcursor",
		"ssdictcursor": "ssdictcursor",
		"cursor":       "cursor",
	} {
		h := paramsHook(testRecord(`{"cursor": "` + extraCursor + `"}`))

		props, err := h.ResolveNativeParams(context.TODO())
		require.NoError(t, err)
		assert.Equal(t, expected, property_util.CURSOR_CLASS.Get(props))
	}
}

func TestResolveNativeParamsUnknownCursor(t *testing.T) {
	h := paramsHook(testRecord(`{"cursor": "sidewayscursor"}`))

	_, err := h.ResolveNativeParams(context.TODO())
	require.Error(t, err)
	var hookErr *error_util.HookError
	require.True(t, errors.As(err, &hookErr))
	assert.True(t, hookErr.IsType(error_util.InvalidConfigurationErrorType))
}

func TestResolveNativeParamsLocalInfile(t *testing.T) {
	h := paramsHook(testRecord(""))
	h.LocalInfile = true

	props, err := h.ResolveNativeParams(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, "1", property_util.LOCAL_INFILE.Get(props))
}

func TestResolveNativeParamsUnixSocket(t *testing.T) {
	h := paramsHook(testRecord(`{"unix_socket": "/var/run/mysqld/mysqld.sock"}`))

	props, err := h.ResolveNativeParams(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, "/var/run/mysqld/mysqld.sock", property_util.UNIX_SOCKET.Get(props))
}

func TestResolveNativeParamsSslObject(t *testing.T) {
	h := paramsHook(testRecord(`{"ssl": {"ca": "/ca.pem", "cert": "/cert.pem", "key": "/key.pem"}}`))

	props, err := h.ResolveNativeParams(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, "/ca.pem", property_util.SSL_CA.Get(props))
	assert.Equal(t, "/cert.pem", property_util.SSL_CERT.Get(props))
	assert.Equal(t, "/key.pem", property_util.SSL_KEY.Get(props))
}

func TestResolveNativeParamsSslEncodedAsString(t *testing.T) {
	encoded, err := json.Marshal(`{"ca": "/ca.pem"}`)
	require.NoError(t, err)
	h := paramsHook(testRecord(`{"ssl": ` + string(encoded) + `}`))

	props, err := h.ResolveNativeParams(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, "/ca.pem", property_util.SSL_CA.Get(props))
	assert.False(t, property_util.SSL_CERT.IsSet(props))
}

func TestResolveNativeParamsSslMode(t *testing.T) {
	h := paramsHook(testRecord(`{"ssl_mode": "REQUIRED"}`))

	props, err := h.ResolveNativeParams(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, "REQUIRED", property_util.SSL_MODE.Get(props))
}

func TestResolveNativeParamsInitCommand(t *testing.T) {
	h := paramsHook(testRecord(""))
	h.InitCommand = "SET time_zone = 'UTC'"

	props, err := h.ResolveNativeParams(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, "SET time_zone = 'UTC'", property_util.INIT_COMMAND.Get(props))
}

func TestResolveNativeParamsSchemaOverride(t *testing.T) {
	h := paramsHook(testRecord(""))
	h.Schema = "override"

	props, err := h.ResolveNativeParams(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, "override", property_util.DATABASE.Get(props))
}

func TestResolveNativeParamsIamToken(t *testing.T) {
	h := paramsHook(testRecord(`{"iam": true}`))
	fake := &fakeTokenUtility{token: "iam-token"}
	h.TokenUtility = fake

	props, err := h.ResolveNativeParams(context.TODO())
	require.NoError(t, err)

	assert.Equal(t, "iam-token", property_util.PASSWORD.Get(props))
	assert.Equal(t, "true", property_util.ALLOW_CLEARTEXT_PASSWORD.Get(props))
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, "login", fake.user)
	assert.Equal(t, "host", fake.host)
	assert.Equal(t, 3306, fake.port)
	assert.Nil(t, fake.awsRecord)
}

func TestResolveNativeParamsIamUsesRegisteredAwsRecord(t *testing.T) {
	h := paramsHook(testRecord(`{"iam": true, "aws_conn_id": "aws_ops"}`))
	h.Registry.Register(&connection.Record{
		ConnID: "aws_ops",
		Login:  "AKIAEXAMPLE",
		Extra:  `{"region_name": "eu-west-1"}`,
	})
	fake := &fakeTokenUtility{token: "iam-token"}
	h.TokenUtility = fake

	_, err := h.ResolveNativeParams(context.TODO())
	require.NoError(t, err)
	require.NotNil(t, fake.awsRecord)
	assert.Equal(t, "aws_ops", fake.awsRecord.ConnID)
}

func TestResolveNativeParamsIamMissingExplicitAwsRecord(t *testing.T) {
	h := paramsHook(testRecord(`{"iam": true, "aws_conn_id": "aws_missing"}`))
	h.TokenUtility = &fakeTokenUtility{token: "iam-token"}

	_, err := h.ResolveNativeParams(context.TODO())
	require.Error(t, err)
	var hookErr *error_util.HookError
	require.True(t, errors.As(err, &hookErr))
	assert.True(t, hookErr.IsType(error_util.RegistryErrorType))
}

func TestResolveNativeParamsIamTokenError(t *testing.T) {
	h := paramsHook(testRecord(`{"iam": true}`))
	h.TokenUtility = &fakeTokenUtility{err: errors.New("token service down")}

	_, err := h.ResolveNativeParams(context.TODO())
	require.Error(t, err)
	assert.ErrorContains(t, err, "token service down")
}

type fakeSecretsClient struct {
	value string
	err   error
}

func (f *fakeSecretsClient) GetSecretValue(
	_ context.Context, _ *secretsmanager.GetSecretValueInput, _ ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &secretsmanager.GetSecretValueOutput{SecretString: &f.value}, nil
}

func TestResolveNativeParamsSecretsManagerOverride(t *testing.T) {
	h := paramsHook(testRecord(`{"secrets_manager_secret_id": "prod/mysql"}`))
	h.Registry.Register(&connection.Record{
		ConnID:   connection.DEFAULT_AWS_CONN_ID,
		Login:    "AKIAEXAMPLE",
		Password: "secretkey",
		Extra:    `{"region_name": "us-east-1"}`,
	})
	h.Secrets.SetClientProvider(func(
		_ context.Context, region region_util.Region, _ aws.CredentialsProvider) (secrets.SecretsManagerClient, error) {
		assert.Equal(t, region_util.Region("us-east-1"), region)
		return &fakeSecretsClient{value: `{"username": "vaulted-user", "password": "vaulted-pass"}`}, nil
	})

	props, err := h.ResolveNativeParams(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, "vaulted-user", property_util.USER.Get(props))
	assert.Equal(t, "vaulted-pass", property_util.PASSWORD.Get(props))
}

func TestResolveNativeParamsMalformedExtra(t *testing.T) {
	h := paramsHook(testRecord(`{"charset": `))

	_, err := h.ResolveNativeParams(context.TODO())
	require.Error(t, err)
	var hookErr *error_util.HookError
	require.True(t, errors.As(err, &hookErr))
	assert.True(t, hookErr.IsType(error_util.InvalidConfigurationErrorType))
}

func TestResolveNativeParamsMissingRecord(t *testing.T) {
	h := NewMySqlHook()
	h.Registry = connection.NewRegistry()
	h.ConnID = "mysql_nowhere"

	_, err := h.ResolveNativeParams(context.TODO())
	require.Error(t, err)
	var hookErr *error_util.HookError
	require.True(t, errors.As(err, &hookErr))
	assert.True(t, hookErr.IsType(error_util.RegistryErrorType))
}
