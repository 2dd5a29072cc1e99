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

package error_util

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHookErrorTypes(t *testing.T) {
	assert.True(t, NewGenericHookError("m").IsType(GenericHookErrorType))
	assert.True(t, NewInvalidConfigurationError("m").IsType(InvalidConfigurationErrorType))
	assert.True(t, NewRegistryError("m").IsType(RegistryErrorType))
	assert.True(t, NewConnectionFailureError("m", nil).IsType(ConnectionFailureErrorType))
	assert.True(t, NewCredentialsError("m", nil).IsType(CredentialsErrorType))
}

func TestHookErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewConnectionFailureError("unable to connect", cause)

	assert.Equal(t, "unable to connect", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestHookErrorWrapChains(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	err := NewInvalidConfigurationError("malformed extra").Wrap(cause)
	assert.True(t, errors.Is(err, cause))
}

func TestGetMessage(t *testing.T) {
	message := GetMessage("ConnectionRegistry.unknownConnection", "mysql_missing")
	require.Contains(t, message, "mysql_missing")
}

func TestGetMessageUnknownId(t *testing.T) {
	message := GetMessage("Nothing.nothing")
	assert.Empty(t, message)
}
