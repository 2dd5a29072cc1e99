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

type HookErrorType int

const (
	GenericHookErrorType          HookErrorType = 0
	InvalidConfigurationErrorType HookErrorType = 1
	RegistryErrorType             HookErrorType = 2
	ConnectionFailureErrorType    HookErrorType = 3
	CredentialsErrorType          HookErrorType = 4
)

// HookError is the error type returned by every package of this module.
// The wrapped error, if any, is preserved for errors.Is/As chains.
type HookError struct {
	Message   string
	ErrorType HookErrorType
	wrapped   error
}

func (h *HookError) Error() string {
	return h.Message
}

func (h *HookError) Unwrap() error {
	return h.wrapped
}

func (h *HookError) IsType(errorType HookErrorType) bool {
	return h.ErrorType == errorType
}

func NewGenericHookError(message string) *HookError {
	return &HookError{Message: message, ErrorType: GenericHookErrorType}
}

// NewInvalidConfigurationError reports a connection record or extra option
// that can never produce a usable connection, before any dial is attempted.
func NewInvalidConfigurationError(message string) *HookError {
	return &HookError{Message: message, ErrorType: InvalidConfigurationErrorType}
}

// Wrap attaches the underlying cause and returns the same error so the
// constructors above can be chained.
func (h *HookError) Wrap(cause error) *HookError {
	h.wrapped = cause
	return h
}

func NewRegistryError(message string) *HookError {
	return &HookError{Message: message, ErrorType: RegistryErrorType}
}

func NewConnectionFailureError(message string, cause error) *HookError {
	return &HookError{Message: message, ErrorType: ConnectionFailureErrorType, wrapped: cause}
}

func NewCredentialsError(message string, cause error) *HookError {
	return &HookError{Message: message, ErrorType: CredentialsErrorType, wrapped: cause}
}
