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

package property_util

import (
	"fmt"
	"log/slog"
	"strconv"

	"mysqlhook/error_util"
)

const DEFAULT_PORT = 3306

type HookPropertyType int

const (
	HOOK_TYPE_INT    HookPropertyType = 1
	HOOK_TYPE_STRING HookPropertyType = 2
	HOOK_TYPE_BOOL   HookPropertyType = 3
)

// HookProperty describes one entry of the resolved native connection
// parameters. The parameter set itself is a plain map[string]string keyed
// by property name.
type HookProperty struct {
	Name             string
	description      string
	defaultValue     string
	hookPropertyType HookPropertyType
}

func (prop *HookProperty) Get(props map[string]string) string {
	var result, ok = props[prop.Name]
	if !ok {
		return prop.defaultValue
	}
	return result
}

func (prop *HookProperty) IsSet(props map[string]string) bool {
	_, ok := props[prop.Name]
	return ok
}

func (prop *HookProperty) Set(props map[string]string, val string) {
	props[prop.Name] = val
}

// GetVerifiedHookPropertyValue parses the property value into its declared
// type. An unparsable value falls back to the property default with a
// warning; the parse itself never fails the caller.
func GetVerifiedHookPropertyValue[T any](props map[string]string, property HookProperty) (T, error) {
	propValue := property.Get(props)
	var parsedValue any
	switch property.hookPropertyType {
	case HOOK_TYPE_INT:
		intValue, err := strconv.Atoi(propValue)
		if err != nil {
			slog.Warn(fmt.Sprintf("Using default value '%s' for property '%s' after encountering an error: '%s'.", property.defaultValue, property.Name, err.Error()))
			intValue, _ = strconv.Atoi(property.defaultValue)
		}
		parsedValue = intValue
	case HOOK_TYPE_BOOL:
		boolValue, err := strconv.ParseBool(propValue)
		if err != nil {
			slog.Warn(fmt.Sprintf("Using default value '%s' for property '%s' after encountering an error: '%s'.", property.defaultValue, property.Name, err.Error()))
			boolValue, _ = strconv.ParseBool(property.defaultValue)
		}
		parsedValue = boolValue
	default:
		parsedValue = propValue
	}

	result, ok := parsedValue.(T)
	if !ok {
		return result, error_util.NewGenericHookError(error_util.GetMessage("HookProperty.unexpectedType", property.Name, propValue))
	}
	return result, nil
}

var USER = HookProperty{
	Name:             "user",
	description:      "The user name used to authenticate with the MySQL server.",
	hookPropertyType: HOOK_TYPE_STRING,
}

var PASSWORD = HookProperty{
	Name:             "passwd",
	description:      "The password used to authenticate with the MySQL server.",
	hookPropertyType: HOOK_TYPE_STRING,
}

var HOST = HookProperty{
	Name:             "host",
	description:      "The host name of the MySQL server.",
	hookPropertyType: HOOK_TYPE_STRING,
}

var PORT = HookProperty{
	Name:             "port",
	description:      "The port of the MySQL server.",
	defaultValue:     "3306",
	hookPropertyType: HOOK_TYPE_INT,
}

var DATABASE = HookProperty{
	Name:             "db",
	description:      "The name of the database (schema) to use.",
	hookPropertyType: HOOK_TYPE_STRING,
}

var CHARSET = HookProperty{
	Name:             "charset",
	description:      "The connection character set.",
	hookPropertyType: HOOK_TYPE_STRING,
}

var USE_UNICODE = HookProperty{
	Name:             "use_unicode",
	description:      "Forced on whenever a charset is configured.",
	defaultValue:     "false",
	hookPropertyType: HOOK_TYPE_BOOL,
}

var CURSOR_CLASS = HookProperty{
	Name:             "cursorclass",
	description:      "The named cursor strategy used for result iteration.",
	hookPropertyType: HOOK_TYPE_STRING,
}

var LOCAL_INFILE = HookProperty{
	Name:             "local_infile",
	description:      "Enables LOAD DATA LOCAL INFILE on the client side.",
	defaultValue:     "0",
	hookPropertyType: HOOK_TYPE_INT,
}

var UNIX_SOCKET = HookProperty{
	Name:             "unix_socket",
	description:      "Path of a Unix domain socket to connect through instead of TCP.",
	hookPropertyType: HOOK_TYPE_STRING,
}

var SSL_CA = HookProperty{
	Name:             "ssl_ca",
	description:      "Path of a PEM file holding the certificate authority.",
	hookPropertyType: HOOK_TYPE_STRING,
}

var SSL_CERT = HookProperty{
	Name:             "ssl_cert",
	description:      "Path of a PEM file holding the client certificate.",
	hookPropertyType: HOOK_TYPE_STRING,
}

var SSL_KEY = HookProperty{
	Name:             "ssl_key",
	description:      "Path of a PEM file holding the client private key.",
	hookPropertyType: HOOK_TYPE_STRING,
}

var SSL_MODE = HookProperty{
	Name:             "ssl_mode",
	description:      "The server ssl-mode value, passed through verbatim.",
	hookPropertyType: HOOK_TYPE_STRING,
}

var INIT_COMMAND = HookProperty{
	Name:             "init_command",
	description:      "A statement executed right after the connection is established.",
	hookPropertyType: HOOK_TYPE_STRING,
}

var ALLOW_CLEARTEXT_PASSWORD = HookProperty{
	Name:             "allow_cleartext_passwords",
	description:      "Enables the cleartext authentication plugin, required for IAM tokens.",
	defaultValue:     "false",
	hookPropertyType: HOOK_TYPE_BOOL,
}
