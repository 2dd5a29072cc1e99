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

package dialect

import (
	"strings"

	"mysqlhook/error_util"
)

const (
	DEFAULT_PORT = 3306

	// URI schemes for the two supported client families.
	DEFAULT_SCHEME         = "mysql"
	MYSQL_CONNECTOR_SCHEME = "mysql+mysqlconnector"
)

// Client family names accepted in the connection extra 'client' entry.
const (
	CLIENT_MYSQL_NATIVE    = "mysqlclient"
	CLIENT_MYSQL_CONNECTOR = "mysql-connector-python"

	// Alias kept for callers that do not care about the original
	// client library naming.
	CLIENT_MYSQL_CONNECTOR_ALIAS = "mysql-connector"
)

// IsConnectorClient reports whether the given client family selects the
// database/sql driver and the mysql+mysqlconnector URI scheme.
func IsConnectorClient(client string) bool {
	return client == CLIENT_MYSQL_CONNECTOR || client == CLIENT_MYSQL_CONNECTOR_ALIAS
}

func SchemeForClient(client string) string {
	if IsConnectorClient(client) {
		return MYSQL_CONNECTOR_SCHEME
	}
	return DEFAULT_SCHEME
}

type CursorStrategy int

const (
	CURSOR_DEFAULT CursorStrategy = iota
	CURSOR_SERVER_SIDE
	CURSOR_DICT
	CURSOR_SERVER_SIDE_DICT
)

var cursorStrategies = map[string]CursorStrategy{
	"cursor":       CURSOR_DEFAULT,
	"sscursor":     CURSOR_SERVER_SIDE,
	"dictcursor":   CURSOR_DICT,
	"ssdictcursor": CURSOR_SERVER_SIDE_DICT,
}

// ParseCursorStrategy maps a named cursor strategy to its enum value.
// Unknown names fail before any connection attempt.
func ParseCursorStrategy(name string) (CursorStrategy, error) {
	strategy, ok := cursorStrategies[strings.ToLower(name)]
	if !ok {
		return CURSOR_DEFAULT, error_util.NewInvalidConfigurationError(error_util.GetMessage("MySqlDialect.unknownCursor", name))
	}
	return strategy, nil
}

// ServerSide reports whether the strategy streams rows from the server
// instead of buffering the full result set on the client.
func (c CursorStrategy) ServerSide() bool {
	return c == CURSOR_SERVER_SIDE || c == CURSOR_SERVER_SIDE_DICT
}

func (c CursorStrategy) String() string {
	switch c {
	case CURSOR_SERVER_SIDE:
		return "sscursor"
	case CURSOR_DICT:
		return "dictcursor"
	case CURSOR_SERVER_SIDE_DICT:
		return "ssdictcursor"
	default:
		return "cursor"
	}
}

// QuoteIdentifier backtick-quotes a table or column name, doubling any
// embedded backticks.
func QuoteIdentifier(identifier string) string {
	return "`" + strings.ReplaceAll(identifier, "`", "``") + "`"
}

// EscapeColumnName quotes a column name only when it collides with a
// reserved word. Names already backtick-quoted by the caller pass through
// untouched so they are never double-quoted.
func EscapeColumnName(name string) string {
	if strings.HasPrefix(name, "`") && strings.HasSuffix(name, "`") {
		return name
	}
	if IsReservedWord(name) {
		return QuoteIdentifier(name)
	}
	return name
}

// IsReservedWord consults the read-only reserved-word table. Membership is
// by uppercase string, matching how the server documents the words.
func IsReservedWord(word string) bool {
	return reservedWords[strings.ToUpper(word)]
}
