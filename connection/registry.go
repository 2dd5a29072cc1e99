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
	"encoding/json"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"

	"mysqlhook/error_util"
)

const (
	DEFAULT_CONN_ID     = "mysql_default"
	DEFAULT_AWS_CONN_ID = "aws_default"

	// ENV_PREFIX is the prefix of environment variables holding URI- or
	// JSON-encoded connection records, looked up by uppercased conn id.
	ENV_PREFIX = "MYSQL_CONN_"
)

// Registry resolves connection records by id. Programmatically registered
// records take precedence over the environment.
type Registry struct {
	mu      sync.RWMutex
	records map[string]*Record
}

func NewRegistry() *Registry {
	return &Registry{records: map[string]*Record{}}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

func (r *Registry) Register(record *Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ConnID] = record
}

// Resolve returns the record stored under connID, falling back to the
// MYSQL_CONN_<ID> environment variable.
func (r *Registry) Resolve(connID string) (*Record, error) {
	r.mu.RLock()
	record, ok := r.records[connID]
	r.mu.RUnlock()
	if ok {
		return record, nil
	}

	encoded := os.Getenv(ENV_PREFIX + envSuffix(connID))
	if encoded == "" {
		return nil, error_util.NewRegistryError(error_util.GetMessage("ConnectionRegistry.unknownConnection", connID))
	}
	return ParseRecord(connID, encoded)
}

// ParseRecord decodes a URI- or JSON-encoded connection record.
func ParseRecord(connID, encoded string) (*Record, error) {
	if strings.HasPrefix(strings.TrimSpace(encoded), "{") {
		return parseJSONRecord(connID, encoded)
	}
	return parseURIRecord(connID, encoded)
}

func envSuffix(connID string) string {
	return strings.ToUpper(strings.ReplaceAll(connID, "-", "_"))
}

type jsonRecord struct {
	ConnType string          `json:"conn_type"`
	Login    string          `json:"login"`
	Password string          `json:"password"`
	Host     string          `json:"host"`
	Schema   string          `json:"schema"`
	Port     int             `json:"port"`
	Extra    json.RawMessage `json:"extra"`
}

func parseJSONRecord(connID, encoded string) (*Record, error) {
	var decoded jsonRecord
	if err := json.Unmarshal([]byte(encoded), &decoded); err != nil {
		return nil, error_util.NewRegistryError(error_util.GetMessage("ConnectionRegistry.malformedJson", connID, err)).Wrap(err)
	}

	extra := ""
	if len(decoded.Extra) > 0 {
		// The extra bag may itself be JSON-string-encoded.
		if strings.HasPrefix(strings.TrimSpace(string(decoded.Extra)), "\"") {
			if err := json.Unmarshal(decoded.Extra, &extra); err != nil {
				return nil, error_util.NewRegistryError(error_util.GetMessage("ConnectionRegistry.malformedJson", connID, err)).Wrap(err)
			}
		} else {
			extra = string(decoded.Extra)
		}
	}

	return &Record{
		ConnID:   connID,
		ConnType: decoded.ConnType,
		Login:    decoded.Login,
		Password: decoded.Password,
		Host:     decoded.Host,
		Schema:   decoded.Schema,
		Port:     decoded.Port,
		Extra:    extra,
	}, nil
}

func parseURIRecord(connID, encoded string) (*Record, error) {
	parsed, err := url.Parse(encoded)
	if err != nil {
		return nil, error_util.NewRegistryError(error_util.GetMessage("ConnectionRegistry.malformedUri", connID, err)).Wrap(err)
	}
	if parsed.Scheme == "" {
		return nil, error_util.NewRegistryError(error_util.GetMessage("ConnectionRegistry.malformedUri", connID, "missing scheme"))
	}

	record := &Record{
		ConnID:   connID,
		ConnType: connTypeFromScheme(parsed.Scheme),
		Host:     parsed.Hostname(),
		Schema:   strings.TrimPrefix(parsed.Path, "/"),
	}
	if parsed.User != nil {
		record.Login = parsed.User.Username()
		record.Password, _ = parsed.User.Password()
	}
	if portStr := parsed.Port(); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, error_util.NewRegistryError(error_util.GetMessage("ConnectionRegistry.malformedUri", connID, err)).Wrap(err)
		}
		record.Port = port
	}

	query := parsed.Query()
	if len(query) > 0 {
		extra := make(map[string]string, len(query))
		for key := range query {
			extra[key] = query.Get(key)
		}
		encodedExtra, err := json.Marshal(extra)
		if err != nil {
			return nil, error_util.NewRegistryError(error_util.GetMessage("ConnectionRegistry.malformedUri", connID, err)).Wrap(err)
		}
		record.Extra = string(encodedExtra)
	}
	return record, nil
}

// connTypeFromScheme strips a driver qualifier such as mysql+mysqlconnector
// down to the connection type.
func connTypeFromScheme(scheme string) string {
	connType, _, _ := strings.Cut(scheme, "+")
	return connType
}
