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

// Package hook provides the MySQL connection hook: it resolves a named
// connection record into driver parameters or a canonical URI, acquires
// connections through either supported client family, and offers the
// bulk-load, bulk-dump and insert helpers built on top of them.
package hook

import (
	"context"
	"log/slog"

	"mysqlhook/connection"
	"mysqlhook/dialect"
	"mysqlhook/error_util"
	"mysqlhook/iam"
	"mysqlhook/property_util"
	"mysqlhook/secrets"
)

// MySqlHook resolves a connection record and hands out live connections.
// The zero value is not usable; construct with NewMySqlHook and adjust
// fields before the first GetConn call.
type MySqlHook struct {
	// ConnID names the record to resolve when Record is nil.
	ConnID string
	// Schema overrides the record's schema when non-empty.
	Schema string
	// LocalInfile enables LOAD DATA LOCAL INFILE on acquired connections.
	LocalInfile bool
	// InitCommand is executed on every new connection before use.
	InitCommand string

	// Record short-circuits registry resolution when set.
	Record   *connection.Record
	Registry *connection.Registry

	TokenUtility iam.TokenUtility
	Secrets      *secrets.Provider
}

func NewMySqlHook() *MySqlHook {
	return &MySqlHook{
		ConnID:       connection.DEFAULT_CONN_ID,
		Registry:     connection.Default(),
		TokenUtility: iam.NewRegularTokenUtility(),
		Secrets:      secrets.NewProvider(),
	}
}

func (h *MySqlHook) registry() *connection.Registry {
	if h.Registry != nil {
		return h.Registry
	}
	return connection.Default()
}

func (h *MySqlHook) resolveRecord() (*connection.Record, error) {
	if h.Record != nil {
		return h.Record, nil
	}
	if h.ConnID == "" {
		return nil, error_util.NewRegistryError(error_util.GetMessage("MySqlHook.missingRecord"))
	}
	return h.registry().Resolve(h.ConnID)
}

// schema applies the hook-level schema override to the resolved record.
func (h *MySqlHook) schema(record *connection.Record) string {
	if h.Schema != "" {
		return h.Schema
	}
	return record.Schema
}

// GetConn resolves the hook's record into driver parameters and opens a
// connection through the client family the record's extra selects.
func (h *MySqlHook) GetConn(ctx context.Context) (Conn, error) {
	record, err := h.resolveRecord()
	if err != nil {
		return nil, err
	}
	extra, err := record.ExtraOptions()
	if err != nil {
		return nil, err
	}
	props, err := h.resolveNativeParams(ctx, record, extra)
	if err != nil {
		return nil, err
	}
	clientName := dialect.CLIENT_MYSQL_NATIVE
	if dialect.IsConnectorClient(extra.Client) {
		clientName = dialect.CLIENT_MYSQL_CONNECTOR
	}
	slog.Debug(error_util.GetMessage("MySqlHook.resolvedConnection", property_util.HOST.Get(props), clientName))

	if dialect.IsConnectorClient(extra.Client) {
		return connectSQL(ctx, props)
	}

	strategy := dialect.CURSOR_DEFAULT
	if cursor := property_util.CURSOR_CLASS.Get(props); cursor != "" {
		strategy, err = dialect.ParseCursorStrategy(cursor)
		if err != nil {
			return nil, err
		}
	}
	return connectNative(ctx, props, strategy)
}

// SetAutocommit changes the session autocommit mode on the connection.
func (h *MySqlHook) SetAutocommit(ctx context.Context, conn Conn, autocommit bool) error {
	return conn.SetAutocommit(ctx, autocommit)
}

// GetAutocommit reports the session autocommit mode of the connection.
func (h *MySqlHook) GetAutocommit(ctx context.Context, conn Conn) (bool, error) {
	return conn.Autocommit(ctx)
}

// Run executes the statements in order on the connection with the given
// autocommit mode. When autocommit is off, a single commit follows the
// last statement.
func (h *MySqlHook) Run(ctx context.Context, conn Conn, autocommit bool, statements ...Statement) error {
	if err := conn.SetAutocommit(ctx, autocommit); err != nil {
		return err
	}
	for _, stmt := range statements {
		if err := conn.Execute(ctx, stmt.Query, stmt.Args...); err != nil {
			return err
		}
	}
	if !autocommit {
		return conn.Commit(ctx)
	}
	return nil
}

// GetRecords runs the query on a fresh connection and returns all rows.
func (h *MySqlHook) GetRecords(ctx context.Context, query string, args ...any) ([][]any, error) {
	conn, err := h.GetConn(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close()
	return conn.Query(ctx, query, args...)
}
