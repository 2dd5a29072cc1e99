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
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"fmt"
	"net"
	"os"

	gomysqlclient "github.com/go-mysql-org/go-mysql/client"
	gomysql "github.com/go-mysql-org/go-mysql/mysql"
	mysqldriver "github.com/go-sql-driver/mysql"

	"mysqlhook/dialect"
	"mysqlhook/error_util"
	"mysqlhook/property_util"
)

// Conn is the capability surface the hook needs from an acquired database
// connection. The two implementations wrap the two supported client
// families; the right one is chosen at acquisition time, so no runtime
// type probing happens afterwards.
type Conn interface {
	Execute(ctx context.Context, query string, args ...any) error
	Query(ctx context.Context, query string, args ...any) ([][]any, error)
	// SetAutocommit and Autocommit normalize the autocommit handling of
	// the two underlying client APIs.
	SetAutocommit(ctx context.Context, autocommit bool) error
	Autocommit(ctx context.Context) (bool, error)
	Commit(ctx context.Context) error
	Close() error
}

// nativeClient is the slice of the go-mysql client.Conn API the hook uses.
type nativeClient interface {
	Execute(command string, args ...any) (*gomysql.Result, error)
	ExecuteSelectStreaming(command string, result *gomysql.Result, perRowCallback gomysqlclient.SelectPerRowCallback, perResultCallback gomysqlclient.SelectPerResultCallback) error
	IsAutoCommit() bool
	Commit() error
	Close() error
}

// NativeConn adapts the native-protocol client. Its autocommit state is
// read off the protocol status flag, method-style, without a round trip.
type NativeConn struct {
	client    nativeClient
	streaming bool
}

func (c *NativeConn) Execute(ctx context.Context, query string, args ...any) error {
	_, err := c.client.Execute(query, args...)
	return err
}

func (c *NativeConn) Query(ctx context.Context, query string, args ...any) ([][]any, error) {
	if c.streaming && len(args) == 0 {
		return c.queryStreaming(query)
	}
	result, err := c.client.Execute(query, args...)
	if err != nil {
		return nil, err
	}
	rows := make([][]any, 0, result.RowNumber())
	for i := 0; i < result.RowNumber(); i++ {
		row := make([]any, result.ColumnNumber())
		for j := 0; j < result.ColumnNumber(); j++ {
			value, err := result.GetValue(i, j)
			if err != nil {
				return nil, err
			}
			row[j] = value
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// queryStreaming consumes the result set row by row instead of buffering
// it, the server-side cursor strategy.
func (c *NativeConn) queryStreaming(query string) ([][]any, error) {
	var rows [][]any
	var result gomysql.Result
	err := c.client.ExecuteSelectStreaming(query, &result, func(fields []gomysql.FieldValue) error {
		row := make([]any, len(fields))
		for i := range fields {
			row[i] = fields[i].Value()
		}
		rows = append(rows, row)
		return nil
	}, nil)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *NativeConn) SetAutocommit(ctx context.Context, autocommit bool) error {
	_, err := c.client.Execute(fmt.Sprintf("SET autocommit = %d", boolToInt(autocommit)))
	return err
}

func (c *NativeConn) Autocommit(ctx context.Context) (bool, error) {
	return c.client.IsAutoCommit(), nil
}

func (c *NativeConn) Commit(ctx context.Context) error {
	return c.client.Commit()
}

func (c *NativeConn) Close() error {
	return c.client.Close()
}

// SQLConn adapts a database/sql connection. The session is pinned to a
// single *sql.Conn so SET autocommit and transaction state stick.
type SQLConn struct {
	db   *sql.DB
	conn *sql.Conn
}

func (c *SQLConn) Execute(ctx context.Context, query string, args ...any) error {
	_, err := c.conn.ExecContext(ctx, query, args...)
	return err
}

func (c *SQLConn) Query(ctx context.Context, query string, args ...any) ([][]any, error) {
	result, err := c.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer result.Close()

	columns, err := result.Columns()
	if err != nil {
		return nil, err
	}
	var rows [][]any
	for result.Next() {
		row := make([]any, len(columns))
		scan := make([]any, len(columns))
		for i := range row {
			scan[i] = &row[i]
		}
		if err := result.Scan(scan...); err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, result.Err()
}

func (c *SQLConn) SetAutocommit(ctx context.Context, autocommit bool) error {
	_, err := c.conn.ExecContext(ctx, fmt.Sprintf("SET autocommit = %d", boolToInt(autocommit)))
	return err
}

func (c *SQLConn) Autocommit(ctx context.Context) (bool, error) {
	var value int
	err := c.conn.QueryRowContext(ctx, "SELECT @@autocommit").Scan(&value)
	return value == 1, err
}

func (c *SQLConn) Commit(ctx context.Context) error {
	_, err := c.conn.ExecContext(ctx, "COMMIT")
	return err
}

func (c *SQLConn) Close() error {
	err := c.conn.Close()
	if c.db != nil {
		if dbErr := c.db.Close(); err == nil {
			err = dbErr
		}
	}
	return err
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// connectNative opens a connection through the native-protocol client.
func connectNative(ctx context.Context, props map[string]string, strategy dialect.CursorStrategy) (*NativeConn, error) {
	network := "tcp"
	address := net.JoinHostPort(property_util.HOST.Get(props), property_util.PORT.Get(props))
	if socket := property_util.UNIX_SOCKET.Get(props); socket != "" {
		network = "unix"
		address = socket
	}

	var options []func(*gomysqlclient.Conn)
	tlsConfig, err := loadTLSConfig(props)
	if err != nil {
		return nil, err
	}
	if tlsConfig != nil {
		options = append(options, func(c *gomysqlclient.Conn) { c.SetTLSConfig(tlsConfig) })
	}

	dialer := &net.Dialer{}
	conn, err := gomysqlclient.ConnectWithDialer(ctx, network, address,
		property_util.USER.Get(props),
		property_util.PASSWORD.Get(props),
		property_util.DATABASE.Get(props),
		dialer.DialContext,
		options...)
	if err != nil {
		return nil, error_util.NewConnectionFailureError(error_util.GetMessage("MySqlHook.connectionFailure", err), err)
	}

	if charset := property_util.CHARSET.Get(props); charset != "" {
		if err := conn.SetCharset(charset); err != nil {
			_ = conn.Close()
			return nil, error_util.NewConnectionFailureError(error_util.GetMessage("MySqlHook.connectionFailure", err), err)
		}
	}
	if initCommand := property_util.INIT_COMMAND.Get(props); initCommand != "" {
		if _, err := conn.Execute(initCommand); err != nil {
			_ = conn.Close()
			return nil, error_util.NewConnectionFailureError(error_util.GetMessage("MySqlHook.connectionFailure", err), err)
		}
	}
	return &NativeConn{client: conn, streaming: strategy.ServerSide()}, nil
}

// buildSQLConfig maps resolved properties onto the Go MySQL driver config.
func buildSQLConfig(props map[string]string) (*mysqldriver.Config, error) {
	cfg := mysqldriver.NewConfig()
	cfg.User = property_util.USER.Get(props)
	cfg.Passwd = property_util.PASSWORD.Get(props)
	cfg.DBName = property_util.DATABASE.Get(props)
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(property_util.HOST.Get(props), property_util.PORT.Get(props))
	if socket := property_util.UNIX_SOCKET.Get(props); socket != "" {
		cfg.Net = "unix"
		cfg.Addr = socket
	}
	if charset := property_util.CHARSET.Get(props); charset != "" {
		cfg.Params = map[string]string{"charset": charset}
	}

	localInfile, err := property_util.GetVerifiedHookPropertyValue[int](props, property_util.LOCAL_INFILE)
	if err != nil {
		return nil, err
	}
	cfg.AllowAllFiles = localInfile == 1

	allowCleartext, err := property_util.GetVerifiedHookPropertyValue[bool](props, property_util.ALLOW_CLEARTEXT_PASSWORD)
	if err != nil {
		return nil, err
	}
	cfg.AllowCleartextPasswords = allowCleartext

	tlsConfig, err := loadTLSConfig(props)
	if err != nil {
		return nil, err
	}
	if tlsConfig != nil {
		if err := mysqldriver.RegisterTLSConfig("mysqlhook", tlsConfig); err != nil {
			return nil, err
		}
		cfg.TLSConfig = "mysqlhook"
	}
	return cfg, nil
}

// connectSQL opens a pinned database/sql connection via the Go MySQL driver.
func connectSQL(ctx context.Context, props map[string]string) (*SQLConn, error) {
	cfg, err := buildSQLConfig(props)
	if err != nil {
		return nil, err
	}

	connector, err := mysqldriver.NewConnector(cfg)
	if err != nil {
		return nil, error_util.NewConnectionFailureError(error_util.GetMessage("MySqlHook.connectionFailure", err), err)
	}
	db := sql.OpenDB(connector)
	conn, err := db.Conn(ctx)
	if err != nil {
		_ = db.Close()
		return nil, error_util.NewConnectionFailureError(error_util.GetMessage("MySqlHook.connectionFailure", err), err)
	}
	if initCommand := property_util.INIT_COMMAND.Get(props); initCommand != "" {
		if _, err := conn.ExecContext(ctx, initCommand); err != nil {
			_ = conn.Close()
			_ = db.Close()
			return nil, error_util.NewConnectionFailureError(error_util.GetMessage("MySqlHook.connectionFailure", err), err)
		}
	}
	return &SQLConn{db: db, conn: conn}, nil
}

// loadTLSConfig builds a TLS configuration from the resolved ssl_ca,
// ssl_cert and ssl_key file paths, or returns nil when none are set.
func loadTLSConfig(props map[string]string) (*tls.Config, error) {
	ca := property_util.SSL_CA.Get(props)
	cert := property_util.SSL_CERT.Get(props)
	key := property_util.SSL_KEY.Get(props)
	if ca == "" && cert == "" && key == "" {
		return nil, nil
	}

	tlsConfig := &tls.Config{ServerName: property_util.HOST.Get(props)}
	if ca != "" {
		pem, err := os.ReadFile(ca)
		if err != nil {
			return nil, err
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, error_util.NewInvalidConfigurationError(error_util.GetMessage("MySqlHook.connectionFailure", "no certificates parsed from "+ca))
		}
		tlsConfig.RootCAs = pool
	}
	if cert != "" && key != "" {
		pair, err := tls.LoadX509KeyPair(cert, key)
		if err != nil {
			return nil, err
		}
		tlsConfig.Certificates = []tls.Certificate{pair}
	}
	return tlsConfig, nil
}
