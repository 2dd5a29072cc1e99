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
	"fmt"
	"strings"

	"mysqlhook/dialect"
)

// Statement pairs a query with its bound arguments for Run.
type Statement struct {
	Query string
	Args  []any
}

// BulkLoadStatement builds a LOAD DATA LOCAL INFILE statement for the given
// table. The file path is bound as an argument, never interpolated.
func BulkLoadStatement(table string) Statement {
	return Statement{
		Query: fmt.Sprintf("LOAD DATA LOCAL INFILE ? INTO TABLE %s", dialect.QuoteIdentifier(table)),
	}
}

// BulkLoadCustomStatement builds a LOAD DATA LOCAL INFILE statement with
// placeholders for the file path, the duplicate-key handling clause and the
// trailing options. All three are bound as parameters, never interpolated.
func BulkLoadCustomStatement(table string) Statement {
	return Statement{
		Query: fmt.Sprintf("LOAD DATA LOCAL INFILE ? ? INTO TABLE %s ?", dialect.QuoteIdentifier(table)),
	}
}

// BulkDumpStatement builds a SELECT ... INTO OUTFILE statement for the given
// table. The output path is bound as an argument.
func BulkDumpStatement(table string) Statement {
	return Statement{
		Query: fmt.Sprintf("SELECT * INTO OUTFILE ? FROM %s", dialect.QuoteIdentifier(table)),
	}
}

// BulkLoad runs a LOAD DATA LOCAL INFILE from the given local file into the
// table. The connection must have been opened with local infile enabled.
func (h *MySqlHook) BulkLoad(ctx context.Context, conn Conn, table, localPath string) error {
	stmt := BulkLoadStatement(table)
	return conn.Execute(ctx, stmt.Query, localPath)
}

// BulkLoadCustom runs a LOAD DATA LOCAL INFILE with caller-supplied
// duplicate-key handling ("IGNORE" or "REPLACE") and trailing options such
// as FIELDS TERMINATED BY, both bound alongside the file path.
func (h *MySqlHook) BulkLoadCustom(ctx context.Context, conn Conn, table, localPath, duplicateKeyHandling, extraOptions string) error {
	stmt := BulkLoadCustomStatement(table)
	return conn.Execute(ctx, stmt.Query, localPath, duplicateKeyHandling, extraOptions)
}

// BulkDump runs a SELECT * INTO OUTFILE of the table to the given
// server-side path.
func (h *MySqlHook) BulkDump(ctx context.Context, conn Conn, table, serverPath string) error {
	stmt := BulkDumpStatement(table)
	return conn.Execute(ctx, stmt.Query, serverPath)
}

// GenerateInsertSQL builds a single-row INSERT (or REPLACE) statement with
// one placeholder per value. Target fields that are reserved words are
// backtick-quoted; fields arriving pre-quoted pass through untouched.
func GenerateInsertSQL(table string, targetFields []string, numValues int, replace bool) string {
	verb := "INSERT"
	if replace {
		verb = "REPLACE"
	}

	columns := ""
	if len(targetFields) > 0 {
		escaped := make([]string, len(targetFields))
		for i, field := range targetFields {
			escaped[i] = dialect.EscapeColumnName(field)
		}
		columns = fmt.Sprintf("(%s) ", strings.Join(escaped, ", "))
	}

	placeholders := make([]string, numValues)
	for i := range placeholders {
		placeholders[i] = "?"
	}
	return fmt.Sprintf("%s INTO %s %sVALUES (%s)", verb, table, columns, strings.Join(placeholders, ", "))
}

// SerializeCell returns the cell unchanged. The drivers bind Go values
// directly, so no stringification happens on the way in.
func SerializeCell(cell any) any {
	return cell
}

// InsertRows inserts the given rows into the table with a single generated
// statement executed once per row, then commits.
func (h *MySqlHook) InsertRows(ctx context.Context, conn Conn, table string, rows [][]any, targetFields []string, replace bool) error {
	if len(rows) == 0 {
		return nil
	}
	query := GenerateInsertSQL(table, targetFields, len(rows[0]), replace)
	for _, row := range rows {
		args := make([]any, len(row))
		for i, cell := range row {
			args[i] = SerializeCell(cell)
		}
		if err := conn.Execute(ctx, query, args...); err != nil {
			return err
		}
	}
	return conn.Commit(ctx)
}
