package postgres

import (
	"database/sql"
)

// Queryer é o recorte de leitura/escrita que os repositórios consomem.
// *Connection o satisfaz via *sql.DB embutido.
type Queryer interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}
