// Copyright 2025 ID For Ideas - All Rights Reserved
// Unauthorized copying of this file, via any medium is strictly prohibited
// Proprietary and confidential
// info@idforideas.com
//

package propiedades

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"

	"github.com/idforideas/inmobiliaria/core/csql"
	"github.com/idforideas/inmobiliaria/core/logger"
)

// ErrNotFound is returned by GetByCode when no propiedad has the requested code.
var ErrNotFound = errors.New("propiedad no encontrada")

// Store is the persistence interface for propiedades. It is the only
// component that talks to the database. All implementations must use
// parameter binding, caller-supplied values never end up in query text.
type Store interface {
	// List returns all stored propiedades, in no particular order.
	List() ([]Propiedad, error)
	// GetByCode returns the propiedad with the given code, or ErrNotFound.
	GetByCode(codigo string) (Propiedad, error)
	// ExistsByCode reports whether a propiedad with the given code exists.
	ExistsByCode(codigo string) (bool, error)
	// Insert stores a new propiedad. A duplicate code is reported as
	// ErrCodigoEnUso.
	Insert(p Propiedad) error
	// UpdateByCode applies the patch to the propiedad with the given code.
	// Fields that are nil in the patch keep their stored value. It returns
	// the number of rows affected.
	UpdateByCode(codigo string, patch Patch) (int64, error)
	// DeleteByCode removes the propiedad with the given code. Deleting a
	// code that does not exist is not an error.
	DeleteByCode(codigo string) error
}

// the columns of the propiedades table, in insert order
var columns = []string{
	"codigo_id",
	"pais",
	"ciudad",
	"direccion",
	"ambientes",
	"metros_cuadrados",
	"precio",
	"tipo_contratacion",
	"estado",
	"descripcion",
}

// returns $1,...,$n
func parameterString(n int) string {
	result := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			result += ","
		}
		result += "$" + strconv.Itoa(i+1)
	}
	return result
}

// SQLStore is the postgres implementation of Store.
type SQLStore struct {
	db          *csql.DB
	listQuery   string
	readQuery   string
	existsQuery string
	insertQuery string
	updateQuery string
	deleteQuery string
}

// NewSQLStore creates a postgres store for propiedades. It creates the
// propiedades table in the database's schema if it does not exist yet.
func NewSQLStore(db *csql.DB) *SQLStore {
	schema := db.Schema
	logger.Default().Debugln("create table:", schema+".propiedades")

	_, err := db.Exec(`CREATE table IF NOT EXISTS ` + schema + `."propiedades"
(codigo_id varchar NOT NULL PRIMARY KEY,
pais varchar NOT NULL,
ciudad varchar NOT NULL,
direccion varchar NOT NULL,
ambientes double precision NOT NULL,
metros_cuadrados double precision NOT NULL,
precio double precision NOT NULL,
tipo_contratacion varchar NOT NULL,
estado varchar NOT NULL,
descripcion varchar NOT NULL DEFAULT ''
);`)
	if err != nil {
		panic(err)
	}

	readQuery := "SELECT " + strings.Join(columns, ", ") + fmt.Sprintf(" FROM %s.\"propiedades\" ", schema)

	insertQuery := fmt.Sprintf("INSERT INTO %s.\"propiedades\" ", schema) + "(" + strings.Join(columns, ", ") + ")"
	insertQuery += "VALUES(" + parameterString(len(columns)) + ");"

	// partial update: a NULL parameter keeps the stored value. This is a
	// single conditional write, the row is never read into memory first.
	updateQuery := fmt.Sprintf("UPDATE %s.\"propiedades\" SET ", schema)
	sets := make([]string, len(columns)-1)
	for i := 1; i < len(columns); i++ {
		sets[i-1] = columns[i] + " = COALESCE($" + strconv.Itoa(i) + ", " + columns[i] + ")"
	}
	updateQuery += strings.Join(sets, ", ") + " WHERE codigo_id = $" + strconv.Itoa(len(columns)) + ";"

	return &SQLStore{
		db:          db,
		listQuery:   readQuery + ";",
		readQuery:   readQuery + "WHERE codigo_id = $1;",
		existsQuery: fmt.Sprintf("SELECT codigo_id FROM %s.\"propiedades\" WHERE codigo_id = $1;", schema),
		insertQuery: insertQuery,
		updateQuery: updateQuery,
		deleteQuery: fmt.Sprintf("DELETE FROM %s.\"propiedades\" WHERE codigo_id = $1;", schema),
	}
}

// List returns all stored propiedades.
func (s *SQLStore) List() ([]Propiedad, error) {
	rows, err := s.db.Query(s.listQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []Propiedad{}
	for rows.Next() {
		var p Propiedad
		err := rows.Scan(&p.CodigoID, &p.Pais, &p.Ciudad, &p.Direccion,
			&p.Ambientes, &p.MetrosCuadrados, &p.Precio,
			&p.TipoContratacion, &p.Estado, &p.Descripcion)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

// GetByCode returns a single propiedad, or ErrNotFound.
func (s *SQLStore) GetByCode(codigo string) (Propiedad, error) {
	var p Propiedad
	err := s.db.QueryRow(s.readQuery, codigo).Scan(&p.CodigoID, &p.Pais, &p.Ciudad, &p.Direccion,
		&p.Ambientes, &p.MetrosCuadrados, &p.Precio,
		&p.TipoContratacion, &p.Estado, &p.Descripcion)
	if err == csql.ErrNoRows {
		return Propiedad{}, ErrNotFound
	}
	return p, err
}

// ExistsByCode reports whether a propiedad with the given code exists.
func (s *SQLStore) ExistsByCode(codigo string) (bool, error) {
	var existing string
	err := s.db.QueryRow(s.existsQuery, codigo).Scan(&existing)
	if err == csql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Insert stores a new propiedad. The primary key constraint is the final
// arbiter for code uniqueness: a duplicate key violation is reported as
// ErrCodigoEnUso, even when the allocator's existence check had passed.
func (s *SQLStore) Insert(p Propiedad) error {
	_, err := s.db.Exec(s.insertQuery, p.CodigoID, p.Pais, p.Ciudad, p.Direccion,
		p.Ambientes, p.MetrosCuadrados, p.Precio,
		p.TipoContratacion, p.Estado, p.Descripcion)
	if err, ok := err.(*pq.Error); ok && err.Code == "23505" {
		return ErrCodigoEnUso{Codigo: p.CodigoID}
	}
	return err
}

// UpdateByCode applies a sparse patch and returns the number of rows affected.
func (s *SQLStore) UpdateByCode(codigo string, patch Patch) (int64, error) {
	res, err := s.db.Exec(s.updateQuery, patch.Pais, patch.Ciudad, patch.Direccion,
		patch.Ambientes, patch.MetrosCuadrados, patch.Precio,
		patch.TipoContratacion, patch.Estado, patch.Descripcion, codigo)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteByCode removes a propiedad. It does not distinguish between a row
// that was removed and a row that never existed.
func (s *SQLStore) DeleteByCode(codigo string) error {
	_, err := s.db.Exec(s.deleteQuery, codigo)
	return err
}
