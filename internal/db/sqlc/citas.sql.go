package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const listCitas = `-- name: ListCitas :many

SELECT id, paciente, descripcion, fecha
FROM citas
`

type ListCitasRow struct {
	ID          int32            `json:"id"`
	Paciente    string           `json:"paciente"`
	Descripcion pgtype.Text      `json:"descripcion"`
	Fecha       pgtype.Timestamp `json:"fecha"`
}

// Queries against the secondary (hospital) store. The citas table is owned by
// the hospital application and is not created by our migrations.
func (q *Queries) ListCitas(ctx context.Context) ([]ListCitasRow, error) {
	rows, err := q.db.Query(ctx, listCitas)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListCitasRow
	for rows.Next() {
		var i ListCitasRow
		if err := rows.Scan(
			&i.ID,
			&i.Paciente,
			&i.Descripcion,
			&i.Fecha,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listCitasDesc = `-- name: ListCitasDesc :many
SELECT id, paciente, descripcion, fecha
FROM citas
ORDER BY id DESC
`

type ListCitasDescRow struct {
	ID          int32            `json:"id"`
	Paciente    string           `json:"paciente"`
	Descripcion pgtype.Text      `json:"descripcion"`
	Fecha       pgtype.Timestamp `json:"fecha"`
}

func (q *Queries) ListCitasDesc(ctx context.Context) ([]ListCitasDescRow, error) {
	rows, err := q.db.Query(ctx, listCitasDesc)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListCitasDescRow
	for rows.Next() {
		var i ListCitasDescRow
		if err := rows.Scan(
			&i.ID,
			&i.Paciente,
			&i.Descripcion,
			&i.Fecha,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
