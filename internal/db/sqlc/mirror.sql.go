package sqlc

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const listHospitalCitas = `-- name: ListHospitalCitas :many
SELECT id, paciente, descripcion, fecha, synced_at
FROM sync_hospital_citas
ORDER BY id DESC
`

func (q *Queries) ListHospitalCitas(ctx context.Context) ([]SyncHospitalCita, error) {
	rows, err := q.db.Query(ctx, listHospitalCitas)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SyncHospitalCita
	for rows.Next() {
		var i SyncHospitalCita
		if err := rows.Scan(
			&i.ID,
			&i.Paciente,
			&i.Descripcion,
			&i.Fecha,
			&i.SyncedAt,
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

const listShoppingItems = `-- name: ListShoppingItems :many
SELECT id, description, completed, list_id, synced_at
FROM sync_shopping_items
ORDER BY id
`

func (q *Queries) ListShoppingItems(ctx context.Context) ([]SyncShoppingItem, error) {
	rows, err := q.db.Query(ctx, listShoppingItems)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SyncShoppingItem
	for rows.Next() {
		var i SyncShoppingItem
		if err := rows.Scan(
			&i.ID,
			&i.Description,
			&i.Completed,
			&i.ListID,
			&i.SyncedAt,
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

const listShoppingLists = `-- name: ListShoppingLists :many
SELECT id, name, synced_at
FROM sync_shopping_lists
ORDER BY id
`

func (q *Queries) ListShoppingLists(ctx context.Context) ([]SyncShoppingList, error) {
	rows, err := q.db.Query(ctx, listShoppingLists)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SyncShoppingList
	for rows.Next() {
		var i SyncShoppingList
		if err := rows.Scan(&i.ID, &i.Name, &i.SyncedAt); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertHospitalCita = `-- name: UpsertHospitalCita :exec
INSERT INTO sync_hospital_citas (id, paciente, descripcion, fecha)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE
SET paciente = EXCLUDED.paciente,
    descripcion = EXCLUDED.descripcion,
    fecha = EXCLUDED.fecha,
    synced_at = now()
`

type UpsertHospitalCitaParams struct {
	ID          int64            `json:"id"`
	Paciente    string           `json:"paciente"`
	Descripcion pgtype.Text      `json:"descripcion"`
	Fecha       pgtype.Timestamp `json:"fecha"`
}

func (q *Queries) UpsertHospitalCita(ctx context.Context, arg UpsertHospitalCitaParams) error {
	_, err := q.db.Exec(ctx, upsertHospitalCita,
		arg.ID,
		arg.Paciente,
		arg.Descripcion,
		arg.Fecha,
	)
	return err
}

const upsertShoppingItem = `-- name: UpsertShoppingItem :exec
INSERT INTO sync_shopping_items (id, description, completed, list_id)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE
SET description = EXCLUDED.description,
    completed = EXCLUDED.completed,
    list_id = EXCLUDED.list_id,
    synced_at = now()
`

type UpsertShoppingItemParams struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	ListID      *int64 `json:"list_id"`
}

func (q *Queries) UpsertShoppingItem(ctx context.Context, arg UpsertShoppingItemParams) error {
	_, err := q.db.Exec(ctx, upsertShoppingItem,
		arg.ID,
		arg.Description,
		arg.Completed,
		arg.ListID,
	)
	return err
}

const upsertShoppingList = `-- name: UpsertShoppingList :exec
INSERT INTO sync_shopping_lists (id, name)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    synced_at = now()
`

type UpsertShoppingListParams struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (q *Queries) UpsertShoppingList(ctx context.Context, arg UpsertShoppingListParams) error {
	_, err := q.db.Exec(ctx, upsertShoppingList, arg.ID, arg.Name)
	return err
}
