package sqlc

import (
	"github.com/jackc/pgx/v5/pgtype"
)

type Cita struct {
	ID          int32            `json:"id"`
	Paciente    string           `json:"paciente"`
	Fecha       pgtype.Timestamp `json:"fecha"`
	Descripcion pgtype.Text      `json:"descripcion"`
}

type SyncHospitalCita struct {
	ID          int64              `json:"id"`
	Paciente    string             `json:"paciente"`
	Descripcion pgtype.Text        `json:"descripcion"`
	Fecha       pgtype.Timestamp   `json:"fecha"`
	SyncedAt    pgtype.Timestamptz `json:"synced_at"`
}

type SyncShoppingItem struct {
	ID          int64              `json:"id"`
	Description string             `json:"description"`
	Completed   bool               `json:"completed"`
	ListID      *int64             `json:"list_id"`
	SyncedAt    pgtype.Timestamptz `json:"synced_at"`
}

type SyncShoppingList struct {
	ID       int64              `json:"id"`
	Name     string             `json:"name"`
	SyncedAt pgtype.Timestamptz `json:"synced_at"`
}
