package sqlc

import (
	"context"
)

type Querier interface {
	ListCitas(ctx context.Context) ([]ListCitasRow, error)
	ListCitasDesc(ctx context.Context) ([]ListCitasDescRow, error)
	ListHospitalCitas(ctx context.Context) ([]SyncHospitalCita, error)
	ListShoppingItems(ctx context.Context) ([]SyncShoppingItem, error)
	ListShoppingLists(ctx context.Context) ([]SyncShoppingList, error)
	UpsertHospitalCita(ctx context.Context, arg UpsertHospitalCitaParams) error
	UpsertShoppingItem(ctx context.Context, arg UpsertShoppingItemParams) error
	UpsertShoppingList(ctx context.Context, arg UpsertShoppingListParams) error
}

var _ Querier = (*Queries)(nil)
