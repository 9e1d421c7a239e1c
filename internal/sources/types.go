package sources

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ShoppingList is a list record owned by the inventory service
type ShoppingList struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ShoppingItem is an item record owned by the inventory service
type ShoppingItem struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	ListID      *int64 `json:"list_id"`
}

// UnmarshalJSON accepts completed as a JSON boolean, a 0/1 number or null.
// The inventory service stores the flag as a tinyint.
func (i *ShoppingItem) UnmarshalJSON(data []byte) error {
	type plain ShoppingItem
	var raw struct {
		plain
		Completed json.RawMessage `json:"completed"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	completed, err := parseFlag(raw.Completed)
	if err != nil {
		return fmt.Errorf("item %d: %w", raw.ID, err)
	}

	*i = ShoppingItem(raw.plain)
	i.Completed = completed
	return nil
}

func parseFlag(raw json.RawMessage) (bool, error) {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	switch s {
	case "", "null", "false", "0":
		return false, nil
	case "true", "1":
		return true, nil
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n != 0, nil
	}
	return false, fmt.Errorf("invalid completed flag %s", string(raw))
}

// Appointment is a cita record owned by the secondary store
type Appointment struct {
	ID          int64      `json:"id"`
	Patient     string     `json:"paciente"`
	Description *string    `json:"descripcion"`
	Date        *time.Time `json:"fecha"`
}
