package sources

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingItem_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		input         string
		wantCompleted bool
		wantListID    *int64
		wantErr       bool
	}{
		{name: "boolean true", input: `{"id":1,"description":"milk","completed":true,"list_id":4}`, wantCompleted: true, wantListID: ptr(4)},
		{name: "boolean false", input: `{"id":1,"description":"milk","completed":false,"list_id":4}`, wantListID: ptr(4)},
		{name: "tinyint one", input: `{"id":1,"description":"milk","completed":1,"list_id":4}`, wantCompleted: true, wantListID: ptr(4)},
		{name: "tinyint zero", input: `{"id":1,"description":"milk","completed":0}`},
		{name: "null", input: `{"id":1,"description":"milk","completed":null}`},
		{name: "missing", input: `{"id":1,"description":"milk"}`},
		{name: "string flag", input: `{"id":1,"description":"milk","completed":"1"}`, wantCompleted: true},
		{name: "garbage", input: `{"id":1,"description":"milk","completed":"yes please"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var item ShoppingItem
			err := json.Unmarshal([]byte(tt.input), &item)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(1), item.ID)
			assert.Equal(t, "milk", item.Description)
			assert.Equal(t, tt.wantCompleted, item.Completed)
			assert.Equal(t, tt.wantListID, item.ListID)
		})
	}
}

func ptr(v int64) *int64 { return &v }
