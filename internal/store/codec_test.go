package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskpad/internal/task"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		tasks []task.Task
	}{
		{name: "empty", tasks: []task.Task{}},
		{name: "nil treated as empty", tasks: nil},
		{
			name: "mixed flags and unicode titles",
			tasks: []task.Task{
				{ID: "a", Title: "Buy milk"},
				{ID: "b", Title: "Étude № 4", Completed: true},
				{ID: "c", Title: "emoji ✔ allowed"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := encode(tt.tasks)
			require.NoError(t, err)

			got, err := decode(data)
			require.NoError(t, err)

			want := tt.tasks
			if want == nil {
				want = []task.Task{}
			}
			assert.Equal(t, want, got)
		})
	}
}

func TestEncodeEmptyIsArray(t *testing.T) {
	data, err := encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data), "the snapshot is always a JSON array")
}

func TestDecodeKeepsStoredOrder(t *testing.T) {
	data := []byte(`[
	  {"id": "z", "title": "last added first"},
	  {"id": "a", "title": "then this"},
	  {"id": "m", "title": "then that"}
	]`)

	got, err := decode(data)
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, "z", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "m", got[2].ID)
}
