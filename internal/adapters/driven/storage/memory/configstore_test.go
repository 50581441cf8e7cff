package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	store := NewConfigStore()
	require.NotNil(t, store)
	assert.NotNil(t, store.values)
}

func TestConfigStore_Set_Success(t *testing.T) {
	store := NewConfigStore()

	err := store.Set("key1", "value1")
	require.NoError(t, err)

	val, ok := store.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, "value1", val)
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("key1", "original"))
	require.NoError(t, store.Set("key1", "updated"))

	val, ok := store.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestConfigStore_Get_NotFound(t *testing.T) {
	store := NewConfigStore()

	val, ok := store.Get("nonexistent")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("key1", "string_value")
	_ = store.Set("key2", 123)

	assert.Equal(t, "string_value", store.GetString("key1"))
	assert.Equal(t, "", store.GetString("key2"))
	assert.Equal(t, "", store.GetString("nonexistent"))
}

func TestConfigStore_GetFloat(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		want   float64
		wantOK bool
	}{
		{"float64", 0.25, 0.25, true},
		{"int", 2, 2, true},
		{"int64", int64(3), 3, true},
		{"string", "0.5", 0, false},
		{"bool", true, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewConfigStore()
			_ = store.Set("key", tt.value)

			got, ok := store.GetFloat("key")
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := NewConfigStore().GetFloat("nonexistent")
	assert.False(t, ok)
}

func TestConfigStore_UnsetAndKeys(t *testing.T) {
	store := NewConfigStore()
	_ = store.Set("track.colormap", "magma")
	_ = store.Set("links.radius", 0.01)

	assert.Equal(t, []string{"links.radius", "track.colormap"}, store.Keys())

	require.NoError(t, store.Unset("links.radius"))
	assert.Equal(t, []string{"track.colormap"}, store.Keys())

	// Missing key is fine
	assert.NoError(t, store.Unset("nonexistent"))
}

func TestConfigStore_Load_NoOp(t *testing.T) {
	store := NewConfigStore()

	err := store.Load()
	assert.NoError(t, err)
	assert.Empty(t, store.Keys())
}

func TestConfigStore_Path(t *testing.T) {
	assert.Equal(t, ":memory:", NewConfigStore().Path())
}

func TestConfigStore_Concurrency_MixedOperations(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	numOperations := 100

	for i := 0; i < 10; i++ {
		_ = store.Set("key-"+string(rune('0'+i)), "value-"+string(rune('0'+i)))
	}

	wg.Add(numOperations)
	for i := 0; i < numOperations; i++ {
		go func(id int) {
			defer wg.Done()
			switch id % 5 {
			case 0:
				_ = store.Set("key-concurrent-"+string(rune('A'+id%26)), float64(id))
			case 1:
				_, _ = store.Get("key-" + string(rune('0'+id%10)))
			case 2:
				_ = store.GetString("key-" + string(rune('0'+id%10)))
			case 3:
				_, _ = store.GetFloat("key-concurrent-" + string(rune('A'+id%26)))
			case 4:
				_ = store.Keys()
			}
		}(i)
	}
	wg.Wait()

	// Should not panic or deadlock
	_, _ = store.Get("key-0")
}
