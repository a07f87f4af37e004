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

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	err := store.Set("document.path", "kitab.pdf")
	require.NoError(t, err)

	val, ok := store.Get("document.path")
	assert.True(t, ok)
	assert.Equal(t, "kitab.pdf", val)

	_, ok = store.Get("nonexistent")
	assert.False(t, ok)
}

func TestConfigStore_Set_Update(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("key1", "original"))
	require.NoError(t, store.Set("key1", "updated"))

	val, ok := store.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestConfigStore_GetString(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("key1", "string_value")
	assert.Equal(t, "string_value", store.GetString("key1"))

	assert.Equal(t, "", store.GetString("nonexistent"))

	_ = store.Set("key2", 123) // int, not string
	assert.Equal(t, "", store.GetString("key2"))
}

func TestConfigStore_GetInt(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("int", 42)
	assert.Equal(t, 42, store.GetInt("int"))

	_ = store.Set("int64", int64(43))
	assert.Equal(t, 43, store.GetInt("int64"))

	_ = store.Set("float", 123.7)
	assert.Equal(t, 123, store.GetInt("float"))

	assert.Equal(t, 0, store.GetInt("nonexistent"))

	_ = store.Set("string", "not_a_number")
	assert.Equal(t, 0, store.GetInt("string"))
}

func TestConfigStore_GetFloat(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("threshold", 0.72)
	assert.Equal(t, 0.72, store.GetFloat("threshold"))

	_ = store.Set("float32", float32(0.5))
	assert.Equal(t, 0.5, store.GetFloat("float32"))

	_ = store.Set("int", 3)
	assert.Equal(t, 3.0, store.GetFloat("int"))

	assert.Equal(t, 0.0, store.GetFloat("nonexistent"))

	_ = store.Set("string", "not_a_number")
	assert.Equal(t, 0.0, store.GetFloat("string"))
}

func TestConfigStore_GetBool(t *testing.T) {
	store := NewConfigStore()

	_ = store.Set("on", true)
	assert.True(t, store.GetBool("on"))

	_ = store.Set("off", false)
	assert.False(t, store.GetBool("off"))

	assert.False(t, store.GetBool("nonexistent"))

	_ = store.Set("string", "true") // string, not bool
	assert.False(t, store.GetBool("string"))
}

func TestConfigStore_SaveAndLoad_NoOp(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())

	_ = store.Set("key1", "value1")
	assert.NoError(t, store.Save())
	assert.Equal(t, "value1", store.GetString("key1"))
}

func TestConfigStore_Path(t *testing.T) {
	store := NewConfigStore()
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_MultipleInstances(t *testing.T) {
	store1 := NewConfigStore()
	store2 := NewConfigStore()

	_ = store1.Set("key1", "value1")
	_ = store2.Set("key2", "value2")

	_, ok := store1.Get("key2")
	assert.False(t, ok)

	_, ok = store2.Get("key1")
	assert.False(t, ok)
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	numGoroutines := 50

	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		go func(id int) {
			defer wg.Done()
			key := "key-" + string(rune('A'+id%26))
			_ = store.Set(key, id)
			_, _ = store.Get(key)
			_ = store.GetInt(key)
		}(i)
	}
	wg.Wait()

	// Should not panic or deadlock
	_, _ = store.Get("key-A")
}
