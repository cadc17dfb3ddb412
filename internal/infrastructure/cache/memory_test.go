package cache

import (
	"context"
	"testing"
	"time"

	"github.com/plantshop/backend/internal/domain"
)

func TestMemoryCache_SetAndGet(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	tests := []struct {
		name  string
		key   string
		value interface{}
		ttl   time.Duration
	}{
		{
			name:  "store and retrieve string",
			key:   "test-key-1",
			value: "test-value",
			ttl:   1 * time.Minute,
		},
		{
			name: "store and retrieve plant slice",
			key:  "catalog:plants:all",
			value: []*domain.Plant{
				{ID: "1", Name: "Mango", Price: 350},
				{ID: "2", Name: "Neem", Price: 200},
			},
			ttl: 1 * time.Minute,
		},
		{
			name: "store and retrieve category slice",
			key:  "catalog:categories",
			value: []*domain.Category{
				{ID: "1", Name: "Fruit"},
			},
			ttl: 1 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := cache.Set(ctx, tt.key, tt.value, tt.ttl); err != nil {
				t.Fatalf("Set() error = %v", err)
			}

			got, err := cache.Get(ctx, tt.key)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}

			// Values are stored as given, so typed slices survive round trips
			switch want := tt.value.(type) {
			case []*domain.Plant:
				plants, ok := got.([]*domain.Plant)
				if !ok {
					t.Fatalf("Get() type = %T, want []*domain.Plant", got)
				}
				if len(plants) != len(want) {
					t.Errorf("len = %d, want %d", len(plants), len(want))
				}
				if plants[0].Name != want[0].Name {
					t.Errorf("Name = %q, want %q", plants[0].Name, want[0].Name)
				}
			case []*domain.Category:
				categories, ok := got.([]*domain.Category)
				if !ok {
					t.Fatalf("Get() type = %T, want []*domain.Category", got)
				}
				if categories[0].ID != want[0].ID {
					t.Errorf("ID = %q, want %q", categories[0].ID, want[0].ID)
				}
			default:
				if got != tt.value {
					t.Errorf("Get() = %v, want %v", got, tt.value)
				}
			}
		})
	}
}

func TestMemoryCache_Expiration(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	if err := cache.Set(ctx, "expiring", "value", 1*time.Millisecond); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	if _, err := cache.Get(ctx, "expiring"); err != domain.ErrCacheMiss {
		t.Errorf("Get() after expiration error = %v, want ErrCacheMiss", err)
	}

	exists, err := cache.Exists(ctx, "expiring")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true for expired key, want false")
	}
}

func TestMemoryCache_GetMissing(t *testing.T) {
	cache := NewMemoryCache()

	if _, err := cache.Get(context.Background(), "nope"); err != domain.ErrCacheMiss {
		t.Errorf("Get() error = %v, want ErrCacheMiss", err)
	}
}

func TestMemoryCache_Delete(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", "value", time.Minute)
	if err := cache.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := cache.Get(ctx, "key"); err != domain.ErrCacheMiss {
		t.Errorf("Get() after delete error = %v, want ErrCacheMiss", err)
	}

	// Deleting a missing key is a no-op
	if err := cache.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete() of missing key error = %v, want nil", err)
	}
}

func TestMemoryCache_Exists(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "key", "value", time.Minute)

	exists, err := cache.Exists(ctx, "key")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists() = false, want true")
	}

	exists, err = cache.Exists(ctx, "missing")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true for missing key, want false")
	}
}

func TestMemoryCache_SizeAndClear(t *testing.T) {
	cache := NewMemoryCache()
	ctx := context.Background()

	cache.Set(ctx, "a", 1, time.Minute)
	cache.Set(ctx, "b", 2, time.Minute)

	if got := cache.Size(); got != 2 {
		t.Errorf("Size() = %d, want 2", got)
	}

	cache.Clear()

	if got := cache.Size(); got != 0 {
		t.Errorf("Size() after Clear() = %d, want 0", got)
	}
}
