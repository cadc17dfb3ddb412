package usecase

import "testing"

func TestCartService_AggregatePreservesFirstSeenOrder(t *testing.T) {
	cart := NewCartService()

	cart.Add("A", "Mango", 350)
	cart.Add("B", "Neem", 200)
	cart.Add("A", "Mango", 350)
	cart.Add("C", "Oak", 500)

	entries := cart.Aggregate()
	if len(entries) != 3 {
		t.Fatalf("Aggregate() len = %d, want 3", len(entries))
	}

	wantOrder := []struct {
		id  string
		qty int
	}{
		{"A", 2},
		{"B", 1},
		{"C", 1},
	}
	for i, want := range wantOrder {
		if entries[i].PlantID != want.id {
			t.Errorf("entries[%d].PlantID = %q, want %q", i, entries[i].PlantID, want.id)
		}
		if entries[i].Quantity != want.qty {
			t.Errorf("entries[%d].Quantity = %d, want %d", i, entries[i].Quantity, want.qty)
		}
	}

	if got, want := cart.Total(), 2*350.0+200+500; got != want {
		t.Errorf("Total() = %v, want %v", got, want)
	}
	if got := cart.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
}

func TestCartService_FirstSeenNameAndPriceWin(t *testing.T) {
	cart := NewCartService()

	cart.Add("A", "Mango", 350)
	cart.Add("A", "Mango Deluxe", 999)

	entries := cart.Aggregate()
	if len(entries) != 1 {
		t.Fatalf("Aggregate() len = %d, want 1", len(entries))
	}
	if entries[0].Name != "Mango" {
		t.Errorf("Name = %q, want first-seen Mango", entries[0].Name)
	}
	if entries[0].UnitPrice != 350 {
		t.Errorf("UnitPrice = %v, want first-seen 350", entries[0].UnitPrice)
	}
	if entries[0].Quantity != 2 {
		t.Errorf("Quantity = %d, want 2", entries[0].Quantity)
	}
}

func TestCartService_RemoveAll(t *testing.T) {
	cart := NewCartService()

	cart.Add("A", "Mango", 350)
	cart.Add("A", "Mango", 350)
	cart.RemoveAll("A")

	if got := cart.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
	if got := cart.Aggregate(); len(got) != 0 {
		t.Errorf("Aggregate() len = %d, want 0", len(got))
	}
	if got := cart.Total(); got != 0 {
		t.Errorf("Total() = %v, want 0", got)
	}
}

func TestCartService_RemoveAllKeepsOtherLines(t *testing.T) {
	cart := NewCartService()

	cart.Add("A", "Mango", 350)
	cart.Add("B", "Neem", 200)
	cart.Add("A", "Mango", 350)
	cart.RemoveAll("A")

	entries := cart.Aggregate()
	if len(entries) != 1 {
		t.Fatalf("Aggregate() len = %d, want 1", len(entries))
	}
	if entries[0].PlantID != "B" {
		t.Errorf("PlantID = %q, want B", entries[0].PlantID)
	}
	if got := cart.Total(); got != 200 {
		t.Errorf("Total() = %v, want 200", got)
	}
}

func TestCartService_TotalOperationsAreNoOpsOnEmptyCart(t *testing.T) {
	cart := NewCartService()

	// None of these may panic or error on an empty cart
	cart.RemoveAll("missing")
	cart.Clear()

	if got := cart.Count(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
	if got := cart.Total(); got != 0 {
		t.Errorf("Total() = %v, want 0", got)
	}
	if got := cart.Aggregate(); len(got) != 0 {
		t.Errorf("Aggregate() len = %d, want 0", len(got))
	}
}

func TestCartService_Clear(t *testing.T) {
	cart := NewCartService()

	cart.Add("A", "Mango", 350)
	cart.Add("B", "Neem", 200)
	cart.Clear()

	if got := cart.Count(); got != 0 {
		t.Errorf("Count() after Clear() = %d, want 0", got)
	}

	// The cart stays usable after clearing
	cart.Add("C", "Oak", 500)
	if got := cart.Count(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
}
