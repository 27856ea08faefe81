package cart_test

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"food-ordering-api/cart"
	"food-ordering-api/models"
)

func price(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	return decimal.RequireFromString(s)
}

func TestAddItemSingleRestaurantInvariant(t *testing.T) {
	restaurantA := models.Restaurant{ID: 1, Name: "Spice Garden"}
	restaurantB := models.Restaurant{ID: 2, Name: "Burger Barn"}
	dosa := models.MenuItem{ID: 10, Name: "Masala Dosa", Price: price(t, "129.00")}
	burger := models.MenuItem{ID: 20, Name: "Cheeseburger", Price: price(t, "9.99")}

	c := cart.New()
	if !c.AddItem(dosa, restaurantA) {
		t.Fatal("first add should succeed")
	}
	if c.AddItem(burger, restaurantB) {
		t.Error("adding from a second restaurant must be rejected")
	}
	if len(c.Items) != 1 || c.Items[0].MenuItemID != dosa.ID {
		t.Errorf("cart must be unchanged after rejection, got %+v", c.Items)
	}
	if c.RestaurantID != restaurantA.ID {
		t.Errorf("restaurant lock changed: got %d", c.RestaurantID)
	}

	// Same item again increments quantity
	if !c.AddItem(dosa, restaurantA) {
		t.Fatal("re-adding the same item should succeed")
	}
	if c.Items[0].Quantity != 2 {
		t.Errorf("quantity = %d, want 2", c.Items[0].Quantity)
	}
}

func TestRemoveItemClearsRestaurant(t *testing.T) {
	restaurant := models.Restaurant{ID: 1, Name: "Spice Garden"}
	item := models.MenuItem{ID: 10, Name: "Paneer Tikka", Price: price(t, "249.00")}

	c := cart.New()
	c.AddItem(item, restaurant)
	c.RemoveItem(item.ID)

	if len(c.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(c.Items))
	}
	if c.RestaurantID != 0 {
		t.Error("restaurant association must clear when the cart empties")
	}

	// A new restaurant may now be chosen
	other := models.Restaurant{ID: 2, Name: "Burger Barn"}
	if !c.AddItem(models.MenuItem{ID: 20, Name: "Fries", Price: price(t, "5.99")}, other) {
		t.Error("empty cart should accept any restaurant")
	}
}

func TestUpdateQuantity(t *testing.T) {
	restaurant := models.Restaurant{ID: 1, Name: "Spice Garden"}
	item := models.MenuItem{ID: 10, Name: "Garlic Naan", Price: price(t, "49.00")}

	c := cart.New()
	c.AddItem(item, restaurant)

	c.UpdateQuantity(item.ID, 4)
	if c.Items[0].Quantity != 4 {
		t.Errorf("quantity = %d, want 4", c.Items[0].Quantity)
	}

	// Zero or negative quantity removes the line
	c.UpdateQuantity(item.ID, 0)
	if len(c.Items) != 0 {
		t.Error("zero quantity should remove the line")
	}
	if c.RestaurantID != 0 {
		t.Error("restaurant should clear when removal empties the cart")
	}
}

func TestTotalIsExact(t *testing.T) {
	restaurant := models.Restaurant{ID: 1, Name: "Burger Barn"}
	c := cart.New()
	c.AddItem(models.MenuItem{ID: 1, Name: "Shake", Price: price(t, "4.99")}, restaurant)
	c.AddItem(models.MenuItem{ID: 2, Name: "Fries", Price: price(t, "5.99")}, restaurant)
	c.AddItem(models.MenuItem{ID: 3, Name: "Pie", Price: price(t, "6.99")}, restaurant)

	want := price(t, "17.97")
	if got := c.Total(); !got.Equal(want) {
		t.Errorf("Total() = %s, want %s", got, want)
	}

	if c.ItemCount() != 3 {
		t.Errorf("ItemCount() = %d, want 3", c.ItemCount())
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	restaurant := models.Restaurant{ID: 7, Name: "Bella Italia"}
	c := cart.New()
	c.AddItem(models.MenuItem{ID: 1, Name: "Margherita", Price: price(t, "12.99")}, restaurant)
	c.UpdateQuantity(1, 2)

	path := filepath.Join(t.TempDir(), "cart.json")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	restored, err := cart.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if restored.RestaurantID != restaurant.ID {
		t.Errorf("restored restaurant = %d, want %d", restored.RestaurantID, restaurant.ID)
	}
	if len(restored.Items) != 1 || restored.Items[0].Quantity != 2 {
		t.Errorf("restored items = %+v", restored.Items)
	}
	if !restored.Total().Equal(price(t, "25.98")) {
		t.Errorf("restored total = %s, want 25.98", restored.Total())
	}
}

func TestLoadMissingFileYieldsEmptyCart(t *testing.T) {
	c, err := cart.Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load on missing file: %v", err)
	}
	if len(c.Items) != 0 || c.RestaurantID != 0 {
		t.Errorf("expected empty cart, got %+v", c)
	}
}
