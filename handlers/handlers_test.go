package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"food-ordering-api/config"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
	"food-ordering-api/routes"
)

// one bcrypt hash shared by every test user; MinCost keeps the suite fast
var testHash = func() string {
	h, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(h)
}()

type fixtures struct {
	admin     models.User
	managerIN models.User
	managerUS models.User
	memberIN  models.User
	memberUS  models.User
}

// setupTest gives each test its own in-memory database and router
func setupTest(t *testing.T) (*gin.Engine, *gorm.DB, fixtures) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	config.DB = db

	f := fixtures{
		admin:     models.User{Name: "Nick Fury", Email: "nick@slooze.xyz", PasswordHash: testHash, Role: models.RoleAdmin, Country: models.CountryGlobal},
		managerIN: models.User{Name: "Captain Marvel", Email: "marvel@slooze.xyz", PasswordHash: testHash, Role: models.RoleManager, Country: models.CountryIndia},
		managerUS: models.User{Name: "Captain America", Email: "america@slooze.xyz", PasswordHash: testHash, Role: models.RoleManager, Country: models.CountryAmerica},
		memberIN:  models.User{Name: "Thanos", Email: "thanos@slooze.xyz", PasswordHash: testHash, Role: models.RoleMember, Country: models.CountryIndia},
		memberUS:  models.User{Name: "Travis", Email: "travis@slooze.xyz", PasswordHash: testHash, Role: models.RoleMember, Country: models.CountryAmerica},
	}
	for _, u := range []*models.User{&f.admin, &f.managerIN, &f.managerUS, &f.memberIN, &f.memberUS} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("create user %s: %v", u.Email, err)
		}
	}

	r := gin.New()
	routes.SetupRoutes(r)
	return r, db, f
}

type catalog struct {
	india    models.Restaurant
	america  models.Restaurant
	inactive models.Restaurant

	paneer      models.MenuItem // India, 100.00
	naan        models.MenuItem // India, 50.00
	offMenuDosa models.MenuItem // India, unavailable
	shake       models.MenuItem // America, 4.99
	fries       models.MenuItem // America, 5.99
	pie         models.MenuItem // America, 6.99
}

func seedCatalog(t *testing.T, db *gorm.DB) catalog {
	t.Helper()
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	cat := catalog{
		india:    models.Restaurant{Name: "Spice Garden", Country: models.CountryIndia, Cuisine: "North Indian", IsActive: true},
		america:  models.Restaurant{Name: "Burger Barn", Country: models.CountryAmerica, Cuisine: "American", IsActive: true},
		inactive: models.Restaurant{Name: "Closed Kitchen", Country: models.CountryIndia, Cuisine: "Fusion", IsActive: false},
	}
	for _, r := range []*models.Restaurant{&cat.india, &cat.america, &cat.inactive} {
		if err := db.Create(r).Error; err != nil {
			t.Fatalf("create restaurant %s: %v", r.Name, err)
		}
	}

	cat.paneer = models.MenuItem{RestaurantID: cat.india.ID, Name: "Paneer Tikka", Price: price("100.00"), Category: models.CategoryAppetizer, IsAvailable: true, Country: models.CountryIndia}
	cat.naan = models.MenuItem{RestaurantID: cat.india.ID, Name: "Garlic Naan", Price: price("50.00"), Category: models.CategorySides, IsAvailable: true, Country: models.CountryIndia}
	cat.offMenuDosa = models.MenuItem{RestaurantID: cat.india.ID, Name: "Seasonal Dosa", Price: price("75.00"), Category: models.CategoryMainCourse, IsAvailable: false, Country: models.CountryIndia}
	cat.shake = models.MenuItem{RestaurantID: cat.america.ID, Name: "Chocolate Shake", Price: price("4.99"), Category: models.CategoryBeverage, IsAvailable: true, Country: models.CountryAmerica}
	cat.fries = models.MenuItem{RestaurantID: cat.america.ID, Name: "Loaded Fries", Price: price("5.99"), Category: models.CategorySides, IsAvailable: true, Country: models.CountryAmerica}
	cat.pie = models.MenuItem{RestaurantID: cat.america.ID, Name: "Apple Pie", Price: price("6.99"), Category: models.CategoryDessert, IsAvailable: true, Country: models.CountryAmerica}

	for _, m := range []*models.MenuItem{&cat.paneer, &cat.naan, &cat.offMenuDosa, &cat.shake, &cat.fries, &cat.pie} {
		if err := db.Create(m).Error; err != nil {
			t.Fatalf("create menu item %s: %v", m.Name, err)
		}
	}
	return cat
}

func tokenFor(t *testing.T, user models.User) string {
	t.Helper()
	token, err := middleware.GenerateToken(&user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func doRequest(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func wantStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, want, w.Body.String())
	}
}
