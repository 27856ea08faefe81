package config

import (
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"food-ordering-api/models"
)

// SeedUsers provisions the demo accounts if none exist. Roles and countries
// are fixed at provisioning; there is no registration or mutation path.
func SeedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("✅ Users already exist, skipping initialization")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []models.User{
		{Name: "Nick Fury", Email: "nick@slooze.xyz", Role: models.RoleAdmin, Country: models.CountryGlobal},
		{Name: "Captain Marvel", Email: "marvel@slooze.xyz", Role: models.RoleManager, Country: models.CountryIndia},
		{Name: "Captain America", Email: "america@slooze.xyz", Role: models.RoleManager, Country: models.CountryAmerica},
		{Name: "Thanos", Email: "thanos@slooze.xyz", Role: models.RoleMember, Country: models.CountryIndia},
		{Name: "Thor", Email: "thor@slooze.xyz", Role: models.RoleMember, Country: models.CountryIndia},
		{Name: "Travis", Email: "travis@slooze.xyz", Role: models.RoleMember, Country: models.CountryAmerica},
	}
	for i := range users {
		users[i].PasswordHash = string(hash)
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	log.Println("👥 Default users created successfully")
	log.Println("   Admin: nick@slooze.xyz / password123")
	log.Println("   Manager (India): marvel@slooze.xyz / password123")
	log.Println("   Manager (America): america@slooze.xyz / password123")
	return nil
}

// SeedCatalog provisions a small two-country restaurant catalog if empty.
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Restaurant{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }

	restaurants := []struct {
		restaurant models.Restaurant
		menu       []models.MenuItem
	}{
		{
			restaurant: models.Restaurant{
				Name: "Spice Garden", Description: "Authentic North Indian cuisine",
				Country: models.CountryIndia, Cuisine: "North Indian", Rating: 4.5, IsActive: true,
			},
			menu: []models.MenuItem{
				{Name: "Paneer Tikka", Price: price("249.00"), Category: models.CategoryAppetizer, IsVeg: true, IsAvailable: true},
				{Name: "Butter Chicken", Price: price("349.00"), Category: models.CategoryMainCourse, IsVeg: false, IsAvailable: true},
				{Name: "Garlic Naan", Price: price("49.00"), Category: models.CategorySides, IsVeg: true, IsAvailable: true},
				{Name: "Gulab Jamun", Price: price("99.00"), Category: models.CategoryDessert, IsVeg: true, IsAvailable: true},
				{Name: "Masala Chai", Price: price("39.00"), Category: models.CategoryBeverage, IsVeg: true, IsAvailable: true},
			},
		},
		{
			restaurant: models.Restaurant{
				Name: "Dosa Palace", Description: "South Indian specialties",
				Country: models.CountryIndia, Cuisine: "South Indian", Rating: 4.3, IsActive: true,
			},
			menu: []models.MenuItem{
				{Name: "Masala Dosa", Price: price("129.00"), Category: models.CategoryMainCourse, IsVeg: true, IsAvailable: true},
				{Name: "Idli Sambar", Price: price("89.00"), Category: models.CategoryAppetizer, IsVeg: true, IsAvailable: true},
				{Name: "Filter Coffee", Price: price("49.00"), Category: models.CategoryBeverage, IsVeg: true, IsAvailable: true},
			},
		},
		{
			restaurant: models.Restaurant{
				Name: "Burger Barn", Description: "Classic American burgers",
				Country: models.CountryAmerica, Cuisine: "American", Rating: 4.2, IsActive: true,
			},
			menu: []models.MenuItem{
				{Name: "Classic Cheeseburger", Price: price("9.99"), Category: models.CategoryMainCourse, IsVeg: false, IsAvailable: true},
				{Name: "Loaded Fries", Price: price("5.99"), Category: models.CategorySides, IsVeg: true, IsAvailable: true},
				{Name: "Chocolate Shake", Price: price("4.99"), Category: models.CategoryBeverage, IsVeg: true, IsAvailable: true},
				{Name: "Apple Pie", Price: price("6.99"), Category: models.CategoryDessert, IsVeg: true, IsAvailable: true},
			},
		},
		{
			restaurant: models.Restaurant{
				Name: "Bella Italia", Description: "Wood-fired pizza and pasta",
				Country: models.CountryAmerica, Cuisine: "Italian", Rating: 4.6, IsActive: true,
			},
			menu: []models.MenuItem{
				{Name: "Margherita Pizza", Price: price("12.99"), Category: models.CategoryMainCourse, IsVeg: true, IsAvailable: true},
				{Name: "Garlic Bread", Price: price("4.49"), Category: models.CategoryAppetizer, IsVeg: true, IsAvailable: true},
				{Name: "Tiramisu", Price: price("7.99"), Category: models.CategoryDessert, IsVeg: true, IsAvailable: true},
			},
		},
	}

	for _, entry := range restaurants {
		restaurant := entry.restaurant
		if err := db.Create(&restaurant).Error; err != nil {
			return err
		}
		for i := range entry.menu {
			entry.menu[i].RestaurantID = restaurant.ID
			entry.menu[i].Country = restaurant.Country
		}
		if err := db.Create(&entry.menu).Error; err != nil {
			return err
		}
	}

	log.Println("🍽️  Seeded restaurant catalog")
	return nil
}
