package command

import (
	"time"

	"github.com/wohure/seeder/internal/models"
	"github.com/wohure/seeder/pkg/constants"
)

// DefaultCategoryID — все объявления привязываются к первой категории
const DefaultCategoryID int64 = 1

const day = 24 * time.Hour

// TestUsers — пользователи с известными паролями
func TestUsers() []models.User {
	return []models.User{
		{
			Email:            "donor@test.com",
			Password:         "donor123",
			UserType:         constants.UserTypeDonor,
			Name:             "Test Donor",
			OrganizationType: constants.OrganizationRestaurant,
		},
		{
			Email:            "recipient@test.com",
			Password:         "recipient123",
			UserType:         constants.UserTypeRecipient,
			Name:             "Test Food Bank",
			OrganizationType: constants.OrganizationFoodBank,
		},
	}
}

// DefaultAddress — адрес по умолчанию (координаты Нью-Йорка)
func DefaultAddress(userID int64) models.Address {
	return models.Address{
		UserID:        userID,
		StreetAddress: "123 Test St",
		City:          "Test City",
		State:         "Test State",
		PostalCode:    "12345",
		Country:       "Test Country",
		Latitude:      40.7128,
		Longitude:     -74.0060,
		IsDefault:     true,
	}
}

// Categories — категории продуктов
func Categories() []models.FoodCategory {
	return []models.FoodCategory{
		{Name: "fresh", Description: "Fresh produce and perishables", StorageRequirements: "Refrigeration required"},
		{Name: "cooked", Description: "Prepared meals", StorageRequirements: "Immediate consumption recommended"},
		{Name: "canned", Description: "Canned goods", StorageRequirements: "Room temperature storage"},
		{Name: "dry", Description: "Dry goods and non-perishables", StorageRequirements: "Room temperature storage"},
	}
}

// Listings — объявления донора; best_before отсчитывается от now
func Listings(now time.Time) []models.FoodListing {
	return []models.FoodListing{
		{
			Title:       "Fresh Vegetables",
			Description: "Mixed vegetables from our restaurant",
			QuantityKg:  10.5,
			FeedsPeople: 25,
			BestBefore:  now.Add(2 * day),
		},
		{
			Title:       "Canned Soup",
			Description: "Unused canned vegetable soup",
			QuantityKg:  15.0,
			FeedsPeople: 30,
			BestBefore:  now.Add(180 * day),
		},
	}
}
