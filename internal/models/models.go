// Package models описывает строки таблиц, которые заполняет сидер.
package models

import "time"

// User — строка users
type User struct {
	ID               int64
	Email            string
	Password         string // plaintext, в БД попадает только PasswordHash
	PasswordHash     string
	UserType         string
	Name             string
	OrganizationType string
}

// Address — строка addresses
type Address struct {
	ID            int64
	UserID        int64
	StreetAddress string
	City          string
	State         string
	PostalCode    string
	Country       string
	Latitude      float64
	Longitude     float64
	IsDefault     bool
}

// FoodCategory — строка food_categories
type FoodCategory struct {
	ID                  int64
	Name                string
	Description         string
	StorageRequirements string
}

// FoodListing — строка food_listings
type FoodListing struct {
	ID          int64
	DonorID     int64
	AddressID   int64
	Title       string
	Description string
	CategoryID  int64
	QuantityKg  float64
	FeedsPeople int
	BestBefore  time.Time
}
