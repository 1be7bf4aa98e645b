package constants

// Типы пользователей (users.user_type)
const (
	UserTypeDonor     = "donor"
	UserTypeRecipient = "recipient"
)

// Типы организаций
const (
	OrganizationRestaurant = "restaurant"
	OrganizationFoodBank   = "food_bank"
)

// Статус нового объявления (food_listings.status DEFAULT)
const ListingStatusAvailable = "available"
