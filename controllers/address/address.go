package addressControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wirix/market-sfu/models"
	"gorm.io/gorm"
)

type AddressInput struct {
	FirstName  string  `json:"firstName" binding:"required"`
	LastName   string  `json:"lastName" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      string  `json:"phone"`
	Country    string  `json:"country" binding:"required"`
	City       string  `json:"city" binding:"required"`
	Street     string  `json:"street" binding:"required"`
	Apartment  *string `json:"apartment"`
	PostalCode string  `json:"postalCode" binding:"required"`
}

type AddressUpdateInput struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Country    *string `json:"country"`
	City       *string `json:"city"`
	Street     *string `json:"street"`
	Apartment  *string `json:"apartment"`
	PostalCode *string `json:"postalCode"`
}

func sessionUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, _ := v.(string)
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

// GET /user/addresses
func GetAddresses(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}

		var addresses []models.Address
		if err := db.Where("user_id = ?", userID).Order("created_at asc").Find(&addresses).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addresses"})
			return
		}

		c.JSON(http.StatusOK, addresses)
	}
}

// POST /user/addresses
//
// The first address in an empty book automatically becomes the default.
func AddAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}

		var input AddressInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var count int64
		if err := db.Model(&models.Address{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check address book"})
			return
		}

		address := models.Address{
			UserID:     userID,
			FirstName:  input.FirstName,
			LastName:   input.LastName,
			Email:      input.Email,
			Phone:      input.Phone,
			Country:    input.Country,
			City:       input.City,
			Street:     input.Street,
			Apartment:  input.Apartment,
			PostalCode: input.PostalCode,
			IsDefault:  count == 0,
		}

		if err := db.Create(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save address"})
			return
		}

		c.JSON(http.StatusCreated, address)
	}
}

// PUT /user/addresses/:id
func UpdateAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}

		var address models.Address
		if err := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&address).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch address"})
			}
			return
		}

		var input AddressUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.FirstName != nil {
			address.FirstName = *input.FirstName
		}
		if input.LastName != nil {
			address.LastName = *input.LastName
		}
		if input.Email != nil {
			address.Email = *input.Email
		}
		if input.Phone != nil {
			address.Phone = *input.Phone
		}
		if input.Country != nil {
			address.Country = *input.Country
		}
		if input.City != nil {
			address.City = *input.City
		}
		if input.Apartment != nil {
			address.Apartment = input.Apartment
		}
		if input.Street != nil {
			address.Street = *input.Street
		}
		if input.PostalCode != nil {
			address.PostalCode = *input.PostalCode
		}

		if err := db.Save(&address).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update address"})
			return
		}

		c.JSON(http.StatusOK, address)
	}
}

// DELETE /user/addresses/:id
func DeleteAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}

		result := db.Where("id = ? AND user_id = ?", c.Param("id"), userID).Delete(&models.Address{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete address"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Address deleted"})
	}
}

// markDefault flips IsDefault on the target address and clears it on
// every other entry, keeping exactly one default in a non-empty book.
// Reports whether the target was found.
func markDefault(addresses []models.Address, addressID uint) bool {
	found := false
	for i := range addresses {
		addresses[i].IsDefault = addresses[i].ID == addressID
		if addresses[i].IsDefault {
			found = true
		}
	}
	return found
}

// POST /user/addresses/:id/default
func SetDefaultAddress(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := sessionUserID(c)
		if !ok {
			return
		}

		addressID, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid address ID"})
			return
		}

		var addresses []models.Address
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", userID).Order("created_at asc").Find(&addresses).Error; err != nil {
				return err
			}
			if !markDefault(addresses, uint(addressID)) {
				return gorm.ErrRecordNotFound
			}
			return tx.Save(&addresses).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Address not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set default address"})
			}
			return
		}

		c.JSON(http.StatusOK, addresses)
	}
}
