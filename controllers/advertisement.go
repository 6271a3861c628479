package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlk/tour-api/db"
	"github.com/wanderlk/tour-api/models"
	"github.com/wanderlk/tour-api/utils"
)

// GetActiveAdvertisements returns the currently active advertisements.
// Public endpoint, no auth.
func GetActiveAdvertisements(c *fiber.Ctx) error {
	var ads []models.Advertisement
	if err := db.DB.Where("is_active = ?", true).Order("created_at DESC").Find(&ads).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch advertisements",
			Error:   err.Error(),
		})
	}
	return c.JSON(ads)
}

// GetAllAdvertisements returns every advertisement for the admin panel.
func GetAllAdvertisements(c *fiber.Ctx) error {
	var ads []models.Advertisement
	if err := db.DB.Order("created_at DESC").Find(&ads).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch advertisements",
			Error:   err.Error(),
		})
	}
	return c.JSON(ads)
}

// CreateAdvertisement stores a new advertisement with its uploaded image.
func CreateAdvertisement(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	title := c.FormValue("title")
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Title is required",
		})
	}

	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Image is required",
		})
	}

	filename, err := utils.SaveUploadedImage(c, file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save image",
			Error:   err.Error(),
		})
	}

	ad := models.Advertisement{
		Title:     title,
		Image:     filename,
		IsActive:  true,
		CreatedBy: userID,
	}
	if err := db.DB.Create(&ad).Error; err != nil {
		utils.RemoveUploadedImage(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create advertisement",
			Error:   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(ad)
}

// UpdateAdvertisement edits an advertisement. When a replacement image is
// sent, the old file is removed from disk before the row is updated to
// reference the new filename.
func UpdateAdvertisement(c *fiber.Ctx) error {
	id := c.Params("id")

	var ad models.Advertisement
	if err := db.DB.First(&ad, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Advertisement not found",
			Error:   err.Error(),
		})
	}

	if title := c.FormValue("title"); title != "" {
		ad.Title = title
	}

	if file, err := c.FormFile("image"); err == nil {
		filename, err := utils.SaveUploadedImage(c, file)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to save image",
				Error:   err.Error(),
			})
		}
		// Old file goes first; a failed removal is logged, not fatal.
		utils.RemoveUploadedImage(ad.Image)
		ad.Image = filename
	}

	if err := db.DB.Save(&ad).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update advertisement",
			Error:   err.Error(),
		})
	}

	return c.JSON(ad)
}

// ToggleAdvertisement flips the active flag.
func ToggleAdvertisement(c *fiber.Ctx) error {
	id := c.Params("id")

	var ad models.Advertisement
	if err := db.DB.First(&ad, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Advertisement not found",
			Error:   err.Error(),
		})
	}

	ad.IsActive = !ad.IsActive
	if err := db.DB.Save(&ad).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update advertisement",
			Error:   err.Error(),
		})
	}

	return c.JSON(ad)
}

// DeleteAdvertisement removes an advertisement and its stored image.
func DeleteAdvertisement(c *fiber.Ctx) error {
	id := c.Params("id")

	var ad models.Advertisement
	if err := db.DB.First(&ad, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Advertisement not found",
			Error:   err.Error(),
		})
	}

	utils.RemoveUploadedImage(ad.Image)

	if err := db.DB.Delete(&ad).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete advertisement",
			Error:   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
