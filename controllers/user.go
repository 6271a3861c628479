package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlk/tour-api/db"
	"github.com/wanderlk/tour-api/models"
	"github.com/wanderlk/tour-api/utils"
)

// GetAllUsers returns every account, optionally filtered by role name.
func GetAllUsers(c *fiber.Ctx) error {
	query := db.DB.Preload("Role")

	if role := c.Query("role"); role != "" {
		query = query.Joins("JOIN roles ON roles.id = users.role_id").
			Where("roles.name = ?", role)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch users",
			Error:   err.Error(),
		})
	}

	for i := range users {
		users[i].Password = ""
	}

	return c.JSON(users)
}

// GetUserByID returns a single user by ID
func GetUserByID(c *fiber.Ctx) error {
	id := c.Params("id")
	var user models.User
	if err := db.DB.Preload("Role").First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
			Error:   err.Error(),
		})
	}
	user.Password = ""
	return c.JSON(user)
}

// UpdateUser lets an admin edit a user's name, mobile and role.
func UpdateUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var user models.User
	if err := db.DB.First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
			Error:   err.Error(),
		})
	}

	var input struct {
		Name   string `json:"name"`
		Mobile string `json:"mobile"`
		RoleID uint   `json:"role_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Mobile != "" {
		user.Mobile = input.Mobile
	}
	if input.RoleID != 0 {
		var role models.Role
		if err := db.DB.First(&role, input.RoleID).Error; err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Unknown role",
				Error:   err.Error(),
			})
		}
		user.RoleID = role.ID
	}

	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update user",
			Error:   err.Error(),
		})
	}

	user.Password = ""
	return c.JSON(user)
}

// DeleteUser removes a non-admin account. Admin accounts can never be
// deleted, regardless of who asks. The delete is a hard delete so the
// email can be reused by a later registration.
func DeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	var user models.User
	if err := db.DB.Preload("Role").First(&user, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
			Error:   err.Error(),
		})
	}

	if err := user.CanBeDeleted(); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := db.DB.Delete(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete user",
			Error:   err.Error(),
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
