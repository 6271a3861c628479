package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlk/tour-api/db"
	"github.com/wanderlk/tour-api/models"
	"github.com/wanderlk/tour-api/utils"
)

// GetRoles lists the fixed roles with their permissions.
func GetRoles(c *fiber.Ctx) error {
	var roles []models.Role
	if err := db.DB.Preload("Permissions").Find(&roles).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch roles",
			Error:   err.Error(),
		})
	}
	return c.JSON(roles)
}

// GetPermissions lists every permission.
func GetPermissions(c *fiber.Ctx) error {
	var permissions []models.Permission
	if err := db.DB.Find(&permissions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch permissions",
			Error:   err.Error(),
		})
	}
	return c.JSON(permissions)
}

// AssignPermissions replaces a role's permission set.
func AssignPermissions(c *fiber.Ctx) error {
	roleID := c.Params("id")

	var role models.Role
	if err := db.DB.First(&role, roleID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Role not found",
		})
	}

	var input struct {
		PermissionIDs []uint `json:"permission_ids"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	var permissions []models.Permission
	if err := db.DB.Where("id IN ?", input.PermissionIDs).Find(&permissions).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch permissions",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&role).Association("Permissions").Replace(permissions); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to assign permissions",
			Error:   err.Error(),
		})
	}

	return c.JSON(role)
}
