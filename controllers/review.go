package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/wanderlk/tour-api/db"
	"github.com/wanderlk/tour-api/models"
	"github.com/wanderlk/tour-api/stats"
	"github.com/wanderlk/tour-api/utils"
	"github.com/wanderlk/tour-api/validation"
)

type ReviewRequest struct {
	PackageID uint   `json:"package_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
	Rating    int    `json:"rating" validate:"required,gte=1,max=5"`
}

// CreateReview adds a review for a package. The reviewer's display name
// is taken from the authenticated account, never from the request body.
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid user ID",
		})
	}

	req := new(ReviewRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review data",
		})
	}

	if errs := validation.Struct(req); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"errors": errs,
		})
	}

	var pkg models.Package
	if err := db.DB.First(&pkg, req.PackageID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Package not found",
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	review := models.Review{
		UserID:    userID,
		UserName:  user.Name,
		Message:   req.Message,
		Rating:    req.Rating,
		PackageID: req.PackageID,
	}

	hasExisting, err := review.HasExistingReview(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check existing reviews",
		})
	}
	if hasExisting {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already reviewed this package. Please update your existing review.",
		})
	}

	if err := db.DB.Create(&review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create review",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(review)
}

// GetPackageReviews retrieves the reviews for a package together with
// the summary projection.
func GetPackageReviews(c *fiber.Ctx) error {
	packageID := c.Params("id")

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	var reviews []models.Review
	if err := db.DB.
		Where("package_id = ?", packageID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	var all []models.Review
	if err := db.DB.Where("package_id = ?", packageID).Find(&all).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	return c.JSON(fiber.Map{
		"reviews": reviews,
		"summary": stats.SummarizeReviews(all),
		"page":    page,
		"limit":   limit,
	})
}

// GetProviderReviews retrieves reviews across every package owned by a
// provider.
func GetProviderReviews(c *fiber.Ctx) error {
	providerID := c.Params("id")

	var reviews []models.Review
	if err := db.DB.Preload("Package").
		Joins("JOIN packages ON packages.id = reviews.package_id").
		Where("packages.provider_id = ?", providerID).
		Order("reviews.created_at DESC").
		Find(&reviews).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reviews",
		})
	}

	return c.JSON(fiber.Map{
		"reviews": reviews,
		"summary": stats.SummarizeReviews(reviews),
	})
}

// UpdateReview edits the caller's own review (admins may edit any).
func UpdateReview(c *fiber.Ctx) error {
	review, status, err := loadOwnReview(c)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		Message string `json:"message"`
		Rating  int    `json:"rating"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid review data",
		})
	}

	if input.Message != "" {
		review.Message = input.Message
	}
	if input.Rating != 0 {
		if input.Rating < 1 || input.Rating > 5 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": []validation.FieldError{{Field: "rating", Message: "must be between 1 and 5"}},
			})
		}
		review.Rating = input.Rating
	}

	if err := db.DB.Save(review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update review",
			Error:   err.Error(),
		})
	}

	return c.JSON(review)
}

// DeleteReview removes the caller's own review (admins may delete any).
func DeleteReview(c *fiber.Ctx) error {
	review, status, err := loadOwnReview(c)
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	if err := db.DB.Delete(review).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete review",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func loadOwnReview(c *fiber.Ctx) (*models.Review, int, error) {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return nil, fiber.StatusUnauthorized, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID")
	}
	role, _ := c.Locals("role").(string)

	var review models.Review
	if err := db.DB.First(&review, c.Params("id")).Error; err != nil {
		return nil, fiber.StatusNotFound, fiber.NewError(fiber.StatusNotFound, "Review not found")
	}

	if review.UserID != userID && role != models.RoleAdmin {
		return nil, fiber.StatusForbidden, fiber.NewError(fiber.StatusForbidden, "You do not own this review")
	}

	return &review, fiber.StatusOK, nil
}
