package handler

import (
	"club_ticketing/constants"
	"club_ticketing/database"
	"club_ticketing/helper"
	"club_ticketing/model"
	"club_ticketing/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetPlans(c *fiber.Ctx) error {
	var plans []model.SubscriptionPlan
	if err := database.DB.
		Where("deleted_at IS NULL").
		Order("created_at desc").
		Find(&plans).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, plans)
}

func GetPlanById(c *fiber.Ctx) error {
	planId := c.Locals("inputId").(int)

	var plan model.SubscriptionPlan
	if err := database.DB.Where("id = ? AND deleted_at IS NULL", planId).First(&plan).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PLAN_NOT_FOUND, err)
	}

	var assignments []model.PlanZoneAssignment
	database.DB.Where("subscription_plan_id = ? AND deleted_at IS NULL", plan.ID).Find(&assignments)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"plan":        plan,
		"assignments": assignments,
	})
}

func CreatePlan(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreatePlanInput)

	db := database.DB

	var count int64
	db.Model(&model.SubscriptionPlan{}).Where("code = ?", input.Code).Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ERROR_CREATE, errors.New("plan code already taken"))
	}

	plan := model.SubscriptionPlan{
		Name:   input.Name,
		Code:   input.Code,
		Season: input.Season,
		Active: true,
	}

	if err := db.Create(&plan).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, plan)
}

func EditPlan(c *fiber.Ctx) error {
	planId := c.Locals("planId").(int)
	input := c.Locals("input").(model.EditPlanInput)

	db := database.DB
	var plan model.SubscriptionPlan
	if err := db.Where("id = ? AND deleted_at IS NULL", planId).First(&plan).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PLAN_NOT_FOUND, err)
	}

	if input.Name != "" {
		plan.Name = input.Name
	}
	if input.Season != "" {
		plan.Season = input.Season
	}
	if input.Active != nil {
		plan.Active = *input.Active
	}

	if err := db.Save(&plan).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, plan)
}

// AssignPlanZone sets the plan's baseline zone at one venue. One baseline
// per (plan, venue); a second assignment replaces the first.
func AssignPlanZone(c *fiber.Ctx) error {
	planId := c.Locals("planId").(int)
	input := c.Locals("input").(model.AssignPlanZoneInput)

	db := database.DB

	var plan model.SubscriptionPlan
	if err := db.Where("id = ? AND deleted_at IS NULL", planId).First(&plan).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PLAN_NOT_FOUND, err)
	}

	var zone model.VenueZone
	if err := db.Where("venue_id = ? AND code = ? AND deleted_at IS NULL", input.VenueId, input.ZoneCode).First(&zone).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ZONE_NOT_FOUND, err)
	}

	var assignment model.PlanZoneAssignment
	err := db.Where("subscription_plan_id = ? AND venue_id = ? AND deleted_at IS NULL", plan.ID, input.VenueId).
		First(&assignment).Error
	switch {
	case err == nil:
		assignment.ZoneCode = input.ZoneCode
		if err := db.Save(&assignment).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		assignment = model.PlanZoneAssignment{
			SubscriptionPlanId: plan.ID,
			VenueId:            input.VenueId,
			ZoneCode:           input.ZoneCode,
		}
		if err := db.Create(&assignment).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
		}
	default:
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, assignment)
}

// DeletePlans removes plans together with their baseline assignments and
// overrides, in one transaction. Issued tickets keep a NULL plan reference.
func DeletePlans(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("subscription_plan_id IN ?", input.IDs).Delete(&model.PlanZoneAssignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subscription_plan_id IN ?", input.IDs).Delete(&model.ZoneMappingOverride{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", input.IDs).Delete(&model.SubscriptionPlan{}).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	helper.RebuildEngine(c.Context())
	PublishEngineEvent("override.deleted", "")

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
