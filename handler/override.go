package handler

import (
	"club_ticketing/constants"
	"club_ticketing/database"
	"club_ticketing/helper"
	"club_ticketing/model"
	"club_ticketing/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetOverrides(c *fiber.Ctx) error {
	filterInput := new(model.FilterOverrideInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.ZoneMappingOverride{}).Where("deleted_at IS NULL")

	if filterInput.SubscriptionPlanId > 0 {
		condition = condition.Where("subscription_plan_id = ?", filterInput.SubscriptionPlanId)
	}
	if filterInput.EventId > 0 {
		condition = condition.Where("event_id = ?", filterInput.EventId)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var overrides []model.ZoneMappingOverride
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("updated_at desc").Find(&overrides).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       overrides,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetOverrideById(c *fiber.Ctx) error {
	overrideId := c.Locals("inputId").(int)

	var override model.ZoneMappingOverride
	if err := database.DB.Where("id = ? AND deleted_at IS NULL", overrideId).First(&override).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.OVERRIDE_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, override)
}

func CreateOverride(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateOverrideInput)

	db := database.DB

	var plan model.SubscriptionPlan
	if err := db.Where("id = ? AND deleted_at IS NULL", input.SubscriptionPlanId).First(&plan).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PLAN_NOT_FOUND, err)
	}

	var event model.Event
	if err := db.Where("id = ? AND deleted_at IS NULL", input.EventId).First(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	// Duplicate (plan, event, zone) rows are allowed; resolution picks the
	// most recent writer. The destination zone is checked at issuance time
	// against the event's venue, not here: venue layouts change after the
	// override is written.
	override := model.ZoneMappingOverride{
		PublicCode:         "OVR-" + uuid.New().String()[:8],
		SubscriptionPlanId: input.SubscriptionPlanId,
		EventId:            input.EventId,
		OriginalZoneId:     input.OriginalZoneId,
		OverrideZoneId:     input.OverrideZoneId,
		Metadata:           input.Metadata,
	}

	if err := db.Create(&override).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	helper.RebuildEngine(c.Context())
	PublishEngineEvent("override.created", override.PublicCode)

	return utils.SuccessResponse(c, fiber.StatusOK, override)
}

func EditOverride(c *fiber.Ctx) error {
	overrideId := c.Locals("overrideId").(int)
	input := c.Locals("input").(model.EditOverrideInput)

	db := database.DB
	var override model.ZoneMappingOverride
	if err := db.Where("id = ? AND deleted_at IS NULL", overrideId).First(&override).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.OVERRIDE_NOT_FOUND, err)
	}

	if input.OverrideZoneId != "" {
		if input.OverrideZoneId == override.OriginalZoneId {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.OVERRIDE_SAME_ZONE, errors.New("override zone equals original zone"))
		}
		override.OverrideZoneId = input.OverrideZoneId
	}
	if input.Metadata != nil {
		override.Metadata = input.Metadata
	}

	if err := db.Save(&override).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	helper.RebuildEngine(c.Context())
	PublishEngineEvent("override.updated", override.PublicCode)

	return utils.SuccessResponse(c, fiber.StatusOK, override)
}

func DeleteOverrides(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	db := database.DB
	if err := db.Where("id IN ?", input.IDs).Delete(&model.ZoneMappingOverride{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	helper.RebuildEngine(c.Context())
	PublishEngineEvent("override.deleted", "")

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
