package handler

import (
	"club_ticketing/constants"
	"club_ticketing/database"
	"club_ticketing/helper"
	"club_ticketing/model"
	"club_ticketing/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetEvents(c *fiber.Ctx) error {
	var events []model.Event
	if err := database.DB.
		Where("deleted_at IS NULL").
		Order("start_time asc").
		Find(&events).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, events)
}

func GetEventById(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)

	var event model.Event
	if err := database.DB.Where("id = ? AND deleted_at IS NULL", eventId).First(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func CreateEvent(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateEventInput)

	db := database.DB

	var venue model.Venue
	if err := db.Where("id = ? AND deleted_at IS NULL", input.VenueId).First(&venue).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.VENUE_NOT_FOUND, err)
	}

	event := model.Event{
		Name:      input.Name,
		Slug:      helper.GenerateUniqueEventSlug(db, input.Name),
		VenueId:   input.VenueId,
		StartTime: input.StartTime,
		Status:    model.EventScheduled,
	}

	if err := db.Create(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func EditEvent(c *fiber.Ctx) error {
	eventId := c.Locals("eventId").(int)
	input := c.Locals("input").(model.EditEventInput)

	db := database.DB
	var event model.Event
	if err := db.Where("id = ? AND deleted_at IS NULL", eventId).First(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}

	venueChanged := false
	if input.Name != "" && input.Name != event.Name {
		event.Name = input.Name
		event.Slug = helper.GenerateUniqueEventSlug(db, input.Name)
	}
	if input.VenueId != nil && *input.VenueId != event.VenueId {
		var venue model.Venue
		if err := db.Where("id = ? AND deleted_at IS NULL", *input.VenueId).First(&venue).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.VENUE_NOT_FOUND, err)
		}
		event.VenueId = *input.VenueId
		venueChanged = true
	}
	if input.StartTime != nil {
		event.StartTime = *input.StartTime
	}
	if input.Status != "" {
		event.Status = input.Status
	}

	if err := db.Save(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	// Moving the event to another venue invalidates its zone catalog, so
	// resolution must revalidate override destinations immediately.
	if venueChanged {
		helper.RebuildEngine(c.Context())
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

// DeleteEvents removes events and their zone mapping overrides in one
// transaction, so the override index never carries rows pointing at an
// event that no longer exists.
func DeleteEvents(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id IN ?", input.IDs).Delete(&model.ZoneMappingOverride{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", input.IDs).Delete(&model.Event{}).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	helper.RebuildEngine(c.Context())
	PublishEngineEvent("override.deleted", "")

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
