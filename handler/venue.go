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

func GetVenues(c *fiber.Ctx) error {
	var venues []model.Venue
	if err := database.DB.
		Preload("Zones").
		Where("deleted_at IS NULL").
		Order("name asc").
		Find(&venues).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, venues)
}

func GetVenueById(c *fiber.Ctx) error {
	venueId := c.Locals("inputId").(int)

	var venue model.Venue
	if err := database.DB.
		Preload("Zones").
		Where("id = ? AND deleted_at IS NULL", venueId).
		First(&venue).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.VENUE_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, venue)
}

func CreateVenue(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateVenueInput)

	db := database.DB

	venue := model.Venue{
		Name:    input.Name,
		Slug:    helper.GenerateUniqueVenueSlug(db, input.Name),
		City:    input.City,
		Address: input.Address,
		Active:  true,
	}
	for _, zone := range input.Zones {
		venue.Zones = append(venue.Zones, model.VenueZone{
			Code:     zone.Code,
			Name:     zone.Name,
			Capacity: zone.Capacity,
		})
	}

	if err := db.Create(&venue).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, venue)
}

func EditVenue(c *fiber.Ctx) error {
	venueId := c.Locals("venueId").(int)
	input := c.Locals("input").(model.EditVenueInput)

	db := database.DB
	var venue model.Venue
	if err := db.Where("id = ? AND deleted_at IS NULL", venueId).First(&venue).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.VENUE_NOT_FOUND, err)
	}

	if input.Name != "" && input.Name != venue.Name {
		venue.Name = input.Name
		venue.Slug = helper.GenerateUniqueVenueSlug(db, input.Name)
	}
	if input.City != "" {
		venue.City = input.City
	}
	if input.Address != "" {
		venue.Address = input.Address
	}
	if input.Active != nil {
		venue.Active = *input.Active
	}

	if err := db.Save(&venue).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, venue)
}

func CreateVenueZone(c *fiber.Ctx) error {
	venueId := c.Locals("venueId").(int)
	input := c.Locals("input").(model.CreateVenueZoneItem)

	db := database.DB
	var venue model.Venue
	if err := db.Where("id = ? AND deleted_at IS NULL", venueId).First(&venue).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.VENUE_NOT_FOUND, err)
	}

	var count int64
	db.Model(&model.VenueZone{}).
		Where("venue_id = ? AND code = ? AND deleted_at IS NULL", venue.ID, input.Code).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.ZONE_CODE_EXISTS, errors.New("zone code already exists for this venue"))
	}

	zone := model.VenueZone{
		VenueId:  venue.ID,
		Code:     input.Code,
		Name:     input.Name,
		Capacity: input.Capacity,
	}

	if err := db.Create(&zone).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, zone)
}

func GetVenueZones(c *fiber.Ctx) error {
	venueId := c.Locals("inputId").(int)

	var zones []model.VenueZone
	if err := database.DB.
		Where("venue_id = ? AND deleted_at IS NULL", venueId).
		Order("code asc").
		Find(&zones).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, zones)
}

func DeleteVenues(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id IN ?", input.IDs).Delete(&model.VenueZone{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", input.IDs).Delete(&model.Venue{}).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": input.IDs})
}
