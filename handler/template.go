package handler

import (
	"club_ticketing/constants"
	"club_ticketing/database"
	"club_ticketing/engine"
	"club_ticketing/helper"
	"club_ticketing/model"
	"club_ticketing/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetTemplates(c *fiber.Ctx) error {
	filterInput := new(model.FilterTemplateInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.TicketTemplate{}).Where("deleted_at IS NULL")

	if filterInput.TemplateType != "" {
		condition = condition.Where("template_type = ?", filterInput.TemplateType)
	}
	if filterInput.IsActive != nil {
		condition = condition.Where("is_active = ?", *filterInput.IsActive)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var templates []model.TicketTemplate
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("created_at asc").Find(&templates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       templates,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetTemplateById(c *fiber.Ctx) error {
	templateId := c.Locals("inputId").(int)

	var template model.TicketTemplate
	if err := database.DB.Where("id = ? AND deleted_at IS NULL", templateId).First(&template).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TEMPLATE_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, template)
}

func CreateTemplate(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateTemplateInput)

	templateType, err := engine.ParseTemplateType(input.TemplateType)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	templateFormat, err := engine.ParseTemplateFormat(input.TemplateFormat)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	orientation, err := engine.ParseOrientation(input.Orientation)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB

	// Name is unique within a type, active or not.
	var count int64
	db.Model(&model.TicketTemplate{}).
		Where("template_type = ? AND name = ? AND deleted_at IS NULL", templateType, input.Name).
		Count(&count)
	if count > 0 {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.TEMPLATE_NAME_EXISTS, errors.New("a template of this type already uses this name"))
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	template := model.TicketTemplate{
		PublicCode:      "TPL-" + uuid.New().String()[:8],
		Code:            helper.GenerateUniqueTemplateCode(db, input.Name),
		TemplateType:    templateType,
		TemplateFormat:  templateFormat,
		Orientation:     orientation,
		Name:            input.Name,
		Description:     input.Description,
		TemplateContent: input.TemplateContent,
		IsActive:        isActive,
		Metadata:        input.Metadata,
	}

	if err := db.Create(&template).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	helper.RebuildEngine(c.Context())
	PublishEngineEvent("template.created", template.PublicCode)

	return utils.SuccessResponse(c, fiber.StatusOK, template)
}

func EditTemplate(c *fiber.Ctx) error {
	templateId := c.Locals("templateId").(int)
	input := c.Locals("input").(model.EditTemplateInput)

	db := database.DB
	var template model.TicketTemplate
	if err := db.Where("id = ? AND deleted_at IS NULL", templateId).First(&template).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TEMPLATE_NOT_FOUND, err)
	}

	if input.Name != "" && input.Name != template.Name {
		var count int64
		db.Model(&model.TicketTemplate{}).
			Where("template_type = ? AND name = ? AND id <> ? AND deleted_at IS NULL", template.TemplateType, input.Name, template.ID).
			Count(&count)
		if count > 0 {
			return utils.ErrorResponse(c, fiber.StatusConflict, constants.TEMPLATE_NAME_EXISTS, errors.New("a template of this type already uses this name"))
		}
		template.Name = input.Name
	}
	if input.TemplateFormat != "" {
		templateFormat, err := engine.ParseTemplateFormat(input.TemplateFormat)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		template.TemplateFormat = templateFormat
	}
	if input.Orientation != "" {
		orientation, err := engine.ParseOrientation(input.Orientation)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		template.Orientation = orientation
	}
	if input.Description != "" {
		template.Description = input.Description
	}
	if input.TemplateContent != "" {
		template.TemplateContent = input.TemplateContent
	}
	if input.IsActive != nil {
		template.IsActive = *input.IsActive
	}
	if input.Metadata != nil {
		template.Metadata = input.Metadata
	}

	if err := db.Save(&template).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	helper.RebuildEngine(c.Context())
	PublishEngineEvent("template.updated", template.PublicCode)

	return utils.SuccessResponse(c, fiber.StatusOK, template)
}

// DeleteTemplates hard-deletes unreferenced templates; templates already
// used by issued tickets are soft-retired instead so history keeps
// rendering.
func DeleteTemplates(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	db := database.DB
	retired := make([]uint, 0)
	deleted := make([]uint, 0)

	for _, id := range input.IDs {
		var template model.TicketTemplate
		if err := db.Where("id = ? AND deleted_at IS NULL", id).First(&template).Error; err != nil {
			continue
		}

		var refCount int64
		db.Model(&model.IssuedTicket{}).Where("template_id = ?", template.ID).Count(&refCount)
		if refCount > 0 {
			template.IsActive = false
			db.Save(&template)
			retired = append(retired, template.ID)
			continue
		}

		if err := db.Delete(&template).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
		}
		deleted = append(deleted, template.ID)
	}

	helper.RebuildEngine(c.Context())
	PublishEngineEvent("template.deleted", "")

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"deleted": deleted,
		"retired": retired,
	})
}
