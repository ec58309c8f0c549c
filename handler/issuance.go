package handler

import (
	"club_ticketing/constants"
	"club_ticketing/database"
	"club_ticketing/engine"
	"club_ticketing/helper"
	"club_ticketing/model"
	"club_ticketing/utils"
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// IssueTicket runs the full issuance pipeline: resolve the effective
// zone, select a template, render, persist. Engine failures map to
// distinct statuses so a guichet screen can tell configuration problems
// from bad requests.
func IssueTicket(c *fiber.Ctx) error {
	input := c.Locals("input").(model.IssueTicketInput)
	accountInfo := c.Locals("accountInfo").(model.TokenClaim)

	db := database.DB

	var event model.Event
	if err := db.Where("id = ? AND deleted_at IS NULL", input.EventId).First(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.EVENT_NOT_FOUND, err)
	}
	if event.Status == model.EventCancelled {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("event is cancelled"))
	}

	planIdStr := ""
	if input.SubscriptionPlanId != nil {
		var plan model.SubscriptionPlan
		if err := db.Where("id = ? AND deleted_at IS NULL", *input.SubscriptionPlanId).First(&plan).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.PLAN_NOT_FOUND, err)
		}
		planIdStr = strconv.FormatUint(uint64(plan.ID), 10)
	}

	baselineZone := input.OriginalZoneId
	if baselineZone == "" && input.SubscriptionPlanId != nil {
		zone, err := helper.BaselineZoneForPlan(*input.SubscriptionPlanId, event.ID)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		baselineZone = zone
	}
	if baselineZone == "" {
		return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.NO_BASELINE_ZONE, errors.New("plan has no baseline zone at this venue"))
	}

	templateType, err := engine.ParseTemplateType(input.TemplateType)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	var preferredFormat *engine.TemplateFormat
	if input.PreferredFormat != "" {
		format, err := engine.ParseTemplateFormat(input.PreferredFormat)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		preferredFormat = &format
	}
	var preferredOrientation *engine.Orientation
	if input.PreferredOrientation != "" {
		orientation, err := engine.ParseOrientation(input.PreferredOrientation)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		preferredOrientation = &orientation
	}

	eventIdStr := strconv.FormatUint(uint64(event.ID), 10)

	effectiveZone, err := helper.EngineStore.ResolveZone(c.Context(), planIdStr, eventIdStr, baselineZone)
	if err != nil {
		var dangling *engine.DanglingOverrideError
		if errors.As(err, &dangling) {
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.DANGLING_OVERRIDE, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	ticketCode := "TKT-" + uuid.New().String()[:8]

	metadata := make(map[string]any, len(input.Metadata)+5)
	for k, v := range input.Metadata {
		metadata[k] = v
	}
	metadata["ticketCode"] = ticketCode
	metadata["eventName"] = event.Name
	metadata["eventDate"] = event.StartTime.Format("02/01/2006 15:04")
	metadata["zone"] = effectiveZone
	if input.HolderName != "" {
		metadata["holderName"] = input.HolderName
	}

	result, err := helper.EngineStore.Issue(c.Context(), engine.IssuanceInput{
		SubscriptionPlanID:   planIdStr,
		EventID:              eventIdStr,
		BaselineZoneID:       baselineZone,
		TemplateType:         templateType,
		PreferredFormat:      preferredFormat,
		PreferredOrientation: preferredOrientation,
		Metadata:             metadata,
	})
	if err != nil {
		var dangling *engine.DanglingOverrideError
		var missing *engine.MissingFieldError
		switch {
		case errors.Is(err, engine.ErrNoTemplate):
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NO_TEMPLATE_AVAILABLE, err)
		case errors.As(err, &dangling):
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.DANGLING_OVERRIDE, err)
		case errors.As(err, &missing):
			return utils.ErrorResponse(c, fiber.StatusUnprocessableEntity, constants.MISSING_TEMPLATE_FIELD, err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	var templateRow model.TicketTemplate
	if err := db.Where("public_code = ?", result.Template.ID).First(&templateRow).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	ticket := model.IssuedTicket{
		TicketCode:         ticketCode,
		EventId:            event.ID,
		SubscriptionPlanId: input.SubscriptionPlanId,
		TemplateId:         templateRow.ID,
		EffectiveZone:      result.EffectiveZoneID,
		Format:             result.Directive.Format,
		Orientation:        result.Directive.Orientation,
		RenderedContent:    result.Directive.Content,
		HolderName:         input.HolderName,
		HolderEmail:        input.HolderEmail,
		Status:             model.TicketIssued,
		IssuedAt:           time.Now(),
		CreatedBy:          accountInfo.AccountId,
	}

	if err := db.Create(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	qrBytes, err := utils.GenerateQRCode(ticket.TicketCode, 256)
	if err != nil {
		qrBytes = nil
	}

	if input.HolderEmail != "" {
		utils.SendTicketEmail(input.HolderEmail, utils.TicketEmailData{
			TicketCode:     ticket.TicketCode,
			EventName:      event.Name,
			EventDate:      event.StartTime.Format("02/01/2006 15:04"),
			Zone:           ticket.EffectiveZone,
			HolderName:     ticket.HolderName,
			RenderedBody:   result.Directive.Content,
			RenderedIsHTML: result.Directive.Format == engine.FormatHTML,
			QRBytes:        qrBytes,
		})
	}

	PublishTicketEvent(event.ID, "ticket.issued", ticket)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"ticket":    ticket,
		"directive": result.Directive,
	})
}

func GetTickets(c *fiber.Ctx) error {
	filterInput := new(model.FilterTicketInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.IssuedTicket{}).Where("deleted_at IS NULL")

	if filterInput.EventId > 0 {
		condition = condition.Where("event_id = ?", filterInput.EventId)
	}
	if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}
	if filterInput.StartDate != nil {
		condition = condition.Where("issued_at >= ?", filterInput.StartDate)
	}
	if filterInput.EndDate != nil {
		condition = condition.Where("issued_at <= ?", filterInput.EndDate)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var tickets []model.IssuedTicket
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("issued_at desc").Find(&tickets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       tickets,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetTicketByCode(c *fiber.Ctx) error {
	code := c.Params("code")

	var ticket model.IssuedTicket
	if err := database.DB.Where("ticket_code = ? AND deleted_at IS NULL", code).First(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

// CheckInTicket flips an ISSUED ticket to USED at the gate. A second scan
// of the same code is rejected, as is a cancelled ticket.
func CheckInTicket(c *fiber.Ctx) error {
	code := c.Params("code")

	db := database.DB
	var ticket model.IssuedTicket
	if err := db.Where("ticket_code = ? AND deleted_at IS NULL", code).First(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	}

	switch ticket.Status {
	case model.TicketUsed:
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.TICKET_ALREADY_USED, errors.New("ticket already checked in"))
	case model.TicketCancelled:
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.TICKET_NOT_CHECKABLE, errors.New("ticket is cancelled"))
	}

	now := time.Now()
	ticket.Status = model.TicketUsed
	ticket.UsedAt = &now

	if err := db.Save(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	PublishTicketEvent(ticket.EventId, "ticket.checkin", ticket)

	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

func CancelTicket(c *fiber.Ctx) error {
	code := c.Params("code")

	db := database.DB
	var ticket model.IssuedTicket
	if err := db.Where("ticket_code = ? AND deleted_at IS NULL", code).First(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	}

	if ticket.Status == model.TicketUsed {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.TICKET_ALREADY_USED, errors.New("used ticket cannot be cancelled"))
	}

	now := time.Now()
	ticket.Status = model.TicketCancelled
	ticket.CancelledAt = &now

	if err := db.Save(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	PublishTicketEvent(ticket.EventId, "ticket.cancelled", ticket)

	return utils.SuccessResponse(c, fiber.StatusOK, ticket)
}

// GetTicketQRCode streams the ticket's QR code as a PNG.
func GetTicketQRCode(c *fiber.Ctx) error {
	code := c.Params("code")

	var ticket model.IssuedTicket
	if err := database.DB.Where("ticket_code = ? AND deleted_at IS NULL", code).First(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	}

	qrBytes, err := utils.GenerateQRCode(ticket.TicketCode, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(qrBytes)
}

// GetTicketRendered returns the stored artifact exactly as produced at
// issuance time. Re-rendering would pick up template edits made since.
func GetTicketRendered(c *fiber.Ctx) error {
	code := c.Params("code")

	var ticket model.IssuedTicket
	if err := database.DB.Where("ticket_code = ? AND deleted_at IS NULL", code).First(&ticket).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TICKET_NOT_FOUND, err)
	}

	if ticket.Format == engine.FormatHTML {
		c.Set("Content-Type", "text/html; charset=utf-8")
	} else {
		c.Set("Content-Type", "text/plain; charset=utf-8")
	}
	return c.SendString(ticket.RenderedContent)
}
