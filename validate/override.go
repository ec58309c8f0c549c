package validate

import (
	"club_ticketing/constants"
	"club_ticketing/helper"
	"club_ticketing/model"
	"club_ticketing/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func CreateOverride() fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin, isManager, isOperator, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isManager && !isOperator {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
		}

		var input model.CreateOverrideInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		// A no-op override is invalid input, not a stored record.
		if input.OverrideZoneId == input.OriginalZoneId {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.OVERRIDE_SAME_ZONE, errors.New("override zone equals original zone"))
		}
		c.Locals("input", input)
		return c.Next()
	}
}

func EditOverride(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		_, isAdmin, isManager, isOperator, _ := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isManager && !isOperator {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
		}

		overrideId, err := c.ParamsInt(key)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.EditOverrideInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		c.Locals("overrideId", overrideId)
		c.Locals("input", input)
		return c.Next()
	}
}
