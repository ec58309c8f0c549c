package validate

import (
	"club_ticketing/constants"
	"club_ticketing/helper"
	"club_ticketing/model"
	"club_ticketing/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func IssueTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		accountInfo, isAdmin, isManager, isOperator, isGuichet := helper.GetInfoAccountFromToken(c)
		if !isAdmin && !isManager && !isOperator && !isGuichet {
			return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
		}

		var input model.IssueTicketInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}
		if input.SubscriptionPlanId == nil && input.OriginalZoneId == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NO_BASELINE_ZONE, errors.New("either subscriptionPlanId or originalZoneId is required"))
		}
		c.Locals("input", input)
		c.Locals("accountInfo", accountInfo)
		return c.Next()
	}
}
