package router

import (
	"club_ticketing/handler"
	"club_ticketing/middleware"
	"club_ticketing/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)

	account := v1.Group("/account", logger.New())
	account.Get("/", middleware.Protected(), handler.GetAccounts)
	account.Get("/me", middleware.Protected(), handler.Me)
	account.Post("/", middleware.Protected(), validate.CreateAccount(), handler.CreateAccount)
	account.Post("/change-password", middleware.Protected(), validate.AdminChangePassword(), handler.AdminChangePassword)
	account.Patch("/:accountId/active", middleware.Protected(), handler.ActiveAccount)

	venue := v1.Group("/venue", logger.New())
	venue.Get("/", middleware.Protected(), handler.GetVenues)
	venue.Get("/:venueId", middleware.Protected(), validate.GetById("venueId"), handler.GetVenueById)
	venue.Get("/:venueId/zones", middleware.Protected(), validate.GetById("venueId"), handler.GetVenueZones)
	venue.Post("/", middleware.Protected(), validate.CreateVenue(), handler.CreateVenue)
	venue.Post("/:venueId/zones", middleware.Protected(), validate.CreateVenueZone(), handler.CreateVenueZone)
	venue.Put("/:venueId", middleware.Protected(), validate.EditVenue("venueId"), handler.EditVenue)
	venue.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteVenues)

	event := v1.Group("/event", logger.New())
	event.Get("/", middleware.Protected(), handler.GetEvents)
	event.Get("/:eventId", middleware.Protected(), validate.GetById("eventId"), handler.GetEventById)
	event.Post("/", middleware.Protected(), validate.CreateEvent(), handler.CreateEvent)
	event.Put("/:eventId", middleware.Protected(), validate.EditEvent("eventId"), handler.EditEvent)
	event.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteEvents)

	plan := v1.Group("/plan", logger.New())
	plan.Get("/", middleware.Protected(), handler.GetPlans)
	plan.Get("/:planId", middleware.Protected(), validate.GetById("planId"), handler.GetPlanById)
	plan.Post("/", middleware.Protected(), validate.CreatePlan(), handler.CreatePlan)
	plan.Put("/:planId", middleware.Protected(), validate.EditPlan("planId"), handler.EditPlan)
	plan.Post("/:planId/zone", middleware.Protected(), validate.AssignPlanZone(), handler.AssignPlanZone)
	plan.Delete("/", middleware.Protected(), validate.Delete(), handler.DeletePlans)

	template := v1.Group("/template", logger.New())
	template.Get("/", middleware.Protected(), handler.GetTemplates)
	template.Get("/:templateId", middleware.Protected(), validate.GetById("templateId"), handler.GetTemplateById)
	template.Post("/", middleware.Protected(), validate.CreateTemplate(), handler.CreateTemplate)
	template.Put("/:templateId", middleware.Protected(), validate.EditTemplate("templateId"), handler.EditTemplate)
	template.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteTemplates)

	override := v1.Group("/override", logger.New())
	override.Get("/", middleware.Protected(), handler.GetOverrides)
	override.Get("/:overrideId", middleware.Protected(), validate.GetById("overrideId"), handler.GetOverrideById)
	override.Post("/", middleware.Protected(), validate.CreateOverride(), handler.CreateOverride)
	override.Put("/:overrideId", middleware.Protected(), validate.EditOverride("overrideId"), handler.EditOverride)
	override.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteOverrides)

	ticket := v1.Group("/ticket", logger.New())
	ticket.Get("/", middleware.Protected(), handler.GetTickets)
	ticket.Post("/", middleware.Protected(), validate.IssueTicket(), handler.IssueTicket)
	ticket.Get("/:code", middleware.Protected(), handler.GetTicketByCode)
	ticket.Get("/:code/qr", middleware.Protected(), handler.GetTicketQRCode)
	ticket.Get("/:code/rendered", middleware.Protected(), handler.GetTicketRendered)
	ticket.Post("/:code/check-in", middleware.Protected(), handler.CheckInTicket)
	ticket.Post("/:code/cancel", middleware.Protected(), handler.CancelTicket)

	feed := v1.Group("/feed")
	feed.Get("/event/:eventId", middleware.OptionalJWT(), websocket.New(handler.EventFeedConnection))
}
