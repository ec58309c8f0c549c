package database

import (
	"club_ticketing/constants"
	"club_ticketing/engine"
	"club_ticketing/model"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("changeme123"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "changeme123"
	}
	accounts := []model.Account{
		{Username: "administration", Password: HashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}

	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	venue := model.Venue{Name: "Stade Municipal", Slug: "stade-municipal", City: "Tunis", Active: true}
	if err := db.Where(model.Venue{Slug: venue.Slug}).FirstOrCreate(&venue).Error; err != nil {
		log.Println("failed to seed venue:", err)
	}
	zones := []model.VenueZone{
		{VenueId: venue.ID, Code: "Z-A", Name: "Tribune Nord", Capacity: 4500},
		{VenueId: venue.ID, Code: "Z-B", Name: "Tribune Sud", Capacity: 4500},
		{VenueId: venue.ID, Code: "Z-C", Name: "Virage Est", Capacity: 3000},
		{VenueId: venue.ID, Code: "Z-VIP", Name: "Loge VIP", Capacity: 300},
	}
	for _, zone := range zones {
		if err := db.Where(model.VenueZone{VenueId: zone.VenueId, Code: zone.Code}).FirstOrCreate(&zone).Error; err != nil {
			log.Println("failed to seed zone:", zone.Code, "error:", err)
		}
	}

	plan := model.SubscriptionPlan{Name: "Abonnement Saison", Code: "SAISON", Season: "2026-2027", Active: true}
	if err := db.Where(model.SubscriptionPlan{Code: plan.Code}).FirstOrCreate(&plan).Error; err != nil {
		log.Println("failed to seed plan:", err)
	}
	baseline := model.PlanZoneAssignment{SubscriptionPlanId: plan.ID, VenueId: venue.ID, ZoneCode: "Z-A"}
	if err := db.Where(model.PlanZoneAssignment{SubscriptionPlanId: plan.ID, VenueId: venue.ID}).FirstOrCreate(&baseline).Error; err != nil {
		log.Println("failed to seed baseline assignment:", err)
	}

	templates := []model.TicketTemplate{
		{
			PublicCode:      "TPL-" + uuid.New().String()[:8],
			Code:            "billet-match-defaut",
			TemplateType:    engine.TypeTicket,
			TemplateFormat:  engine.FormatPDF,
			Orientation:     engine.OrientationPortrait,
			Name:            "Billet match défaut",
			Description:     "Billet PDF standard pour les matchs à domicile",
			TemplateContent: "Billet {{eventName}} | Zone {{zone}} | Porteur {{holderName}} | Code {{ticketCode}}",
			IsActive:        true,
		},
		{
			PublicCode:      "TPL-" + uuid.New().String()[:8],
			Code:            "billet-match-ecran",
			TemplateType:    engine.TypeTicket,
			TemplateFormat:  engine.FormatHTML,
			Orientation:     engine.OrientationLandscape,
			Name:            "Billet match écran",
			Description:     "Version HTML affichée sur mobile",
			TemplateContent: "<div class=\"billet\"><h1>{{eventName}}</h1><p>Zone {{zone}}</p><p>{{holderName}}</p><p>{{ticketCode}}</p></div>",
			IsActive:        true,
		},
		{
			PublicCode:      "TPL-" + uuid.New().String()[:8],
			Code:            "recu-guichet",
			TemplateType:    engine.TypeReceipt,
			TemplateFormat:  engine.FormatThermal,
			Orientation:     engine.OrientationPortrait,
			Name:            "Reçu guichet",
			Description:     "Reçu imprimante thermique du guichet",
			TemplateContent: "RECU {{ticketCode}}\nZONE {{zone}}\n{{eventName}}",
			IsActive:        true,
		},
	}
	for _, template := range templates {
		if err := db.Where(model.TicketTemplate{TemplateType: template.TemplateType, Name: template.Name}).FirstOrCreate(&template).Error; err != nil {
			log.Println("failed to seed template:", template.Name, "error:", err)
		}
	}
}
