package utils

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// TicketEmailData feeds the issuance confirmation email.
type TicketEmailData struct {
	TicketCode     string
	EventName      string
	EventDate      string
	Zone           string
	HolderName     string
	RenderedBody   string
	RenderedIsHTML bool
	QRBytes        []byte
}

// SendTicketEmail sends the issued ticket to the holder, attaching the QR
// code. Runs async so issuance responses are not delayed by SMTP.
func SendTicketEmail(to string, data TicketEmailData) {
	go func() {
		host := os.Getenv("SMTP_HOST")
		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)
		if port == 0 {
			port = 587
		}

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Votre billet "+data.TicketCode)
		if data.RenderedIsHTML {
			m.SetBody("text/html", data.RenderedBody)
		} else {
			body := fmt.Sprintf("Billet %s\n%s - %s\nZone %s\nPorteur: %s",
				data.TicketCode, data.EventName, data.EventDate, data.Zone, data.HolderName)
			m.SetBody("text/plain", body)
		}

		if len(data.QRBytes) > 0 {
			filename := fmt.Sprintf("Billet_%s.png", data.TicketCode)
			m.Attach(filename, gomail.Rename(filename), gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(data.QRBytes))
				return err
			}))
		}

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send ticket email to %s: %v", to, err)
		} else {
			log.Printf("ticket email with QR sent to %s", to)
		}
	}()
}
