package main

import (
	"fmt"
	"log"
	"strings"

	"granja-app/config"
	"granja-app/database"
	"granja-app/models"
	"granja-app/repositories"

	"gopkg.in/gomail.v2"
)

func sendLowStockNotification(toEmails []string, stocks []models.SupplyStock) error {
	var rows strings.Builder
	for _, s := range stocks {
		rows.WriteString(fmt.Sprintf(
			"<tr><td>%s</td><td>%s</td><td>%.2f %s</td><td>%.2f %s</td></tr>",
			s.SupplyName, s.Category, s.Quantity, s.Unit, s.MinQuantity, s.Unit))
	}

	subject := fmt.Sprintf("⚠️ Low supply stock: %d item(s) below minimum", len(stocks))
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Supplies below minimum stock</h3>
				<table border="1" cellpadding="4">
					<tr><th>Supply</th><th>Category</th><th>On hand</th><th>Minimum</th></tr>
					%s
				</table>
				<p>This is an auto-generated email. Please do not reply to this email or its recipients.</p>
			</body>
		</html>
	`, rows.String())

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPUser)
	msg.SetHeader("To", toEmails...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		fmt.Println("❌ Failed to send email:", err)
		return err
	}

	fmt.Println("✅ Notification sent to:", toEmails)
	return nil
}

func main() {
	config.LoadConfig()

	db, err := database.OpenConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	fmt.Println("🚀 Low stock processor running...")

	repo := repositories.NewSupplyRepository(db)
	stocks, err := repo.LowStock()
	if err != nil {
		log.Fatalf("Failed to check supply stock: %v", err)
	}

	if len(stocks) == 0 {
		fmt.Println("✅ All supplies above minimum, nothing to report")
		return
	}

	if config.AlertMailTo == "" {
		log.Println("ALERT_MAIL_TO not set, skipping notification")
		for _, s := range stocks {
			fmt.Printf("⚠️ %s is low: %.2f %s (minimum %.2f)\n", s.SupplyName, s.Quantity, s.Unit, s.MinQuantity)
		}
		return
	}

	recipients := strings.Split(config.AlertMailTo, ",")
	for i := range recipients {
		recipients[i] = strings.TrimSpace(recipients[i])
	}

	if err := sendLowStockNotification(recipients, stocks); err != nil {
		log.Fatalf("Failed to send notification: %v", err)
	}
}
