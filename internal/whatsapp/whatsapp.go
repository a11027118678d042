package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
)

// WhatsApp handoff for the public reservation flow. The system never sends
// messages itself; it hands the visitor a prefilled wa.me link and the
// conversation continues outside.

const dateLayout = "02/01/2006"

// sanitizePhone keeps digits only, which is what wa.me expects.
func sanitizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ReservationMessage builds the prefilled text of a reservation request.
func ReservationMessage(customerName string, vehicle *domain.Vehicle, location *domain.PickupLocation, pickup, returnDate time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Ola! Meu nome e %s e gostaria de reservar um veiculo.\n\n", customerName)
	fmt.Fprintf(&b, "Veiculo: %s\n", vehicle.DisplayName())
	if location != nil {
		fmt.Fprintf(&b, "Retirada em: %s - %s\n", location.Name, location.City)
	}
	fmt.Fprintf(&b, "Periodo: %s a %s\n", pickup.Format(dateLayout), returnDate.Format(dateLayout))
	days := (&domain.Rental{PickupDate: pickup, ReturnDate: returnDate}).Days()
	fmt.Fprintf(&b, "Diarias: %d\n", days)
	fmt.Fprintf(&b, "Valor estimado: R$ %.2f", float64(days)*vehicle.DailyPrice)
	return b.String()
}

// Link builds the wa.me URL carrying the message as a query-escaped text
// parameter.
func Link(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", sanitizePhone(phone), url.QueryEscape(message))
}
