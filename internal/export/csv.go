package export

import (
	"strconv"
	"strings"
	"time"

	"github.com/raphaestudos2/locadoradestino/internal/domain"
	"github.com/raphaestudos2/locadoradestino/internal/service"
)

// CSV exports for the back-office download buttons. The files target
// Brazilian spreadsheet software: semicolon delimiters, every field quoted,
// decimal commas, dd/mm/yyyy dates.

const dateLayout = "02/01/2006"

// Amount formats a monetary value with two decimals and a decimal comma.
func Amount(v float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(v, 'f', 2, 64), ".", ",")
}

// writeRow appends one record with every field quoted. encoding/csv only
// quotes on demand, and the downstream spreadsheets expect uniform quoting,
// so rows are assembled by hand.
func writeRow(b *strings.Builder, fields ...string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

// Rentals renders the bookings report: one header row plus one row per
// rental, in the order given.
func Rentals(rentals []*domain.Rental, customers []*domain.Customer, vehicles []*domain.Vehicle) string {
	var b strings.Builder
	writeRow(&b, "Codigo", "Cliente", "Veiculo", "Retirada", "Devolucao", "Dias", "Valor Total", "Status", "Pagamento")
	for _, r := range rentals {
		writeRow(&b,
			r.Code(),
			service.ResolveCustomerName(customers, r.CustomerID),
			service.ResolveVehicleName(vehicles, r.VehicleID),
			r.PickupDate.Format(dateLayout),
			r.ReturnDate.Format(dateLayout),
			strconv.Itoa(r.Days()),
			Amount(r.TotalAmount),
			string(r.Status),
			string(r.PaymentStatus),
		)
	}
	return b.String()
}

// Financial renders the ledger report: one header row plus one row per
// payment, in the order given.
func Financial(payments []*domain.Payment, rentals []*domain.Rental, customers []*domain.Customer) string {
	var b strings.Builder
	writeRow(&b, "Data", "Descricao", "Tipo", "Forma", "Valor", "Status")
	for _, p := range payments {
		writeRow(&b,
			p.PaidAt.Format(dateLayout),
			service.TransactionDescription(p, rentals, customers),
			string(p.Type),
			string(p.Method),
			Amount(p.Amount),
			string(p.Status),
		)
	}
	return b.String()
}

// Filename builds a download name like rentals-2026-08-28.csv.
func Filename(prefix string, now time.Time) string {
	return prefix + "-" + now.Format("2006-01-02") + ".csv"
}
