package postgres

import "github.com/raphaestudos2/locadoradestino/internal/domain"

// The remote schema predates this service and carries Portuguese column
// names and Portuguese enum tokens. Every enumerated field is translated
// through an explicit bidirectional table; nothing is inferred from casing.

var rentalStatusToRemote = map[domain.RentalStatus]string{
	domain.RentalPending:   "pendente",
	domain.RentalActive:    "ativo",
	domain.RentalCompleted: "concluido",
	domain.RentalCancelled: "cancelado",
}

var rentalPaymentStatusToRemote = map[domain.RentalPaymentStatus]string{
	domain.RentalPaymentPending: "pendente",
	domain.RentalPaymentPaid:    "pago",
	domain.RentalPaymentOverdue: "atrasado",
}

var paymentStatusToRemote = map[domain.PaymentStatus]string{
	domain.PaymentPending:    "pendente",
	domain.PaymentProcessing: "processando",
	domain.PaymentApproved:   "aprovado",
	domain.PaymentRejected:   "recusado",
	domain.PaymentCancelled:  "cancelado",
}

var paymentTypeToRemote = map[domain.PaymentType]string{
	domain.PaymentTypeDeposit:       "caucao",
	domain.PaymentTypeRentalPayment: "pagamento_locacao",
	domain.PaymentTypeFine:          "multa",
	domain.PaymentTypeAdditionalFee: "taxa_adicional",
	domain.PaymentTypeRefund:        "reembolso",
}

var paymentMethodToRemote = map[domain.PaymentMethod]string{
	domain.MethodCash:     "dinheiro",
	domain.MethodCredit:   "cartao_credito",
	domain.MethodDebit:    "cartao_debito",
	domain.MethodPix:      "pix",
	domain.MethodTransfer: "transferencia",
	domain.MethodInvoice:  "boleto",
}

var paymentOriginToRemote = map[domain.PaymentOrigin]string{
	domain.OriginManual:    "manual",
	domain.OriginAutomatic: "automatico",
}

var customerStatusToRemote = map[domain.CustomerStatus]string{
	domain.CustomerActive:   "ativo",
	domain.CustomerInactive: "inativo",
	domain.CustomerBlocked:  "bloqueado",
}

var vehicleCategoryToRemote = map[domain.VehicleCategory]string{
	domain.CategorySUV:     "suv",
	domain.CategorySedan:   "sedan",
	domain.CategoryHatch:   "hatch",
	domain.CategoryPickup:  "picape",
	domain.CategoryVan:     "van",
	domain.CategoryArmored: "blindado",
}

var transmissionToRemote = map[domain.Transmission]string{
	domain.TransmissionManual:    "manual",
	domain.TransmissionAutomatic: "automatico",
	domain.TransmissionCVT:       "cvt",
}

var fuelTypeToRemote = map[domain.FuelType]string{
	domain.FuelGasoline: "gasolina",
	domain.FuelEthanol:  "etanol",
	domain.FuelFlex:     "flex",
	domain.FuelDiesel:   "diesel",
	domain.FuelHybrid:   "hibrido",
	domain.FuelElectric: "eletrico",
}

// invert builds the remote->domain lookup from its domain->remote table.
func invert[D ~string](m map[D]string) map[string]D {
	out := make(map[string]D, len(m))
	for d, r := range m {
		out[r] = d
	}
	return out
}

var (
	rentalStatusToDomain        = invert(rentalStatusToRemote)
	rentalPaymentStatusToDomain = invert(rentalPaymentStatusToRemote)
	paymentStatusToDomain       = invert(paymentStatusToRemote)
	paymentTypeToDomain         = invert(paymentTypeToRemote)
	paymentMethodToDomain       = invert(paymentMethodToRemote)
	paymentOriginToDomain       = invert(paymentOriginToRemote)
	customerStatusToDomain      = invert(customerStatusToRemote)
	vehicleCategoryToDomain     = invert(vehicleCategoryToRemote)
	transmissionToDomain        = invert(transmissionToRemote)
	fuelTypeToDomain            = invert(fuelTypeToRemote)
)

// toRemote translates a domain token; unknown values pass through unchanged
// so an unmapped token is visible in the remote row instead of vanishing.
func toRemote[D ~string](m map[D]string, v D) string {
	if tok, ok := m[v]; ok {
		return tok
	}
	return string(v)
}

// toDomain translates a remote token; unknown values pass through unchanged.
func toDomain[D ~string](m map[string]D, tok string) D {
	if v, ok := m[tok]; ok {
		return v
	}
	return D(tok)
}
