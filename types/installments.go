package types

import (
	"merchantcore/apperror"
	"merchantcore/secure"
)

// InstallmentScheme is the sealed family of installment dialects a
// gateway can declare. The members are the base scheme, its regional
// extensions, and NoInstallments for gateways without any installment
// offering.
type InstallmentScheme interface {
	isInstallmentScheme()
}

// NoInstallments marks a gateway that does not offer installments at
// all. Distinct from a base-scheme TotalPayment, which is a per-charge
// choice.
type NoInstallments struct{}

func (NoInstallments) isInstallmentScheme() {}

// InstallmentKind discriminates the plan variants.
type InstallmentKind string

const (
	KindTotalPayment  InstallmentKind = "total_payment"
	KindFixedPlan     InstallmentKind = "fixed_plan"
	KindStoredPlan    InstallmentKind = "stored_plan"
	KindRevolvingPlan InstallmentKind = "revolving_plan"
	KindBonusPlan     InstallmentKind = "bonus_plan"
)

const (
	minInstallmentCount = 2
	maxInstallmentCount = 99
)

func validateInstallmentCount(count int) error {
	if count < minInstallmentCount {
		return apperror.InvalidInput("Installment count must be at least 2")
	}
	if count > maxInstallmentCount {
		return apperror.InvalidInput("Installment count must be at most 99")
	}
	return nil
}

// Installments is the base dialect: a single payment, a fixed plan of
// 2..=99 installments, or a gateway-stored plan.
type Installments struct {
	kind   InstallmentKind
	count  int
	planID secure.InstallmentPlanID
}

func TotalPayment() Installments {
	return Installments{kind: KindTotalPayment}
}

func NewFixedPlan(count int) (Installments, error) {
	if err := validateInstallmentCount(count); err != nil {
		return Installments{}, err
	}
	return Installments{kind: KindFixedPlan, count: count}, nil
}

func NewStoredPlan(rawID string) (Installments, error) {
	id, err := secure.NewInstallmentPlanID(rawID)
	if err != nil {
		return Installments{}, err
	}
	return Installments{kind: KindStoredPlan, planID: id}, nil
}

func (i Installments) Kind() InstallmentKind            { return i.kind }
func (i Installments) Count() int                       { return i.count }
func (i Installments) PlanID() secure.InstallmentPlanID { return i.planID }
func (Installments) isInstallmentScheme()               {}

// InstallmentsJP is the Japanese dialect: the base variants plus
// revolving ("ribo barai") and bonus-month plans.
type InstallmentsJP struct {
	kind   InstallmentKind
	count  int
	planID secure.InstallmentPlanID
}

func TotalPaymentJP() InstallmentsJP {
	return InstallmentsJP{kind: KindTotalPayment}
}

func NewFixedPlanJP(count int) (InstallmentsJP, error) {
	if err := validateInstallmentCount(count); err != nil {
		return InstallmentsJP{}, err
	}
	return InstallmentsJP{kind: KindFixedPlan, count: count}, nil
}

func NewStoredPlanJP(rawID string) (InstallmentsJP, error) {
	id, err := secure.NewInstallmentPlanID(rawID)
	if err != nil {
		return InstallmentsJP{}, err
	}
	return InstallmentsJP{kind: KindStoredPlan, planID: id}, nil
}

// RevolvingPlanJP pays a fixed monthly amount until the balance clears.
func RevolvingPlanJP() InstallmentsJP {
	return InstallmentsJP{kind: KindRevolvingPlan}
}

// BonusPlanJP defers payment to the semi-annual bonus months.
func BonusPlanJP() InstallmentsJP {
	return InstallmentsJP{kind: KindBonusPlan}
}

func (i InstallmentsJP) Kind() InstallmentKind            { return i.kind }
func (i InstallmentsJP) Count() int                       { return i.count }
func (i InstallmentsJP) PlanID() secure.InstallmentPlanID { return i.planID }
func (InstallmentsJP) isInstallmentScheme()               {}

// InstallmentsGCC is the Gulf-countries dialect: fixed plans carry a
// Shariah-compliance flag used by the gateway to apply Islamic finance
// structures. For stored plans compliance is fixed at plan creation.
type InstallmentsGCC struct {
	kind             InstallmentKind
	count            int
	shariahCompliant bool
	planID           secure.InstallmentPlanID
}

func TotalPaymentGCC() InstallmentsGCC {
	return InstallmentsGCC{kind: KindTotalPayment}
}

func NewFixedPlanGCC(count int, shariahCompliant bool) (InstallmentsGCC, error) {
	if err := validateInstallmentCount(count); err != nil {
		return InstallmentsGCC{}, err
	}
	return InstallmentsGCC{kind: KindFixedPlan, count: count, shariahCompliant: shariahCompliant}, nil
}

func NewStoredPlanGCC(rawID string) (InstallmentsGCC, error) {
	id, err := secure.NewInstallmentPlanID(rawID)
	if err != nil {
		return InstallmentsGCC{}, err
	}
	return InstallmentsGCC{kind: KindStoredPlan, planID: id}, nil
}

func (i InstallmentsGCC) Kind() InstallmentKind            { return i.kind }
func (i InstallmentsGCC) Count() int                       { return i.count }
func (i InstallmentsGCC) ShariahCompliant() bool           { return i.shariahCompliant }
func (i InstallmentsGCC) PlanID() secure.InstallmentPlanID { return i.planID }
func (InstallmentsGCC) isInstallmentScheme()               {}

// MexicoPlan is the Mexican MSI (Meses Sin Intereses) dialect: a closed
// set of month counts plus gateway-stored plans.
type MexicoPlan struct {
	months int
	planID *secure.InstallmentPlanID
}

// The closed MSI set. Single is a plain payment; the others are
// interest-free installments.
var (
	MexicoSingle   = MexicoPlan{months: 1}
	MexicoThree    = MexicoPlan{months: 3}
	MexicoSix      = MexicoPlan{months: 6}
	MexicoNine     = MexicoPlan{months: 9}
	MexicoTwelve   = MexicoPlan{months: 12}
	MexicoEighteen = MexicoPlan{months: 18}
)

// NewMexicoPlanID references a plan from the gateway's installments API.
func NewMexicoPlanID(rawID string) (MexicoPlan, error) {
	id, err := secure.NewInstallmentPlanID(rawID)
	if err != nil {
		return MexicoPlan{}, err
	}
	return MexicoPlan{planID: &id}, nil
}

func (p MexicoPlan) Months() int { return p.months }

func (p MexicoPlan) PlanID() (secure.InstallmentPlanID, bool) {
	if p.planID == nil {
		return secure.InstallmentPlanID{}, false
	}
	return *p.planID, true
}

func (MexicoPlan) isInstallmentScheme() {}
