package domain

// TargetKind discriminates the PayoffTarget variants.
type TargetKind int

const (
	// TargetDebt is a real liability identified by its snapshot ID.
	TargetDebt TargetKind = iota
	// TargetEmergencyFund is the virtual debt used to let an unfunded
	// emergency reserve compete with real debts for extra payments.
	TargetEmergencyFund
)

// PayoffTarget is a closed sum over the things a payment can be directed
// at. The emergency fund used to ride along as a magic map key in the
// balance table; making it a tagged variant keeps the match exhaustive.
type PayoffTarget struct {
	kind        TargetKind
	liabilityID string
}

// Debt returns a target for the given liability ID.
func Debt(liabilityID string) PayoffTarget {
	return PayoffTarget{kind: TargetDebt, liabilityID: liabilityID}
}

// EmergencyFund returns the virtual emergency-fund target.
func EmergencyFund() PayoffTarget {
	return PayoffTarget{kind: TargetEmergencyFund}
}

// Kind returns the variant tag.
func (t PayoffTarget) Kind() TargetKind { return t.kind }

// LiabilityID returns the liability ID for TargetDebt targets; empty for
// the emergency fund.
func (t PayoffTarget) LiabilityID() string { return t.liabilityID }

// IsEmergencyFund reports whether the target is the virtual reserve.
func (t PayoffTarget) IsEmergencyFund() bool { return t.kind == TargetEmergencyFund }
