package mapper

import (
	"github.com/xabank/time-deposit/internal/domain/model"
)

// Conversion failure messages.
const (
	MsgEntityNil       = "Time Deposit entity is null"
	MsgPlanTypeNil     = "Time Deposit entity planType is null"
	MsgBalanceNil      = "Time Deposit entity balance is null"
	msgConversionUnset = "Undefined data conversion error"
)

// ConversionError reports a stored record that cannot be turned into a computable deposit.
type ConversionError struct {
	Message string
}

func (e *ConversionError) Error() string {
	if e.Message == "" {
		return msgConversionUnset
	}
	return e.Message
}

// ToComputable validates a stored record and converts it into a TimeDeposit.
// The id and days are copied as-is; the balance is normalized to two fractional digits.
func ToComputable(record *model.TimeDepositRecord) (model.TimeDeposit, error) {
	if record == nil {
		return model.TimeDeposit{}, &ConversionError{Message: MsgEntityNil}
	}
	if record.PlanType == nil {
		return model.TimeDeposit{}, &ConversionError{Message: MsgPlanTypeNil}
	}
	if record.Balance == nil {
		return model.TimeDeposit{}, &ConversionError{Message: MsgBalanceNil}
	}

	return model.NewTimeDeposit(record.ID, *record.PlanType, *record.Balance, record.Days), nil
}
