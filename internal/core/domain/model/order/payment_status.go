package order

import (
	"fmt"

	"sellerhub/internal/pkg/errs"
)

// PaymentStatus tracks money collection for an order. It is orthogonal to the
// fulfillment Status: both change independently and neither gates the other.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentPending indicates payment has not been collected yet.
	PaymentPending

	// PaymentReceived indicates payment was collected in full.
	PaymentReceived

	// PaymentRefunded indicates the full amount was returned to the customer.
	PaymentRefunded

	// PaymentPartiallyRefunded indicates part of the amount was returned.
	PaymentPartiallyRefunded

	// PaymentFailed indicates the payment attempt did not succeed.
	PaymentFailed
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:           "unknown",
		PaymentPending:           "pending",
		PaymentReceived:          "received",
		PaymentRefunded:          "refunded",
		PaymentPartiallyRefunded: "partially_refunded",
		PaymentFailed:            "failed",
	}
}

// PaymentStatusFromString parses a payment status from its string
// representation. Returns an error for unknown or empty values.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getPaymentStatusStrings() {
		if str == s && status != PaymentUnknown {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("payment status",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus value is one of the defined values.
// PaymentUnknown (0) and out-of-range values are invalid.
func (p PaymentStatus) Validate() error {
	if _, ok := getPaymentStatusStrings()[p]; !ok || p == PaymentUnknown {
		return errs.NewValueIsInvalidErrorWithCause("payment status",
			fmt.Errorf("%d is not a valid payment status", int(p)))
	}
	return nil
}

// String returns the lowercase name of the payment status.
// Invalid values return "unknown". Implements fmt.Stringer.
func (p PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[p]; ok {
		return str
	}
	return "unknown"
}
