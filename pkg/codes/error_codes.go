package codes

import "time"

// ErrorCode is a terminal or retryable fault reported for an authentication,
// enrollment or removal operation. Values must agree with the sensor HAL.
type ErrorCode int32

const (
	// ErrorHWUnavailable indicates the hardware is unavailable. Try again later.
	ErrorHWUnavailable ErrorCode = 1
	// ErrorUnableToProcess indicates the sensor could not process the current image.
	ErrorUnableToProcess ErrorCode = 2
	// ErrorTimeout indicates the request ran too long, generally around 30 seconds
	// depending on platform and sensor.
	ErrorTimeout ErrorCode = 3
	// ErrorNoSpace indicates not enough storage remains to complete enrollment.
	ErrorNoSpace ErrorCode = 4
	// ErrorCanceled indicates the sensor became unavailable, e.g. on user switch
	// or device lock.
	ErrorCanceled ErrorCode = 5
	// ErrorUnableToRemove indicates removal failed, typically for a wrong face id.
	ErrorUnableToRemove ErrorCode = 6
	// ErrorLockout indicates a temporary lockout of LockoutDuration after
	// LockoutThreshold failed attempts.
	ErrorLockout ErrorCode = 7
	// ErrorVendor signals that a vendor error occurred. It is a core code; the
	// vendor detail travels separately and folds into the vendor range through
	// ClientErrorCode.
	ErrorVendor ErrorCode = 8
	// ErrorLockoutPermanent indicates ErrorLockout occurred too many times. Face
	// authentication stays disabled until a strong credential unlock.
	ErrorLockoutPermanent ErrorCode = 9
	// ErrorUserCanceled indicates the user canceled; fall back to another method.
	ErrorUserCanceled ErrorCode = 10
	// ErrorNotEnrolled indicates the user has no face enrolled.
	ErrorNotEnrolled ErrorCode = 11
	// ErrorHWNotPresent indicates the device has no face sensor.
	ErrorHWNotPresent ErrorCode = 12
	// ErrorNegativeButton is a placeholder used only by the support library.
	ErrorNegativeButton ErrorCode = 13

	// ErrorVendorBase is the start of the vendor error range.
	ErrorVendorBase ErrorCode = VendorBase
)

const (
	// LockoutDuration is how long ErrorLockout lasts.
	LockoutDuration = 30 * time.Second
	// LockoutThreshold is the number of failed attempts that triggers ErrorLockout.
	LockoutThreshold = 5
)

// VendorErrorMessage is returned for vendor error codes without a catalogue entry.
const VendorErrorMessage = "Vendor-specific face error."

var errorTable = newTable(NamespaceError, "ErrorCode", "FACE_ERROR_VENDOR_BASE", VendorErrorMessage, []Entry[ErrorCode]{
	{Code: ErrorHWUnavailable, Symbol: "FACE_ERROR_HW_UNAVAILABLE", Message: "Face hardware is not available. Try again later."},
	{Code: ErrorUnableToProcess, Symbol: "FACE_ERROR_UNABLE_TO_PROCESS", Message: "Unable to process the face image. Try again."},
	{Code: ErrorTimeout, Symbol: "FACE_ERROR_TIMEOUT", Message: "Face verification timed out."},
	{Code: ErrorNoSpace, Symbol: "FACE_ERROR_NO_SPACE", Message: "Not enough storage to complete face enrollment."},
	{Code: ErrorCanceled, Symbol: "FACE_ERROR_CANCELED", Message: "Face operation canceled because the sensor is unavailable."},
	{Code: ErrorUnableToRemove, Symbol: "FACE_ERROR_UNABLE_TO_REMOVE", Message: "Unable to remove the enrolled face.", Internal: true},
	{Code: ErrorLockout, Symbol: "FACE_ERROR_LOCKOUT", Message: "Too many attempts. Try again in 30 seconds."},
	{Code: ErrorVendor, Symbol: "FACE_ERROR_VENDOR", Message: "A vendor-specific face error occurred."},
	{Code: ErrorLockoutPermanent, Symbol: "FACE_ERROR_LOCKOUT_PERMANENT", Message: "Too many attempts. Unlock with your PIN, pattern or password to use face again."},
	{Code: ErrorUserCanceled, Symbol: "FACE_ERROR_USER_CANCELED", Message: "Face operation canceled by user."},
	{Code: ErrorNotEnrolled, Symbol: "FACE_ERROR_NOT_ENROLLED", Message: "No face enrolled."},
	{Code: ErrorHWNotPresent, Symbol: "FACE_ERROR_HW_NOT_PRESENT", Message: "This device has no face sensor."},
	{Code: ErrorNegativeButton, Symbol: "FACE_ERROR_NEGATIVE_BUTTON", Message: "Negative button pressed.", Internal: true},
}, nil)

// ErrorRegistry returns a copy of the core error table in value order.
func ErrorRegistry() []Entry[ErrorCode] {
	return errorTable.registry()
}

// ErrorDescription returns the documented meaning of code. Vendor codes get the
// generic vendor message; anything else fails with ErrUnknownCode.
func ErrorDescription(code ErrorCode) (string, error) {
	return errorTable.describe(code)
}

// ParseErrorCode is the reverse of ErrorCode.String. It also accepts decimal
// values that are core-defined or vendor.
func ParseErrorCode(text string) (ErrorCode, error) {
	return errorTable.parse(text)
}

// ClientErrorCode folds a vendor detail reported alongside ErrorVendor into the
// vendor range. Other codes pass through unchanged.
func ClientErrorCode(code ErrorCode, vendorCode int32) ErrorCode {
	if code != ErrorVendor || vendorCode < 0 || vendorCode > maxInt32-VendorBase {
		return code
	}
	return ErrorVendorBase + ErrorCode(vendorCode)
}

// Lookup returns the registry entry for a core code.
func (c ErrorCode) Lookup() (Entry[ErrorCode], bool) {
	return errorTable.lookup(c)
}

// Classify reports whether c is core, vendor or unknown.
func (c ErrorCode) Classify() Class {
	return errorTable.classify(c)
}

// IsVendor reports whether c lies in the vendor range.
func (c ErrorCode) IsVendor() bool {
	return IsVendorError(int32(c))
}

// VendorOffset returns c minus ErrorVendorBase for vendor codes.
func (c ErrorCode) VendorOffset() (int32, bool) {
	if !c.IsVendor() {
		return 0, false
	}
	return int32(c - ErrorVendorBase), true
}

// IsLockout reports whether c is a temporary or permanent lockout.
func (c ErrorCode) IsLockout() bool {
	return c == ErrorLockout || c == ErrorLockoutPermanent
}

// IsPermanentLockout reports whether c requires a strong credential unlock.
func (c ErrorCode) IsPermanentLockout() bool {
	return c == ErrorLockoutPermanent
}

func (c ErrorCode) String() string {
	return errorTable.format(c)
}

func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ErrorCode) UnmarshalText(text []byte) error {
	code, err := ParseErrorCode(string(text))
	if err != nil {
		return err
	}
	*c = code
	return nil
}
