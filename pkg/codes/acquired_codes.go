package codes

// AcquisitionCode is non-terminal feedback about capture quality during an
// in-progress scan. Not every code is meant to be shown to the user.
type AcquisitionCode int32

const (
	// AcquiredGood indicates the image was good.
	AcquiredGood AcquisitionCode = 0
	// AcquiredInsufficient indicates the image was not good enough due to a
	// detected condition; see AcquiredTooBright and AcquiredTooDark.
	AcquiredInsufficient AcquisitionCode = 1
	// AcquiredTooBright indicates too much ambient light.
	AcquiredTooBright AcquisitionCode = 2
	// AcquiredTooDark indicates the illumination light was obscured.
	AcquiredTooDark AcquisitionCode = 3
	// AcquiredTooClose indicates the face is too close; the user should move away.
	AcquiredTooClose AcquisitionCode = 4
	// AcquiredTooFar indicates the face is too small; the user should move closer.
	AcquiredTooFar AcquisitionCode = 5
	// AcquiredTooHigh indicates only the upper part of the face was detected.
	AcquiredTooHigh AcquisitionCode = 6
	// AcquiredTooLow indicates only the lower part of the face was detected.
	AcquiredTooLow AcquisitionCode = 7
	// AcquiredTooRight indicates only the right part of the face was detected.
	AcquiredTooRight AcquisitionCode = 8
	// AcquiredTooLeft indicates only the left part of the face was detected.
	AcquiredTooLeft AcquisitionCode = 9
	// AcquiredPoorGaze indicates the user's eyes strayed from the sensor.
	AcquiredPoorGaze AcquisitionCode = 10
	// AcquiredNotDetected indicates no face in front of the sensor.
	AcquiredNotDetected AcquisitionCode = 11
	// AcquiredTooMuchMotion indicates the face was not held steady.
	AcquiredTooMuchMotion AcquisitionCode = 12
	// AcquiredRecalibrate indicates an unrecoverable calibration issue; the user
	// should re-enroll.
	AcquiredRecalibrate AcquisitionCode = 13

	// AcquiredVendor shares value 13 with AcquiredRecalibrate. Both names are
	// part of the published contract, so the overlap is kept as is: a bare 13
	// always reads as AcquiredRecalibrate, while ClientAcquisitionCode treats it
	// as the vendor sentinel. Producers that mean recalibration must not fold it.
	AcquiredVendor AcquisitionCode = 13

	// AcquiredVendorBase is the start of the vendor acquisition range.
	AcquiredVendorBase AcquisitionCode = VendorBase
)

// VendorAcquisitionMessage is returned for vendor acquisition codes without a
// catalogue entry.
const VendorAcquisitionMessage = "Vendor-specific capture feedback."

var acquisitionTable = newTable(NamespaceAcquisition, "AcquisitionCode", "FACE_ACQUIRED_VENDOR_BASE", VendorAcquisitionMessage, []Entry[AcquisitionCode]{
	{Code: AcquiredGood, Symbol: "FACE_ACQUIRED_GOOD", Message: "Face image captured."},
	{Code: AcquiredInsufficient, Symbol: "FACE_ACQUIRED_INSUFFICIENT", Message: "Can't verify face. Try again."},
	{Code: AcquiredTooBright, Symbol: "FACE_ACQUIRED_TOO_BRIGHT", Message: "Too bright. Try gentler lighting."},
	{Code: AcquiredTooDark, Symbol: "FACE_ACQUIRED_TOO_DARK", Message: "Too dark. Try brighter lighting."},
	{Code: AcquiredTooClose, Symbol: "FACE_ACQUIRED_TOO_CLOSE", Message: "Move the device farther from your face."},
	{Code: AcquiredTooFar, Symbol: "FACE_ACQUIRED_TOO_FAR", Message: "Move the device closer to your face."},
	{Code: AcquiredTooHigh, Symbol: "FACE_ACQUIRED_TOO_HIGH", Message: "Move the device higher."},
	{Code: AcquiredTooLow, Symbol: "FACE_ACQUIRED_TOO_LOW", Message: "Move the device lower."},
	{Code: AcquiredTooRight, Symbol: "FACE_ACQUIRED_TOO_RIGHT", Message: "Move the device to the right."},
	{Code: AcquiredTooLeft, Symbol: "FACE_ACQUIRED_TOO_LEFT", Message: "Move the device to the left."},
	{Code: AcquiredPoorGaze, Symbol: "FACE_ACQUIRED_POOR_GAZE", Message: "Look at the device."},
	{Code: AcquiredNotDetected, Symbol: "FACE_ACQUIRED_NOT_DETECTED", Message: "No face detected. Position your face in front of the sensor."},
	{Code: AcquiredTooMuchMotion, Symbol: "FACE_ACQUIRED_TOO_MUCH_MOTION", Message: "Too much motion. Hold the device steady."},
	{Code: AcquiredRecalibrate, Symbol: "FACE_ACQUIRED_RECALIBRATE", Message: "Sensor needs recalibration. Re-enroll your face."},
}, map[string]AcquisitionCode{
	"FACE_ACQUIRED_VENDOR": AcquiredVendor,
})

// AcquisitionRegistry returns a copy of the core acquisition table in value order.
func AcquisitionRegistry() []Entry[AcquisitionCode] {
	return acquisitionTable.registry()
}

// AcquisitionDescription returns the documented meaning of code. Vendor codes
// get the generic vendor message; anything else fails with ErrUnknownCode.
func AcquisitionDescription(code AcquisitionCode) (string, error) {
	return acquisitionTable.describe(code)
}

// ParseAcquisitionCode is the reverse of AcquisitionCode.String.
func ParseAcquisitionCode(text string) (AcquisitionCode, error) {
	return acquisitionTable.parse(text)
}

// ClientAcquisitionCode folds a vendor detail reported alongside AcquiredVendor
// into the vendor range. Other codes pass through unchanged.
func ClientAcquisitionCode(code AcquisitionCode, vendorCode int32) AcquisitionCode {
	if code != AcquiredVendor || vendorCode < 0 || vendorCode > maxInt32-VendorBase {
		return code
	}
	return AcquiredVendorBase + AcquisitionCode(vendorCode)
}

func (c AcquisitionCode) Lookup() (Entry[AcquisitionCode], bool) {
	return acquisitionTable.lookup(c)
}

func (c AcquisitionCode) Classify() Class {
	return acquisitionTable.classify(c)
}

func (c AcquisitionCode) IsVendor() bool {
	return IsVendorError(int32(c))
}

func (c AcquisitionCode) VendorOffset() (int32, bool) {
	if !c.IsVendor() {
		return 0, false
	}
	return int32(c - AcquiredVendorBase), true
}

// IsGood reports whether the frame needs no user action.
func (c AcquisitionCode) IsGood() bool {
	return c == AcquiredGood
}

func (c AcquisitionCode) String() string {
	return acquisitionTable.format(c)
}

func (c AcquisitionCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *AcquisitionCode) UnmarshalText(text []byte) error {
	code, err := ParseAcquisitionCode(string(text))
	if err != nil {
		return err
	}
	*c = code
	return nil
}
