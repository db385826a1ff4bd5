package codes

// Catalog holds vendor-supplied messages indexed by vendor offset (code minus
// VendorBase). A nil Catalog is valid and has no vendor messages.
type Catalog struct {
	errors       []string
	acquisitions []string
}

// NewCatalog copies the given message tables.
func NewCatalog(errorMessages, acquisitionMessages []string) *Catalog {
	return &Catalog{
		errors:       append([]string(nil), errorMessages...),
		acquisitions: append([]string(nil), acquisitionMessages...),
	}
}

// ErrorMessage resolves code to text, preferring the vendor string for vendor
// codes. Core and unknown codes behave like ErrorDescription.
func (c *Catalog) ErrorMessage(code ErrorCode) (string, error) {
	if offset, ok := code.VendorOffset(); ok && c != nil {
		if msg := vendorMessage(c.errors, offset); msg != "" {
			return msg, nil
		}
	}
	return ErrorDescription(code)
}

// AcquisitionMessage is ErrorMessage for the acquisition namespace.
func (c *Catalog) AcquisitionMessage(code AcquisitionCode) (string, error) {
	if offset, ok := code.VendorOffset(); ok && c != nil {
		if msg := vendorMessage(c.acquisitions, offset); msg != "" {
			return msg, nil
		}
	}
	return AcquisitionDescription(code)
}

// Len returns the number of vendor error and acquisition messages.
func (c *Catalog) Len() (errors, acquisitions int) {
	if c == nil {
		return 0, 0
	}
	return len(c.errors), len(c.acquisitions)
}

func vendorMessage(messages []string, offset int32) string {
	if int(offset) >= len(messages) {
		return ""
	}
	return messages[offset]
}
