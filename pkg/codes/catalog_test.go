package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogVendorMessages(t *testing.T) {
	errs := []string{"Lens dirty.", "", "IR blocked."}
	catalog := NewCatalog(errs, []string{"Hold still for depth scan."})
	errs[0] = "mutated"

	tests := []struct {
		name string
		code ErrorCode
		want string
	}{
		{"first vendor entry", ErrorVendorBase, "Lens dirty."},
		{"empty entry falls back", ErrorVendorBase + 1, VendorErrorMessage},
		{"third vendor entry", ErrorVendorBase + 2, "IR blocked."},
		{"beyond table falls back", ErrorVendorBase + 40, VendorErrorMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := catalog.ErrorMessage(tt.code)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got, err := catalog.AcquisitionMessage(ClientAcquisitionCode(AcquiredVendor, 0))
	require.NoError(t, err)
	assert.Equal(t, "Hold still for depth scan.", got)

	nErr, nAcq := catalog.Len()
	assert.Equal(t, 3, nErr)
	assert.Equal(t, 1, nAcq)
}

func TestCatalogCoreAndUnknown(t *testing.T) {
	catalog := NewCatalog([]string{"vendor"}, nil)

	want, err := ErrorDescription(ErrorTimeout)
	require.NoError(t, err)
	got, err := catalog.ErrorMessage(ErrorTimeout)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = catalog.ErrorMessage(42)
	assert.ErrorIs(t, err, ErrUnknownCode)
	_, err = catalog.AcquisitionMessage(42)
	assert.ErrorIs(t, err, ErrUnknownCode)
}

func TestNilCatalog(t *testing.T) {
	var catalog *Catalog
	got, err := catalog.ErrorMessage(1003)
	require.NoError(t, err)
	assert.Equal(t, VendorErrorMessage, got)

	got, err = catalog.AcquisitionMessage(AcquiredTooDark)
	require.NoError(t, err)
	assert.NotEmpty(t, got)

	nErr, nAcq := catalog.Len()
	assert.Zero(t, nErr)
	assert.Zero(t, nAcq)
}
