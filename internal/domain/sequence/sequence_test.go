package sequence

import (
	"errors"
	"testing"

	"github.com/ToanNguyenDEV97/managerSALE-sub000/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "HD-00001", Format("HD", 1))
	assert.Equal(t, "PN-00042", Format("PN", 42))
	assert.Equal(t, "BG-123456", Format("BG", 123456))
}

func TestDocumentType_Prefix(t *testing.T) {
	expected := map[DocumentType]string{
		DocumentTypeQuote:          "BG",
		DocumentTypeOrder:          "DH",
		DocumentTypeInvoice:        "HD",
		DocumentTypePurchase:       "PN",
		DocumentTypeInventoryCheck: "KK",
		DocumentTypeReceipt:        "PT",
		DocumentTypePayment:        "PC",
	}
	for _, dt := range AllDocumentTypes() {
		assert.True(t, dt.IsValid())
		assert.Equal(t, expected[dt], dt.Prefix(), dt.String())
	}
	assert.False(t, DocumentType("RECEIPT_NOTE").IsValid())
}

func TestParse(t *testing.T) {
	t.Run("parses well formed numbers", func(t *testing.T) {
		n, err := Parse("HD", "HD-00017")
		require.NoError(t, err)
		assert.Equal(t, int64(17), n)

		n, err = Parse("HD", "HD-100000")
		require.NoError(t, err)
		assert.Equal(t, int64(100000), n)
	})

	t.Run("rejects malformed numbers loudly", func(t *testing.T) {
		for _, bad := range []string{"HD-", "HD-12a", "HD00012", "hd-00012", "PN-00012", "HD-00000", ""} {
			_, err := Parse("HD", bad)
			require.Error(t, err, bad)
			assert.True(t, errors.Is(err, shared.ErrSequenceCorrupt), bad)
		}
	})
}
