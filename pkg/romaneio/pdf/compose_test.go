package pdf

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tecadi/romaneio/pkg/romaneio/models"
)

func testManifest() models.Manifest {
	return models.Manifest{
		ReportDate:  time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC),
		Transporter: "TransLog",
		Driver:      "João da Silva",
		Plate:       "ABC1D23",
		OriginRef:   "MAERSK",
		InternalRef: "TEC-99",
		SKU:         "SKU-1",
		Quantity:    "48",
		List:        "cx 1; cx 2; cx 3",
	}
}

func TestCompose(t *testing.T) {
	data, err := Compose(testManifest(), Options{})
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestComposeDeterministic(t *testing.T) {
	a, err := Compose(testManifest(), Options{})
	require.NoError(t, err)
	b, err := Compose(testManifest(), Options{})
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComposeZeroDate(t *testing.T) {
	m := testManifest()
	m.ReportDate = time.Time{}
	_, err := Compose(m, Options{})
	assert.ErrorIs(t, err, ErrZeroDate)
}

func TestComposeMissingFields(t *testing.T) {
	m := models.Manifest{ReportDate: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)}
	data, err := Compose(m, Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestComposeMissingLogoSkipped(t *testing.T) {
	opts := Options{LogoPath: filepath.Join(t.TempDir(), "absent.png")}
	data, err := Compose(testManifest(), opts)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestComposeLongList(t *testing.T) {
	m := testManifest()
	for i := 0; i < 8; i++ {
		m.List += m.List
	}
	data, err := Compose(m, Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
