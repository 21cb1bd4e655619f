package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pickupCustomer() CustomerInfo {
	return CustomerInfo{
		Name:           "María Pérez",
		Phone:          "04121234567",
		Address:        DefaultMeetingPoint,
		DeliveryMethod: DeliveryPickup,
	}
}

func TestNewDerivesTotalsAndSummary(t *testing.T) {
	o, err := New([]Line{
		{ProductID: "p1", Name: "Crop Top", Price: 100000, Quantity: 2, SelectedSize: "M"},
	}, pickupCustomer(), " apurado ")
	require.NoError(t, err)

	assert.InDelta(t, 200000.0, o.TotalPrice, 1e-9)
	assert.Equal(t, "María Pérez", o.ClientName)
	assert.Equal(t, "2x Crop Top", o.GarmentName)
	assert.Equal(t, "M", o.Size)
	assert.Equal(t, "apurado", o.Notes)
	assert.Zero(t, o.PaidAmount)
	require.NoError(t, o.ValidateTotal())
}

func TestNewMultipleItemsSizeVarios(t *testing.T) {
	o, err := New([]Line{
		{ProductID: "p1", Name: "Top", Price: 18, Quantity: 1},
		{ProductID: "p2", Name: "Leggings", Price: 25, Quantity: 1},
	}, pickupCustomer(), "")
	require.NoError(t, err)
	assert.Equal(t, "Varios", o.Size)
	assert.Equal(t, "1x Top, 1x Leggings", o.GarmentName)
}

func TestNewRejectsBadLines(t *testing.T) {
	_, err := New(nil, pickupCustomer(), "")
	assert.ErrorIs(t, err, ErrInvalidItems)

	_, err = New([]Line{{ProductID: "p1", Name: "Top", Price: 18, Quantity: 0}}, pickupCustomer(), "")
	assert.ErrorIs(t, err, ErrInvalidItems)

	_, err = New([]Line{{ProductID: "", Name: "Top", Price: 18, Quantity: 1}}, pickupCustomer(), "")
	assert.ErrorIs(t, err, ErrInvalidItems)
}

func TestValidateTotalDetectsDrift(t *testing.T) {
	o, err := New([]Line{{ProductID: "p1", Name: "Top", Price: 18, Quantity: 1}}, pickupCustomer(), "")
	require.NoError(t, err)

	o.TotalPrice = 99
	assert.ErrorIs(t, o.ValidateTotal(), ErrInvalidTotal)
}

func TestCustomerInfoValidate(t *testing.T) {
	c := pickupCustomer()
	require.NoError(t, c.Validate())

	t.Run("short name", func(t *testing.T) {
		c := pickupCustomer()
		c.Name = "A"
		assert.ErrorIs(t, c.Validate(), ErrInvalidCustomer)
	})

	t.Run("short phone", func(t *testing.T) {
		c := pickupCustomer()
		c.Phone = "123"
		assert.ErrorIs(t, c.Validate(), ErrInvalidCustomer)
	})

	t.Run("pickup requires meeting point", func(t *testing.T) {
		c := pickupCustomer()
		c.Address = "Av. Lara, Edif. Azul"
		assert.ErrorIs(t, c.Validate(), ErrInvalidCustomer)
	})

	t.Run("shipment requires real address", func(t *testing.T) {
		c := pickupCustomer()
		c.DeliveryMethod = DeliveryShipment
		c.Address = "Val"
		assert.ErrorIs(t, c.Validate(), ErrInvalidCustomer)

		c.Address = "Valencia, Ofc. MRW Centro"
		assert.NoError(t, c.Validate())
	})

	t.Run("unknown method", func(t *testing.T) {
		c := pickupCustomer()
		c.DeliveryMethod = "courier"
		assert.ErrorIs(t, c.Validate(), ErrInvalidCustomer)
	})
}

func TestPagoMovilReportValidate(t *testing.T) {
	valid := PagoMovilReport{
		BancoOrigen:      "0105",
		TelefonoOrigen:   "04121234567",
		CedulaTitular:    "V-12345678",
		NumeroReferencia: "1234",
		FechaPago:        "2026-08-28",
	}
	require.NoError(t, valid.Validate())

	t.Run("reference too short", func(t *testing.T) {
		r := valid
		r.NumeroReferencia = "123"
		assert.ErrorIs(t, r.Validate(), ErrInvalidReport)
	})

	t.Run("bad date", func(t *testing.T) {
		r := valid
		r.FechaPago = "28/08/2026"
		assert.ErrorIs(t, r.Validate(), ErrInvalidReport)
	})

	t.Run("missing bank", func(t *testing.T) {
		r := valid
		r.BancoOrigen = ""
		assert.ErrorIs(t, r.Validate(), ErrInvalidReport)
	})
}
