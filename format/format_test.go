package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TheWhiteHat1/osint-bot-host/models"
)

func TestNumberResultsFatherFromAddress(t *testing.T) {
	records := []models.Record{
		{"name": "X", "address": "S/O Ram Lal, City"},
	}
	text := NumberResults(records)
	assert.Contains(t, text, "*Name:* X")
	assert.Contains(t, text, "*Father:* Ram Lal")
	assert.Contains(t, text, "*Address:* S/O Ram Lal, City")
}

func TestNumberResultsFatherMarkerCaseInsensitive(t *testing.T) {
	records := []models.Record{
		{"name": "Y", "address": "w/o Sita Devi, Village"},
	}
	assert.Contains(t, NumberResults(records), "*Father:* Sita Devi")
}

func TestNumberResultsExplicitFatherWins(t *testing.T) {
	records := []models.Record{
		{"name": "X", "fname": "Mohan", "address": "S/O Ram Lal, City"},
	}
	assert.Contains(t, NumberResults(records), "*Father:* Mohan")
}

func TestNumberResultsFallbackKeys(t *testing.T) {
	records := []models.Record{
		{"father_name": "Shyam", "alt_mobile": "1112223334"},
	}
	text := NumberResults(records)
	assert.Contains(t, text, "*Father:* Shyam")
	assert.Contains(t, text, "*Alternate:* 1112223334")
	assert.Contains(t, text, "*Name:* N/A")
	assert.Contains(t, text, "*Email:* N/A")
}

func TestNumberResultsMultipleRecords(t *testing.T) {
	records := []models.Record{
		{"name": "A"},
		{"name": "B"},
	}
	text := NumberResults(records)
	assert.Contains(t, text, "*Result 1*")
	assert.Contains(t, text, "*Result 2*")
	assert.Equal(t, 2, strings.Count(text, strings.Repeat("━", 30)))
}

func TestVehicleDetails(t *testing.T) {
	text := VehicleDetails(models.Record{
		"rc_number":  "DL3CBP1234",
		"owner_name": "Ravi Kumar",
		"fuel_type":  "PETROL",
	})
	assert.Contains(t, text, "*RC Number:* DL3CBP1234")
	assert.Contains(t, text, "*Owner Name:* Ravi Kumar")
	assert.Contains(t, text, "*Fuel Type:* PETROL")
	assert.Contains(t, text, "*Financier Name:* Not Available")
	assert.Contains(t, text, "*Insurance Details*")
}

func TestPakSimInfoNumbers(t *testing.T) {
	text := PakSimInfo(models.Record{
		"name":    "Ali",
		"cnic":    "35201-1234567-1",
		"numbers": []interface{}{"03001234567", "03117654321"},
	})
	assert.Contains(t, text, "*Name:* Ali")
	assert.Contains(t, text, "*All Numbers:* 03001234567, 03117654321")
	assert.Contains(t, text, "*Number:* Not Available")
}

func TestPakSimInfoNoNumbers(t *testing.T) {
	text := PakSimInfo(models.Record{"name": "Ali", "number": "03001234567"})
	assert.Contains(t, text, "*Number:* 03001234567")
	assert.Contains(t, text, "*All Numbers:* Not Available")
}

func TestGSTAndPANDetails(t *testing.T) {
	gst := GSTDetails(models.Record{"gst_number": "22AAAAA0000A1Z5", "legal_name": "ACME Pvt Ltd"})
	assert.Contains(t, gst, "*GST Number:* 22AAAAA0000A1Z5")
	assert.Contains(t, gst, "*Legal Name:* ACME Pvt Ltd")
	assert.Contains(t, gst, "*Business Type:* Not Available")

	pan := PANDetails(models.Record{"pan_number": "ABCDE1234F", "full_name": "Ravi Kumar"})
	assert.Contains(t, pan, "*PAN Number:* ABCDE1234F")
	assert.Contains(t, pan, "*Full Name:* Ravi Kumar")
	assert.Contains(t, pan, "*Date of Birth:* Not Available")
}

func TestFormatDispatchesByKind(t *testing.T) {
	r := []models.Record{{"name": "X"}}
	assert.Contains(t, Format(models.KindNumber, r), "Number Lookup Results")
	assert.Contains(t, Format(models.KindVehicle, r), "Vehicle Details")
	assert.Contains(t, Format(models.KindPakistanSim, r), "Pakistan SIM Info")
	assert.Contains(t, Format(models.KindGST, r), "GST Details")
	assert.Contains(t, Format(models.KindPAN, r), "PAN Card Details")
}

func TestFormatJoinsMultipleVehicleRecords(t *testing.T) {
	text := Format(models.KindVehicle, []models.Record{
		{"rc_number": "DL3CBP1234"},
		{"rc_number": "MH12DE4433"},
	})
	assert.Contains(t, text, "DL3CBP1234")
	assert.Contains(t, text, "MH12DE4433")
	assert.Contains(t, text, strings.Repeat("━", 30))
}
