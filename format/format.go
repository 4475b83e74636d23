// format/format.go
package format

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/TheWhiteHat1/osint-bot-host/models"
)

const (
	notAvailable = "Not Available"
	na           = "N/A"
)

var recordSeparator = strings.Repeat("━", 30)

// Format renders the normalized records of one lookup into the Markdown text
// sent back to the user.
func Format(kind models.Kind, records []models.Record) string {
	switch kind {
	case models.KindNumber:
		return NumberResults(records)
	case models.KindVehicle:
		return joinRecords(records, VehicleDetails)
	case models.KindPakistanSim:
		return joinRecords(records, PakSimInfo)
	case models.KindGST:
		return joinRecords(records, GSTDetails)
	case models.KindPAN:
		return joinRecords(records, PANDetails)
	}
	return ""
}

func joinRecords(records []models.Record, one func(models.Record) string) string {
	parts := make([]string, 0, len(records))
	for _, r := range records {
		parts = append(parts, one(r))
	}
	return strings.Join(parts, "\n"+recordSeparator+"\n\n")
}

// fatherFromAddress recovers a missing father's name from an S/O or W/O
// marker inside the free-text address. Heuristic only.
var fatherFromAddress = regexp.MustCompile(`(?i)(S/O|W/O)\s+([A-Za-z ]+)`)

// NumberResults renders the phone-number lookup, numbering each record and
// separating them visually.
func NumberResults(records []models.Record) string {
	var b strings.Builder
	b.WriteString("🔍 *Number Lookup Results*\n\n")
	for i, r := range records {
		name := r.First(na, "name")
		father := r.First(na, "fname", "father_name")
		address := r.First(na, "address")
		mobile := r.First(na, "mobile")
		alt := r.First(na, "alt", "alt_mobile")
		circle := r.First(na, "circle")
		idNumber := r.First(na, "id_number")
		email := r.First(na, "email")

		if father == na && address != na {
			if m := fatherFromAddress.FindStringSubmatch(address); m != nil {
				father = strings.TrimSpace(m[2])
			}
		}

		fmt.Fprintf(&b, "✅ *Result %d*\n\n", i+1)
		fmt.Fprintf(&b, "👤 *Name:* %s\n", name)
		fmt.Fprintf(&b, "👨‍👦 *Father:* %s\n", father)
		fmt.Fprintf(&b, "📍 *Address:* %s\n", address)
		fmt.Fprintf(&b, "📱 *Mobile:* %s\n", mobile)
		fmt.Fprintf(&b, "☎️ *Alternate:* %s\n", alt)
		fmt.Fprintf(&b, "🌍 *Circle:* %s\n", circle)
		fmt.Fprintf(&b, "🆔 *ID Number:* %s\n", idNumber)
		fmt.Fprintf(&b, "✉️ *Email:* %s\n\n", email)
		b.WriteString(recordSeparator + "\n\n")
	}
	return b.String()
}

// VehicleDetails renders one vehicle RC record.
func VehicleDetails(r models.Record) string {
	var b strings.Builder
	b.WriteString("🚘 *Vehicle Details*\n\n")
	fmt.Fprintf(&b, "*RC Number:* %s\n", r.First(notAvailable, "rc_number"))
	fmt.Fprintf(&b, "*Owner Name:* %s\n", r.First(notAvailable, "owner_name"))
	fmt.Fprintf(&b, "*Father's Name:* %s\n", r.First(notAvailable, "father_name"))
	fmt.Fprintf(&b, "*Owner Serial No.:* %s\n", r.First(notAvailable, "owner_serial_no"))
	fmt.Fprintf(&b, "*Model Name:* %s\n", r.First(notAvailable, "model_name"))
	fmt.Fprintf(&b, "*Maker/Model:* %s\n", r.First(notAvailable, "maker_model"))
	fmt.Fprintf(&b, "*Vehicle Class:* %s\n", r.First(notAvailable, "vehicle_class"))
	fmt.Fprintf(&b, "*Fuel Type:* %s\n", r.First(notAvailable, "fuel_type"))
	fmt.Fprintf(&b, "*Fuel Norms:* %s\n", r.First(notAvailable, "fuel_norms"))
	fmt.Fprintf(&b, "*Registration Date:* %s\n\n", r.First(notAvailable, "registration_date"))
	b.WriteString("🛡️ *Insurance Details*\n\n")
	fmt.Fprintf(&b, "*Company:* %s\n", r.First(notAvailable, "insurance_company"))
	fmt.Fprintf(&b, "*Policy Number:* %s\n", r.First(notAvailable, "insurance_no"))
	fmt.Fprintf(&b, "*Expiry Date:* %s\n", r.First(notAvailable, "insurance_expiry"))
	fmt.Fprintf(&b, "*Valid Upto:* %s\n\n", r.First(notAvailable, "insurance_upto"))
	b.WriteString("✅ *Fitness / Tax / PUC*\n\n")
	fmt.Fprintf(&b, "*Fitness Upto:* %s\n", r.First(notAvailable, "fitness_upto"))
	fmt.Fprintf(&b, "*Tax Upto:* %s\n", r.First(notAvailable, "tax_upto"))
	fmt.Fprintf(&b, "*PUC Number:* %s\n", r.First(notAvailable, "puc_no"))
	fmt.Fprintf(&b, "*PUC Valid Upto:* %s\n\n", r.First(notAvailable, "puc_upto"))
	b.WriteString("🏛️ *Financier & RTO*\n\n")
	fmt.Fprintf(&b, "*Financier Name:* %s\n", r.First(notAvailable, "financier_name"))
	fmt.Fprintf(&b, "*RTO:* %s\n\n", r.First(notAvailable, "rto"))
	b.WriteString("📍 *Address*\n\n")
	fmt.Fprintf(&b, "*Full Address:* %s\n", r.First(notAvailable, "address"))
	fmt.Fprintf(&b, "*City:* %s\n\n", r.First(notAvailable, "city"))
	b.WriteString("☎️ *Contact*\n\n")
	fmt.Fprintf(&b, "*Phone:* %s\n", r.First(notAvailable, "phone"))
	return b.String()
}

// PakSimInfo renders one Pakistan SIM record.
func PakSimInfo(r models.Record) string {
	var b strings.Builder
	b.WriteString("📱 *Pakistan SIM Info*\n\n")
	fmt.Fprintf(&b, "*Name:* %s\n", r.First(notAvailable, "name"))
	fmt.Fprintf(&b, "*CNIC:* %s\n", r.First(notAvailable, "cnic"))
	fmt.Fprintf(&b, "*Address:* %s\n", r.First(notAvailable, "address"))
	fmt.Fprintf(&b, "*Number:* %s\n", r.First(notAvailable, "number"))
	if numbers := r.Strings("numbers"); len(numbers) > 0 {
		fmt.Fprintf(&b, "*All Numbers:* %s\n", strings.Join(numbers, ", "))
	} else {
		b.WriteString("*All Numbers:* " + notAvailable + "\n")
	}
	fmt.Fprintf(&b, "*City:* %s\n", r.First(notAvailable, "city"))
	fmt.Fprintf(&b, "*Province:* %s\n", r.First(notAvailable, "province"))
	return b.String()
}

// GSTDetails renders one GST registration record.
func GSTDetails(r models.Record) string {
	var b strings.Builder
	b.WriteString("🏢 *GST Details*\n\n")
	fmt.Fprintf(&b, "*GST Number:* %s\n", r.First(notAvailable, "gst_number"))
	fmt.Fprintf(&b, "*Business Name:* %s\n", r.First(notAvailable, "business_name"))
	fmt.Fprintf(&b, "*Legal Name:* %s\n", r.First(notAvailable, "legal_name"))
	fmt.Fprintf(&b, "*Address:* %s\n", r.First(notAvailable, "address"))
	fmt.Fprintf(&b, "*State:* %s\n", r.First(notAvailable, "state"))
	fmt.Fprintf(&b, "*Registration Date:* %s\n", r.First(notAvailable, "registration_date"))
	fmt.Fprintf(&b, "*Business Type:* %s\n", r.First(notAvailable, "business_type"))
	fmt.Fprintf(&b, "*Status:* %s\n", r.First(notAvailable, "status"))
	return b.String()
}

// PANDetails renders one PAN card record.
func PANDetails(r models.Record) string {
	var b strings.Builder
	b.WriteString("📄 *PAN Card Details*\n\n")
	fmt.Fprintf(&b, "*PAN Number:* %s\n", r.First(notAvailable, "pan_number"))
	fmt.Fprintf(&b, "*Full Name:* %s\n", r.First(notAvailable, "full_name"))
	fmt.Fprintf(&b, "*Father's Name:* %s\n", r.First(notAvailable, "father_name"))
	fmt.Fprintf(&b, "*Date of Birth:* %s\n", r.First(notAvailable, "dob"))
	fmt.Fprintf(&b, "*Status:* %s\n", r.First(notAvailable, "status"))
	return b.String()
}
