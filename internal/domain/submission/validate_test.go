package submission

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func contactPayload() map[string]any {
	return map[string]any{
		"name":           "John Doe",
		"email":          "John.Doe@Example.com",
		"phone":          "5551234567",
		"subject":        "Looking to sell",
		"message":        "I would like to list my house with your agency.",
		"recaptchaToken": "token",
	}
}

func TestValidateContact_Success(t *testing.T) {
	n, err := Validate(Contacts, contactPayload())
	assert.NoError(t, err)
	assert.Equal(t, "John Doe", n.Name)
	assert.Equal(t, "john.doe@example.com", n.Email, "emails are lowercased")
	assert.Equal(t, "5551234567", n.Phone)
	assert.Equal(t, "Looking to sell", n.Fields["subject"])
}

func TestValidateContact_MissingRequired(t *testing.T) {
	payload := contactPayload()
	delete(payload, "email")

	_, err := Validate(Contacts, payload)
	assert.Error(t, err)

	verr, ok := err.(*ValidationError)
	assert.True(t, ok)
	assert.Equal(t, "email", verr.Field)
}

func TestValidateContact_BadEmail(t *testing.T) {
	payload := contactPayload()
	payload["email"] = "not-an-email"

	_, err := Validate(Contacts, payload)
	assert.Error(t, err)
}

func TestValidateContact_TooShort(t *testing.T) {
	payload := contactPayload()
	payload["message"] = "hi"

	_, err := Validate(Contacts, payload)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "message")
}

func TestValidate_UnknownKeysDropped(t *testing.T) {
	payload := contactPayload()
	payload["injected"] = "value"

	n, err := Validate(Contacts, payload)
	assert.NoError(t, err)
	_, ok := n.Fields["injected"]
	assert.False(t, ok)
}

func TestValidate_EnumRejectsUnknownValue(t *testing.T) {
	payload := map[string]any{
		"name":       "Jane",
		"email":      "jane@example.com",
		"phone":      "5551234567",
		"date":       time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
		"time":       "10:00",
		"category":   "Something Else",
		"preference": "Virtual",
	}
	_, err := Validate(Appointments, payload)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "category")
}

func TestValidate_AppointmentDateInPast(t *testing.T) {
	payload := map[string]any{
		"name":       "Jane",
		"email":      "jane@example.com",
		"phone":      "5551234567",
		"date":       "2020-01-01",
		"time":       "10:00",
		"category":   "Mortgage Services",
		"preference": "Virtual",
	}
	_, err := Validate(Appointments, payload)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "past")
}

func TestValidate_AppointmentTimeFormat(t *testing.T) {
	payload := map[string]any{
		"name":       "Jane",
		"email":      "jane@example.com",
		"phone":      "5551234567",
		"date":       time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
		"time":       "10:00 PM",
		"category":   "Mortgage Services",
		"preference": "Virtual",
	}
	_, err := Validate(Appointments, payload)
	assert.Error(t, err, "time must be 24-hour HH:MM")

	payload["time"] = "22:00"
	n, err := Validate(Appointments, payload)
	assert.NoError(t, err)
	assert.Equal(t, "22:00", n.Fields["time"])
}

func TestValidate_AppointmentDateTodayRejected(t *testing.T) {
	// a bare date parses at midnight, which is already behind the
	// current moment for any booking made during the day
	payload := map[string]any{
		"name":       "Jane",
		"email":      "jane@example.com",
		"phone":      "5551234567",
		"date":       time.Now().UTC().Format("2006-01-02"),
		"time":       "10:00",
		"category":   "Mortgage Services",
		"preference": "Virtual",
	}
	_, err := Validate(Appointments, payload)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "past")
}

func TestValidate_AppointmentDatePromoted(t *testing.T) {
	date := time.Now().AddDate(0, 0, 5).Format("2006-01-02")
	payload := map[string]any{
		"name":       "Jane",
		"email":      "jane@example.com",
		"phone":      "5551234567",
		"date":       date,
		"time":       "10:00",
		"category":   "Mortgage Services",
		"preference": "Virtual",
	}
	n, err := Validate(Appointments, payload)
	assert.NoError(t, err)
	assert.NotNil(t, n.ScheduledAt)
	assert.Equal(t, date, n.ScheduledAt.Format("2006-01-02"))
	_, inBag := n.Fields["date"]
	assert.False(t, inBag, "promoted date must not land in the bag")
}

func inquiryPayload() map[string]any {
	return map[string]any{
		"name":                  "Sam Buyer",
		"phone":                 "5559876543",
		"preferredContact":      "Email",
		"purchaseType":          "Mortgage loan",
		"loanOfficerAssistance": "Yes",
	}
}

func TestValidate_MultiAcceptsListAndCommaString(t *testing.T) {
	fromList := inquiryPayload()
	fromList["realEstateNeeds"] = []any{"Buying a home", "Buying land"}

	fromString := inquiryPayload()
	fromString["realEstateNeeds"] = "Buying a home, Buying land"

	a, err := Validate(PropertyInquiries, fromList)
	assert.NoError(t, err)
	b, err := Validate(PropertyInquiries, fromString)
	assert.NoError(t, err)

	assert.Equal(t, a.Fields["realEstateNeeds"], b.Fields["realEstateNeeds"])
	assert.Equal(t, []string{"Buying a home", "Buying land"}, a.Fields["realEstateNeeds"])
}

func TestValidate_MultiAcceptsJSONString(t *testing.T) {
	payload := inquiryPayload()
	payload["realEstateNeeds"] = `["Selling a home"]`

	n, err := Validate(PropertyInquiries, payload)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Selling a home"}, n.Fields["realEstateNeeds"])
}

func TestValidate_MultiDeduplicates(t *testing.T) {
	payload := inquiryPayload()
	payload["realEstateNeeds"] = "Buying a home, Buying a home"

	n, err := Validate(PropertyInquiries, payload)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Buying a home"}, n.Fields["realEstateNeeds"])
}

func TestValidate_MultiRejectsUnknownOption(t *testing.T) {
	payload := inquiryPayload()
	payload["realEstateNeeds"] = "Buying a castle"

	_, err := Validate(PropertyInquiries, payload)
	assert.Error(t, err)
}

func TestValidate_OptionalFieldSkipped(t *testing.T) {
	n, err := Validate(PropertyInquiries, inquiryPayload())
	assert.NoError(t, err)
	assert.Empty(t, n.Email)
	_, ok := n.Fields["budgetRange"]
	assert.False(t, ok)
}

func TestValidate_PhonePatternEnforced(t *testing.T) {
	payload := map[string]any{
		"helpType":           "Repair",
		"installReplaceItem": "Windows",
		"propertyType":       "residential",
		"timeline":           "1-2 weeks",
		"areasOfWork":        "Kitchen",
		"address":            "123 Main Street, Springfield",
		"phoneNumber":        "5551234567",
		"name":               "Pat Owner",
		"email":              "pat@example.com",
	}
	_, err := Validate(HomeImprovementQuotes, payload)
	assert.Error(t, err, "phone must match (xxx) xxx-xxxx")

	payload["phoneNumber"] = "(555) 123-4567"
	n, err := Validate(HomeImprovementQuotes, payload)
	assert.NoError(t, err)
	assert.Equal(t, "(555) 123-4567", n.Phone)
}

func TestValidate_BoolAndNumberCoercion(t *testing.T) {
	payload := map[string]any{
		"helpType":           "Repair",
		"installReplaceItem": "Windows",
		"propertyType":       "residential",
		"timeline":           "1-2 weeks",
		"areasOfWork":        "Kitchen",
		"address":            "123 Main Street, Springfield",
		"phoneNumber":        "(555) 123-4567",
		"name":               "Pat Owner",
		"email":              "pat@example.com",
		"textUpdates":        "true",
		"projectUpdates":     false,
	}
	n, err := Validate(HomeImprovementQuotes, payload)
	assert.NoError(t, err)
	assert.Equal(t, true, n.Fields["textUpdates"])
	assert.Equal(t, false, n.Fields["projectUpdates"])
}
