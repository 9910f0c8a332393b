// File: internal/dashboard/draft.go
package dashboard

import (
	"strconv"
	"strings"

	"github.com/AymenS02/united-real-estate/internal/property"
)

// Choice is an enumerated form value with a free-text companion that only
// applies when the "Other" option is selected. The text survives switching
// away and back, but is not observable in between.
type Choice struct {
	value string
	text  string
}

// NewChoice returns a choice with value selected and no free text.
func NewChoice(value string) Choice {
	return Choice{value: value}
}

func (c Choice) Value() string { return c.value }

// IsOther reports whether the "Other" option is selected.
func (c Choice) IsOther() bool { return c.value == property.OtherValue }

// Other returns the free text when "Other" is selected, otherwise "".
func (c Choice) Other() string {
	if !c.IsOther() {
		return ""
	}
	return c.text
}

// Text returns the stored free text regardless of the selection, for re-rendering inputs.
func (c Choice) Text() string { return c.text }

// Resolved is the value sent to the API: the free text for "Other", the option otherwise.
func (c Choice) Resolved() string {
	if c.IsOther() {
		return c.text
	}
	return c.value
}

func (c Choice) withValue(v string) Choice { c.value = v; return c }
func (c Choice) withText(t string) Choice { c.text = t; return c }

// Contact is the owner/agent part of the form.
type Contact struct {
	Name  string
	Phone string
}

// Draft is the add-listing form. It is a value type: every With method
// returns a modified copy and never touches the receiver.
type Draft struct {
	ListingID    string
	ListingType  Choice
	PropertyType Choice
	Description  string

	PriceAmount string
	Currency    Choice

	Area     string
	AreaUnit Choice
	Length   string
	Width    string

	Governorate     Choice
	District        Choice
	Neighborhood    string
	PlanName        string
	NeighborUnit    string
	PlotNumber      string
	BuildingNumber  string
	ApartmentNumber string
	GoogleMapsLink  string

	documentTypes     []string
	DocumentTypeOther string
	documentFiles     []string

	Owner Contact
	Agent Contact

	Status string
}

// NewDraft returns the empty form with the default selections.
func NewDraft() Draft {
	return Draft{
		ListingType:   NewChoice(string(property.ListingTypeSale)),
		PropertyType:  NewChoice(string(property.PropertyTypeHouse)),
		Currency:      NewChoice(string(property.CurrencyUSDollar)),
		AreaUnit:      NewChoice(string(property.AreaUnitSquareMeter)),
		documentTypes: []string{},
		documentFiles: []string{},
		Status:        string(property.StatusGallery),
	}
}

func (d Draft) WithListingID(v string) Draft { d.ListingID = v; return d }

func (d Draft) WithListingType(v string) Draft {
	d.ListingType = d.ListingType.withValue(v)
	return d
}

func (d Draft) WithListingTypeOther(t string) Draft {
	d.ListingType = d.ListingType.withText(t)
	return d
}

func (d Draft) WithPropertyType(v string) Draft {
	d.PropertyType = d.PropertyType.withValue(v)
	return d
}

func (d Draft) WithPropertyTypeOther(t string) Draft {
	d.PropertyType = d.PropertyType.withText(t)
	return d
}

func (d Draft) WithDescription(v string) Draft { d.Description = v; return d }
func (d Draft) WithPrice(v string) Draft { d.PriceAmount = v; return d }

func (d Draft) WithCurrency(v string) Draft {
	d.Currency = d.Currency.withValue(v)
	return d
}

func (d Draft) WithCurrencyOther(t string) Draft {
	d.Currency = d.Currency.withText(t)
	return d
}

func (d Draft) WithArea(v string) Draft { d.Area = v; return d }

func (d Draft) WithAreaUnit(v string) Draft {
	d.AreaUnit = d.AreaUnit.withValue(v)
	return d
}

func (d Draft) WithAreaUnitOther(t string) Draft {
	d.AreaUnit = d.AreaUnit.withText(t)
	return d
}

func (d Draft) WithLength(v string) Draft { d.Length = v; return d }
func (d Draft) WithWidth(v string) Draft { d.Width = v; return d }

// WithGovernorate selects a governorate. The district is always reset, and
// the "other governorate" text is dropped unless v is "Other".
func (d Draft) WithGovernorate(v string) Draft {
	text := ""
	if v == property.OtherValue {
		text = d.Governorate.text
	}
	d.Governorate = Choice{value: v, text: text}
	d.District = d.District.withValue("")
	return d
}

func (d Draft) WithGovernorateOther(t string) Draft {
	d.Governorate = d.Governorate.withText(t)
	return d
}

func (d Draft) WithDistrict(v string) Draft {
	d.District = d.District.withValue(v)
	return d
}

func (d Draft) WithDistrictOther(t string) Draft {
	d.District = d.District.withText(t)
	return d
}

func (d Draft) WithNeighborhood(v string) Draft { d.Neighborhood = v; return d }
func (d Draft) WithPlanName(v string) Draft { d.PlanName = v; return d }
func (d Draft) WithNeighborUnit(v string) Draft { d.NeighborUnit = v; return d }
func (d Draft) WithPlotNumber(v string) Draft { d.PlotNumber = v; return d }
func (d Draft) WithBuildingNumber(v string) Draft { d.BuildingNumber = v; return d }
func (d Draft) WithApartmentNumber(v string) Draft { d.ApartmentNumber = v; return d }
func (d Draft) WithGoogleMapsLink(v string) Draft { d.GoogleMapsLink = v; return d }

// ToggleDocumentType adds t when absent and removes it when present,
// keeping the order in which types were first selected.
func (d Draft) ToggleDocumentType(t string) Draft {
	next := make([]string, 0, len(d.documentTypes)+1)
	found := false
	for _, existing := range d.documentTypes {
		if existing == t {
			found = true
			continue
		}
		next = append(next, existing)
	}
	if !found {
		next = append(next, t)
	}
	d.documentTypes = next
	return d
}

func (d Draft) WithDocumentTypeOther(t string) Draft { d.DocumentTypeOther = t; return d }

// WithDocumentFiles records the selected file names. File contents are never part of the draft.
func (d Draft) WithDocumentFiles(names []string) Draft {
	d.documentFiles = append([]string{}, names...)
	return d
}

func (d Draft) WithOwner(c Contact) Draft { d.Owner = c; return d }
func (d Draft) WithAgent(c Contact) Draft { d.Agent = c; return d }

// DocumentTypes returns a copy of the selected document types.
func (d Draft) DocumentTypes() []string {
	return append([]string{}, d.documentTypes...)
}

// DocumentFiles returns a copy of the selected file names.
func (d Draft) DocumentFiles() []string {
	return append([]string{}, d.documentFiles...)
}

// HasDocumentType reports whether t is selected.
func (d Draft) HasDocumentType(t string) bool {
	return contains(d.documentTypes, t)
}

// AvailableDistricts narrows the district options to the selected governorate.
func (d Draft) AvailableDistricts() []string {
	return DistrictsFor(d.Governorate.Value())
}

// FieldErrors maps a form field name to its message.
type FieldErrors map[string]string

// Validate returns the client-side field errors; an empty map means the
// draft may be submitted.
func (d Draft) Validate() FieldErrors {
	errs := FieldErrors{}
	if d.ListingID == "" {
		errs["listingId"] = "Listing ID is required"
	}
	if d.ListingType.Value() == "" {
		errs["listingType"] = "Listing type required"
	}
	if d.ListingType.IsOther() && d.ListingType.Other() == "" {
		errs["listingTypeOther"] = "Specify other listing type"
	}
	if d.PropertyType.Value() == "" {
		errs["propertyType"] = "Property type required"
	}
	if d.PropertyType.IsOther() && d.PropertyType.Other() == "" {
		errs["propertyTypeOther"] = "Specify other property type"
	}
	if d.Description == "" {
		errs["description"] = "Description required"
	}
	if d.PriceAmount == "" {
		errs["priceAmount"] = "Price is required"
	}
	if d.Currency.Value() == "" {
		errs["currency"] = "Currency required"
	}
	if d.Currency.IsOther() && d.Currency.Other() == "" {
		errs["currencyOther"] = "Specify other currency"
	}
	if d.Area == "" {
		errs["area"] = "Area is required"
	}
	if d.AreaUnit.Value() == "" {
		errs["areaUnit"] = "Area unit required"
	}
	if d.AreaUnit.IsOther() && d.AreaUnit.Other() == "" {
		errs["areaUnitOther"] = "Specify other area unit"
	}
	if d.Governorate.Value() == "" {
		errs["governorate"] = "Governorate required"
	}
	if d.Governorate.IsOther() && d.Governorate.Other() == "" {
		errs["governorateOther"] = "Specify other governorate"
	}
	if d.District.Value() == "" {
		errs["district"] = "District required"
	}
	return errs
}

// Payload builds the create request body. Free-text companions are only
// sent for "Other" selections, and governorate/district carry their free
// text in place of "Other".
func (d Draft) Payload() property.CreatePropertyRequest {
	status := d.Status
	if status == "" {
		status = string(property.StatusGallery)
	}
	documentTypeOther := ""
	if d.HasDocumentType(property.OtherValue) {
		documentTypeOther = d.DocumentTypeOther
	}

	return property.CreatePropertyRequest{
		ListingID:         d.ListingID,
		ListingType:       d.ListingType.Value(),
		ListingTypeOther:  d.ListingType.Other(),
		PropertyType:      d.PropertyType.Value(),
		PropertyTypeOther: d.PropertyType.Other(),
		Description:       d.Description,
		PriceAmount:       parseNumber(d.PriceAmount),
		Currency:          d.Currency.Value(),
		CurrencyOther:     d.Currency.Other(),
		Area:              parseNumber(d.Area),
		AreaUnit:          d.AreaUnit.Value(),
		AreaUnitOther:     d.AreaUnit.Other(),
		Length:            parseOptionalNumber(d.Length),
		Width:             parseOptionalNumber(d.Width),
		Governorate:       d.Governorate.Resolved(),
		District:          d.District.Resolved(),
		Neighborhood:      d.Neighborhood,
		PlanName:          d.PlanName,
		NeighborUnit:      d.NeighborUnit,
		PlotNumber:        d.PlotNumber,
		BuildingNumber:    d.BuildingNumber,
		ApartmentNumber:   d.ApartmentNumber,
		GoogleMapsLink:    d.GoogleMapsLink,
		DocumentTypes:     d.DocumentTypes(),
		DocumentTypeOther: documentTypeOther,
		DocumentFiles:     d.DocumentFiles(),
		Owner:             &property.ContactRequest{Name: d.Owner.Name, Phone: d.Owner.Phone},
		Agent:             &property.ContactRequest{Name: d.Agent.Name, Phone: d.Agent.Phone},
		Status:            status,
	}
}

// parseNumber converts form text to a number; text that is not a number becomes null.
func parseNumber(s string) property.FlexNumber {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return property.FlexNumber{}
	}
	return property.NewFlexNumber(f)
}

func parseOptionalNumber(s string) property.FlexNumber {
	if s == "" {
		return property.FlexNumber{}
	}
	return parseNumber(s)
}
