// File: internal/property/request.go
package property

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gorm.io/datatypes"
)

// FlexNumber is a numeric request field that also accepts numeric strings.
// Absent and falsy inputs (null, 0, "", false) decode to no value; strings
// that are not numbers decode to NaN so the schema rejects them.
type FlexNumber struct {
	value *float64
}

// NewFlexNumber wraps f.
func NewFlexNumber(f float64) FlexNumber {
	return FlexNumber{value: &f}
}

// Ptr returns the decoded value or nil.
func (n FlexNumber) Ptr() *float64 {
	if n.value == nil {
		return nil
	}
	v := *n.value
	return &v
}

func (n FlexNumber) MarshalJSON() ([]byte, error) {
	if n.value == nil || math.IsNaN(*n.value) || math.IsInf(*n.value, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(*n.value)
}

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	n.value = nil

	var raw interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	var f float64
	switch t := raw.(type) {
	case nil:
		return nil
	case bool:
		if !t {
			return nil
		}
		f = 1
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return err
		}
		if parsed == 0 {
			return nil
		}
		f = parsed
	case string:
		if t == "" {
			return nil
		}
		f = parseNumeric(t)
	default:
		f = math.NaN()
	}
	n.value = &f
	return nil
}

// parseNumeric converts free text the way a loose numeric cast would:
// surrounding space is ignored, blank text is zero, anything else that
// is not a number is NaN.
func parseNumeric(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// ContactRequest is the owner/agent shape accepted on create.
type ContactRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CreatePropertyRequest is the body of POST /properties.
type CreatePropertyRequest struct {
	ListingID         string          `json:"listingId"`
	ListingType       string          `json:"listingType"`
	ListingTypeOther  string          `json:"listingTypeOther"`
	PropertyType      string          `json:"propertyType"`
	PropertyTypeOther string          `json:"propertyTypeOther"`
	Description       string          `json:"description"`
	PriceAmount       FlexNumber      `json:"priceAmount"`
	Currency          string          `json:"currency"`
	CurrencyOther     string          `json:"currencyOther"`
	Area              FlexNumber      `json:"area"`
	AreaUnit          string          `json:"areaUnit"`
	AreaUnitOther     string          `json:"areaUnitOther"`
	Length            FlexNumber      `json:"length"`
	Width             FlexNumber      `json:"width"`
	Governorate       string          `json:"governorate"`
	District          string          `json:"district"`
	Neighborhood      string          `json:"neighborhood"`
	PlanName          string          `json:"planName"`
	NeighborUnit      string          `json:"neighborUnit"`
	PlotNumber        string          `json:"plotNumber"`
	BuildingNumber    string          `json:"buildingNumber"`
	ApartmentNumber   string          `json:"apartmentNumber"`
	GoogleMapsLink    string          `json:"googleMapsLink"`
	DocumentTypes     []string        `json:"documentTypes"`
	DocumentTypeOther string          `json:"documentTypeOther"`
	DocumentFiles     []string        `json:"documentFiles"`
	Owner             *ContactRequest `json:"owner"`
	Agent             *ContactRequest `json:"agent"`
	Status            string          `json:"status"`
}

// UnmarshalJSON accepts a number or boolean listingId and keeps its text,
// so {"listingId": 123} is stored as "123".
func (r *CreatePropertyRequest) UnmarshalJSON(data []byte) error {
	type plain CreatePropertyRequest
	aux := struct {
		*plain
		ListingID json.RawMessage `json:"listingId"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	id, err := looseString(aux.ListingID)
	if err != nil {
		return fmt.Errorf("listingId: %w", err)
	}
	r.ListingID = id
	return nil
}

func looseString(data json.RawMessage) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	var raw interface{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return "", err
	}

	switch t := raw.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	default:
		return "", fmt.Errorf("cannot cast %s to string", bytes.TrimSpace(data))
	}
}

// HasRequiredFields reports whether the fields checked before persistence
// are present. Everything else is left to the schema.
func (r CreatePropertyRequest) HasRequiredFields() bool {
	return r.ListingID != "" && r.ListingType != "" && r.PropertyType != ""
}

// ToListing normalizes the request into a new listing document.
func (r CreatePropertyRequest) ToListing() *Listing {
	l := &Listing{
		ListingID:         r.ListingID,
		ListingType:       ListingType(r.ListingType),
		ListingTypeOther:  nullIfEmpty(r.ListingTypeOther),
		PropertyType:      PropertyType(r.PropertyType),
		PropertyTypeOther: nullIfEmpty(r.PropertyTypeOther),
		Description:       r.Description,
		PriceAmount:       r.PriceAmount.Ptr(),
		Currency:          Currency(r.Currency),
		CurrencyOther:     nullIfEmpty(r.CurrencyOther),
		Area:              r.Area.Ptr(),
		AreaUnit:          AreaUnit(r.AreaUnit),
		AreaUnitOther:     nullIfEmpty(r.AreaUnitOther),
		Length:            r.Length.Ptr(),
		Width:             r.Width.Ptr(),
		Governorate:       r.Governorate,
		District:          r.District,
		Neighborhood:      nullIfEmpty(r.Neighborhood),
		PlanName:          nullIfEmpty(r.PlanName),
		NeighborUnit:      nullIfEmpty(r.NeighborUnit),
		PlotNumber:        nullIfEmpty(r.PlotNumber),
		BuildingNumber:    nullIfEmpty(r.BuildingNumber),
		ApartmentNumber:   nullIfEmpty(r.ApartmentNumber),
		GoogleMapsLink:    nullIfEmpty(r.GoogleMapsLink),
		DocumentTypes:     datatypes.JSONSlice[string](r.DocumentTypes),
		DocumentTypeOther: nullIfEmpty(r.DocumentTypeOther),
		DocumentFiles:     datatypes.JSONSlice[string](r.DocumentFiles),
		Owner:             r.Owner.toContact(),
		Agent:             r.Agent.toContact(),
		Status:            Status(r.Status),
	}
	if l.Status == "" {
		l.Status = StatusGallery
	}
	l.normalizeSequences()
	return l
}

func (c *ContactRequest) toContact() Contact {
	if c == nil {
		return Contact{}
	}
	return Contact{Name: nullIfEmpty(c.Name), Phone: nullIfEmpty(c.Phone)}
}

// UpdatePropertyRequest is the body of PATCH /properties/:id. Only the
// status may change after creation.
type UpdatePropertyRequest struct {
	Status *string `json:"status"`
}

// DeletePropertyRequest is the body of DELETE /properties.
type DeletePropertyRequest struct {
	ID string `json:"id"`
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
