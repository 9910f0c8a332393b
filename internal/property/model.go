// File: internal/property/model.go
package property

import (
	"time"

	"gorm.io/datatypes"
)

// ListingType is what the listing offers.
type ListingType string

const (
	ListingTypeSale       ListingType = "Sale"
	ListingTypeRent       ListingType = "Rent"
	ListingTypeInvestment ListingType = "Investment"
	ListingTypeOther      ListingType = "Other"
)

// PropertyType classifies the real estate itself.
type PropertyType string

const (
	PropertyTypeLandPlot       PropertyType = "Land Plot"
	PropertyTypeHouse          PropertyType = "House"
	PropertyTypeBuilding       PropertyType = "Building"
	PropertyTypeApartment      PropertyType = "Apartment"
	PropertyTypeFarm           PropertyType = "Farm"
	PropertyTypeCommercialShop PropertyType = "Commercial Shop"
	PropertyTypeShoppingCenter PropertyType = "Shopping Center"
	PropertyTypeOther          PropertyType = "Other"
)

type Currency string

const (
	CurrencyYemeniRial Currency = "Yemeni Rial"
	CurrencySaudiRiyal Currency = "Saudi Riyal"
	CurrencyUSDollar   Currency = "US Dollar"
	CurrencyUAEDirham  Currency = "UAE Dirham"
	CurrencyEuro       Currency = "Euro"
	CurrencyOther      Currency = "Other"
)

type AreaUnit string

const (
	AreaUnitSquareMeter AreaUnit = "Square Meter"
	AreaUnitLinearMeter AreaUnit = "Linear Meter"
	AreaUnitFeddan      AreaUnit = "Feddan"
	AreaUnitHectare     AreaUnit = "Hectare"
	AreaUnitOther       AreaUnit = "Other"
)

// DocumentType names an ownership document held for the property.
type DocumentType string

const (
	DocumentTypeHousing           DocumentType = "Housing"
	DocumentTypeGrand             DocumentType = "Grand"
	DocumentTypeNeighborhoodElder DocumentType = "Neighborhood Elder"
	DocumentTypeInformal          DocumentType = "Informal"
	DocumentTypeOther             DocumentType = "Other"
)

// Status is the lifecycle state of a listing. The only transition is
// Gallery -> Inventory.
type Status string

const (
	StatusGallery   Status = "Gallery"
	StatusInventory Status = "Inventory"
)

// Option lists, in display order.
var (
	ListingTypes  = []ListingType{ListingTypeSale, ListingTypeRent, ListingTypeInvestment, ListingTypeOther}
	PropertyTypes = []PropertyType{
		PropertyTypeLandPlot, PropertyTypeHouse, PropertyTypeBuilding, PropertyTypeApartment,
		PropertyTypeFarm, PropertyTypeCommercialShop, PropertyTypeShoppingCenter, PropertyTypeOther,
	}
	Currencies    = []Currency{CurrencyYemeniRial, CurrencySaudiRiyal, CurrencyUSDollar, CurrencyUAEDirham, CurrencyEuro, CurrencyOther}
	AreaUnits     = []AreaUnit{AreaUnitSquareMeter, AreaUnitLinearMeter, AreaUnitFeddan, AreaUnitHectare, AreaUnitOther}
	DocumentTypes = []DocumentType{DocumentTypeHousing, DocumentTypeGrand, DocumentTypeNeighborhoodElder, DocumentTypeInformal, DocumentTypeOther}
	Statuses      = []Status{StatusGallery, StatusInventory}
)

// OtherValue is the shared "Other" option of every enumeration.
const OtherValue = "Other"

// Contact is an owner or agent reference.
type Contact struct {
	Name  *string `json:"name" bson:"name"`
	Phone *string `json:"phone" bson:"phone"`
}

// Listing is the persisted property record.
type Listing struct {
	ID string `json:"_id" bson:"-" gorm:"primaryKey;type:varchar(36)"`

	ListingID         string       `json:"listingId" bson:"listingId" gorm:"index;not null" validate:"required"`
	ListingType       ListingType  `json:"listingType" bson:"listingType" gorm:"not null" validate:"required,listing_type"`
	ListingTypeOther  *string      `json:"listingTypeOther" bson:"listingTypeOther"`
	PropertyType      PropertyType `json:"propertyType" bson:"propertyType" gorm:"not null" validate:"required,property_type"`
	PropertyTypeOther *string      `json:"propertyTypeOther" bson:"propertyTypeOther"`
	Description       string       `json:"description" bson:"description" gorm:"type:text;not null" validate:"required"`

	PriceAmount   *float64 `json:"priceAmount" bson:"priceAmount" validate:"required,finite"`
	Currency      Currency `json:"currency" bson:"currency" gorm:"not null" validate:"required,currency"`
	CurrencyOther *string  `json:"currencyOther" bson:"currencyOther"`

	Area          *float64 `json:"area" bson:"area" validate:"required,finite"`
	AreaUnit      AreaUnit `json:"areaUnit" bson:"areaUnit" gorm:"not null" validate:"required,area_unit"`
	AreaUnitOther *string  `json:"areaUnitOther" bson:"areaUnitOther"`
	Length        *float64 `json:"length" bson:"length" validate:"omitempty,finite"`
	Width         *float64 `json:"width" bson:"width" validate:"omitempty,finite"`

	Governorate     string  `json:"governorate" bson:"governorate" gorm:"not null" validate:"required"`
	District        string  `json:"district" bson:"district" gorm:"not null" validate:"required"`
	Neighborhood    *string `json:"neighborhood" bson:"neighborhood"`
	PlanName        *string `json:"planName" bson:"planName"`
	NeighborUnit    *string `json:"neighborUnit" bson:"neighborUnit"`
	PlotNumber      *string `json:"plotNumber" bson:"plotNumber"`
	BuildingNumber  *string `json:"buildingNumber" bson:"buildingNumber"`
	ApartmentNumber *string `json:"apartmentNumber" bson:"apartmentNumber"`
	GoogleMapsLink  *string `json:"googleMapsLink" bson:"googleMapsLink"`

	DocumentTypes     datatypes.JSONSlice[string] `json:"documentTypes" bson:"documentTypes" validate:"dive,document_type"`
	DocumentTypeOther *string                     `json:"documentTypeOther" bson:"documentTypeOther"`
	DocumentFiles     datatypes.JSONSlice[string] `json:"documentFiles" bson:"documentFiles"`

	Owner Contact `json:"owner" bson:"owner" gorm:"embedded;embeddedPrefix:owner_"`
	Agent Contact `json:"agent" bson:"agent" gorm:"embedded;embeddedPrefix:agent_"`

	Status Status `json:"status" bson:"status" gorm:"index;not null" validate:"required,listing_status"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// TableName pins the SQL table to the same name as the Mongo collection.
func (Listing) TableName() string {
	return "properties"
}

// normalizeSequences keeps both sequences non-nil so they encode as [] rather than null.
func (l *Listing) normalizeSequences() {
	if l.DocumentTypes == nil {
		l.DocumentTypes = datatypes.JSONSlice[string]{}
	}
	if l.DocumentFiles == nil {
		l.DocumentFiles = datatypes.JSONSlice[string]{}
	}
}

// CanTransitionTo reports whether the status may move from the current value to next.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	return s == StatusGallery && next == StatusInventory
}

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}
