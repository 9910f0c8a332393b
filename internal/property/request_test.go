package property

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexNumber_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    *float64
		wantNaN bool
	}{
		{name: "number", raw: `1000`, want: ptrFloat(1000)},
		{name: "fraction", raw: `12.5`, want: ptrFloat(12.5)},
		{name: "numeric string", raw: `" 250 "`, want: ptrFloat(250)},
		{name: "zero is falsy", raw: `0`},
		{name: "empty string is falsy", raw: `""`},
		{name: "false is falsy", raw: `false`},
		{name: "null", raw: `null`},
		{name: "string zero is kept", raw: `"0"`, want: ptrFloat(0)},
		{name: "blank string is zero", raw: `"  "`, want: ptrFloat(0)},
		{name: "true is one", raw: `true`, want: ptrFloat(1)},
		{name: "garbage string", raw: `"abc"`, wantNaN: true},
		{name: "object", raw: `{"a":1}`, wantNaN: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n FlexNumber
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &n))
			got := n.Ptr()
			switch {
			case tt.wantNaN:
				require.NotNil(t, got)
				assert.True(t, math.IsNaN(*got))
			case tt.want == nil:
				assert.Nil(t, got)
			default:
				require.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func TestFlexNumber_AbsentFieldIsNil(t *testing.T) {
	var req CreatePropertyRequest
	require.NoError(t, json.Unmarshal([]byte(`{"listingId":"P1"}`), &req))
	assert.Nil(t, req.PriceAmount.Ptr())
	assert.Nil(t, req.Length.Ptr())
}

func TestFlexNumber_Marshal(t *testing.T) {
	raw, err := json.Marshal(struct {
		A FlexNumber `json:"a"`
		B FlexNumber `json:"b"`
	}{A: NewFlexNumber(3.5)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":3.5,"b":null}`, string(raw))
}

func TestCreatePropertyRequest_HasRequiredFields(t *testing.T) {
	assert.False(t, CreatePropertyRequest{}.HasRequiredFields())
	assert.False(t, CreatePropertyRequest{ListingID: "P1", ListingType: "Sale"}.HasRequiredFields())
	assert.True(t, CreatePropertyRequest{ListingID: "P1", ListingType: "Sale", PropertyType: "House"}.HasRequiredFields())
}

func TestCreatePropertyRequest_LooseListingID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "string", raw: `{"listingId":"P1"}`, want: "P1"},
		{name: "number", raw: `{"listingId":123}`, want: "123"},
		{name: "boolean", raw: `{"listingId":true}`, want: "true"},
		{name: "null", raw: `{"listingId":null}`},
		{name: "absent", raw: `{"listingType":"Sale"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreatePropertyRequest
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &req))
			assert.Equal(t, tt.want, req.ListingID)
		})
	}

	var req CreatePropertyRequest
	require.NoError(t, json.Unmarshal([]byte(`{"listingId":7,"listingType":"Sale","priceAmount":"10"}`), &req))
	assert.Equal(t, "Sale", req.ListingType)
	assert.Equal(t, 10.0, *req.PriceAmount.Ptr())

	err := json.Unmarshal([]byte(`{"listingId":{"a":1}}`), &req)
	assert.Error(t, err)
}

func TestCreatePropertyRequest_ToListingNormalizes(t *testing.T) {
	body := `{
		"listingId": "P1",
		"listingType": "Sale",
		"listingTypeOther": "",
		"propertyType": "House",
		"description": "test",
		"priceAmount": "1000",
		"currency": "US Dollar",
		"area": 120,
		"areaUnit": "Square Meter",
		"length": 0,
		"width": "",
		"governorate": "Aden",
		"district": "Sirah",
		"neighborhood": "",
		"plotNumber": "17",
		"owner": {"name": "Ali", "phone": ""}
	}`
	var req CreatePropertyRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	l := req.ToListing()

	assert.Equal(t, "P1", l.ListingID)
	assert.Equal(t, ListingTypeSale, l.ListingType)
	assert.Nil(t, l.ListingTypeOther)
	require.NotNil(t, l.PriceAmount)
	assert.Equal(t, 1000.0, *l.PriceAmount)
	require.NotNil(t, l.Area)
	assert.Equal(t, 120.0, *l.Area)
	assert.Nil(t, l.Length)
	assert.Nil(t, l.Width)
	assert.Nil(t, l.Neighborhood)
	require.NotNil(t, l.PlotNumber)
	assert.Equal(t, "17", *l.PlotNumber)

	require.NotNil(t, l.Owner.Name)
	assert.Equal(t, "Ali", *l.Owner.Name)
	assert.Nil(t, l.Owner.Phone)
	assert.Nil(t, l.Agent.Name)
	assert.Nil(t, l.Agent.Phone)

	assert.NotNil(t, l.DocumentTypes)
	assert.Empty(t, l.DocumentTypes)
	assert.NotNil(t, l.DocumentFiles)
	assert.Equal(t, StatusGallery, l.Status)
}

func TestCreatePropertyRequest_KeepsSubmittedStatus(t *testing.T) {
	req := CreatePropertyRequest{ListingID: "P1", ListingType: "Sale", PropertyType: "House", Status: "Inventory"}
	assert.Equal(t, StatusInventory, req.ToListing().Status)
}

func TestListing_JSONShape(t *testing.T) {
	req := CreatePropertyRequest{ListingID: "P1", ListingType: "Sale", PropertyType: "House"}
	l := req.ToListing()
	l.ID = "abc"

	raw, err := json.Marshal(l)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "abc", decoded["_id"])
	assert.Equal(t, []interface{}{}, decoded["documentTypes"])
	assert.Equal(t, []interface{}{}, decoded["documentFiles"])
	assert.Equal(t, map[string]interface{}{"name": nil, "phone": nil}, decoded["owner"])
	assert.Contains(t, decoded, "listingTypeOther")
	assert.Nil(t, decoded["listingTypeOther"])
}

func ptrFloat(f float64) *float64 { return &f }
