// File: internal/dashboard/handler.go
package dashboard

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/AymenS02/united-real-estate/internal/config"
	"github.com/AymenS02/united-real-estate/internal/property"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/form/v4"
	"go.uber.org/zap"
)

//go:embed templates
var uiFS embed.FS

var decoder = form.NewDecoder()

const (
	basePath      = "/dashboard"
	pageTitle     = "Real Estate Dashboard"
	maxFormMemory = 8 << 20

	intentSave    = "save"
	intentRefresh = "refresh"
	intentReset   = "reset"
)

// Handler serves the server-rendered dashboard.
type Handler struct {
	backend   Backend
	logger    *zap.Logger
	templates *template.Template
}

// NewHandler parses the embedded templates and returns a dashboard handler.
func NewHandler(backend Backend, logger *zap.Logger) (*Handler, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	return &Handler{
		backend:   backend,
		logger:    logger.Named("dashboard"),
		templates: templates,
	}, nil
}

// ProvideAPIClient builds the dashboard's API client from configuration.
func ProvideAPIClient(cfg *config.Config, logger *zap.Logger) *APIClient {
	return NewAPIClient(cfg.DashboardAPIBaseURL, cfg.DashboardRequestTimeout, logger.Named("dashboard_client"))
}

// RegisterRoutes registers the dashboard pages under /dashboard.
func (h *Handler) RegisterRoutes(router gin.IRouter) {
	group := router.Group(basePath)
	group.GET("", h.showDashboard)
	group.POST("/listings", h.submitListing)
	group.POST("/listings/:id/promote", h.promoteListing)
	group.POST("/listings/:id/delete", h.deleteListing)
}

// PageData is what the dashboard template renders.
type PageData struct {
	Title  string
	Notice string
	Alert  string

	Listings []property.Listing
	Loading  bool
	FormOpen bool
	Draft    Draft
	Errors   FieldErrors

	ListingTypes  []string
	PropertyTypes []string
	Currencies    []string
	AreaUnits     []string
	DocumentTypes []string
	Governorates  []string
	Districts     []string
}

type contactForm struct {
	Name  string `form:"name"`
	Phone string `form:"phone"`
}

type listingForm struct {
	Intent string `form:"intent"`

	ListingID         string `form:"listingId"`
	ListingType       string `form:"listingType"`
	ListingTypeOther  string `form:"listingTypeOther"`
	PropertyType      string `form:"propertyType"`
	PropertyTypeOther string `form:"propertyTypeOther"`
	Description       string `form:"description"`

	PriceAmount   string `form:"priceAmount"`
	Currency      string `form:"currency"`
	CurrencyOther string `form:"currencyOther"`
	Area          string `form:"area"`
	AreaUnit      string `form:"areaUnit"`
	AreaUnitOther string `form:"areaUnitOther"`
	Length        string `form:"length"`
	Width         string `form:"width"`

	// PreviousGovernorate is the governorate the page was rendered with.
	PreviousGovernorate string `form:"previousGovernorate"`
	Governorate         string `form:"governorate"`
	GovernorateOther    string `form:"governorateOther"`
	District            string `form:"district"`
	DistrictOther       string `form:"districtOther"`
	Neighborhood        string `form:"neighborhood"`
	PlanName            string `form:"planName"`
	NeighborUnit        string `form:"neighborUnit"`
	PlotNumber          string `form:"plotNumber"`
	BuildingNumber      string `form:"buildingNumber"`
	ApartmentNumber     string `form:"apartmentNumber"`
	GoogleMapsLink      string `form:"googleMapsLink"`

	DocumentTypes     []string `form:"documentTypes"`
	DocumentTypeOther string   `form:"documentTypeOther"`

	Owner contactForm `form:"owner"`
	Agent contactForm `form:"agent"`
}

// draft replays the submitted fields through the Draft setters. The district
// is selected under the governorate the page was rendered with, so changing
// the governorate resets it.
func (f listingForm) draft(fileNames []string) Draft {
	d := NewDraft().
		WithListingID(f.ListingID).
		WithListingType(f.ListingType).
		WithListingTypeOther(f.ListingTypeOther).
		WithPropertyType(f.PropertyType).
		WithPropertyTypeOther(f.PropertyTypeOther).
		WithDescription(f.Description).
		WithPrice(f.PriceAmount).
		WithCurrency(f.Currency).
		WithCurrencyOther(f.CurrencyOther).
		WithArea(f.Area).
		WithAreaUnit(f.AreaUnit).
		WithAreaUnitOther(f.AreaUnitOther).
		WithLength(f.Length).
		WithWidth(f.Width).
		WithGovernorate(f.PreviousGovernorate).
		WithDistrictOther(f.DistrictOther).
		WithNeighborhood(f.Neighborhood).
		WithPlanName(f.PlanName).
		WithNeighborUnit(f.NeighborUnit).
		WithPlotNumber(f.PlotNumber).
		WithBuildingNumber(f.BuildingNumber).
		WithApartmentNumber(f.ApartmentNumber).
		WithGoogleMapsLink(f.GoogleMapsLink).
		WithDocumentTypeOther(f.DocumentTypeOther).
		WithDocumentFiles(fileNames).
		WithOwner(Contact{Name: f.Owner.Name, Phone: f.Owner.Phone}).
		WithAgent(Contact{Name: f.Agent.Name, Phone: f.Agent.Phone})

	if contains(d.AvailableDistricts(), f.District) {
		d = d.WithDistrict(f.District)
	}
	if f.Governorate != f.PreviousGovernorate {
		d = d.WithGovernorate(f.Governorate)
	}
	d = d.WithGovernorateOther(f.GovernorateOther)
	for _, t := range f.DocumentTypes {
		if !d.HasDocumentType(t) {
			d = d.ToggleDocumentType(t)
		}
	}
	return d
}

func (h *Handler) showDashboard(c *gin.Context) {
	d := New(h.backend, h.logger)
	d.Mount(c.Request.Context())
	d.FormOpen = c.Query("form") == "open"
	d.Alert = c.Query("error")

	h.render(c, http.StatusOK, d, c.Query("notice"))
}

func (h *Handler) submitListing(c *gin.Context) {
	ctx := c.Request.Context()

	f, fileNames, err := decodeListingForm(c.Request)
	if err != nil {
		h.logger.Error("Failed to decode listing form", zap.Error(err))
		redirectWithError(c, "invalid form payload")
		return
	}

	d := New(h.backend, h.logger)
	d.FormOpen = true

	switch f.Intent {
	case intentReset:
		c.Redirect(http.StatusSeeOther, basePath+"?form=open")
		return
	case intentRefresh:
		d.Draft = f.draft(fileNames)
		d.Mount(ctx)
		h.render(c, http.StatusOK, d, "")
		return
	case intentSave, "":
	default:
		redirectWithError(c, fmt.Sprintf("unknown form action %q", f.Intent))
		return
	}

	d.Draft = f.draft(fileNames)
	if d.Submit(ctx) {
		redirectWithNotice(c, "Listing saved")
		return
	}

	status := http.StatusOK
	if len(d.Errors) > 0 {
		status = http.StatusUnprocessableEntity
	}
	d.Mount(ctx)
	h.render(c, status, d, "")
}

func (h *Handler) promoteListing(c *gin.Context) {
	d := New(h.backend, h.logger)
	if !d.Promote(c.Request.Context(), c.Param("id")) {
		redirectWithError(c, d.Alert)
		return
	}
	redirectWithNotice(c, "Listing moved to Inventory")
}

func (h *Handler) deleteListing(c *gin.Context) {
	d := New(h.backend, h.logger)
	if !d.Delete(c.Request.Context(), c.Param("id")) {
		c.Redirect(http.StatusSeeOther, basePath)
		return
	}
	redirectWithNotice(c, "Listing deleted")
}

// decodeListingForm accepts urlencoded and multipart bodies. For multipart
// bodies only the names of the selected document files are kept.
func decodeListingForm(r *http.Request) (listingForm, []string, error) {
	var f listingForm

	err := r.ParseMultipartForm(maxFormMemory)
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return f, nil, fmt.Errorf("parse form: %w", err)
	}

	fileNames := []string{}
	if r.MultipartForm != nil {
		defer func() { _ = r.MultipartForm.RemoveAll() }()
		for _, fh := range r.MultipartForm.File["documentFiles"] {
			if fh.Filename != "" {
				fileNames = append(fileNames, fh.Filename)
			}
		}
	}

	if err := decoder.Decode(&f, r.Form); err != nil {
		return f, nil, fmt.Errorf("decode form: %w", err)
	}
	return f, fileNames, nil
}

func (h *Handler) render(c *gin.Context, status int, d *Dashboard, notice string) {
	data := PageData{
		Title:         pageTitle,
		Notice:        notice,
		Alert:         d.Alert,
		Listings:      d.Listings,
		Loading:       d.Loading,
		FormOpen:      d.FormOpen,
		Draft:         d.Draft,
		Errors:        d.Errors,
		ListingTypes:  stringsOf(property.ListingTypes),
		PropertyTypes: stringsOf(property.PropertyTypes),
		Currencies:    stringsOf(property.Currencies),
		AreaUnits:     stringsOf(property.AreaUnits),
		DocumentTypes: stringsOf(property.DocumentTypes),
		Governorates:  Governorates,
		Districts:     d.Draft.AvailableDistricts(),
	}

	var buf strings.Builder
	if err := h.templates.ExecuteTemplate(&buf, "page.dashboard", data); err != nil {
		h.logger.Error("failed to render dashboard page", zap.Error(err))
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(status, "text/html; charset=utf-8", []byte(buf.String()))
}

func redirectWithNotice(c *gin.Context, notice string) {
	v := url.Values{}
	v.Set("notice", notice)
	c.Redirect(http.StatusSeeOther, basePath+"?"+v.Encode())
}

func redirectWithError(c *gin.Context, msg string) {
	v := url.Values{}
	v.Set("error", msg)
	c.Redirect(http.StatusSeeOther, basePath+"?"+v.Encode())
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"number": func(f *float64) string {
			if f == nil {
				return ""
			}
			return strconv.FormatFloat(*f, 'f', -1, 64)
		},
		"join": strings.Join,
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}
