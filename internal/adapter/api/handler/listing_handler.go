package handler

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"rodvers/internal/adapter/api/middleware"
	"rodvers/internal/domain/catalog"
	"rodvers/internal/domain/entity"
	"rodvers/internal/domain/repository"
	"rodvers/internal/usecase"
	"rodvers/pkg/response"
	"rodvers/pkg/utils"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{listingUseCase: listingUseCase}
}

type listingImageRequest struct {
	URL     string `json:"url" validate:"required,url"`
	AssetID string `json:"assetId"`
}

type createListingRequest struct {
	Name            string                 `json:"name" validate:"required,min=5,max=100"`
	Description     string                 `json:"description" validate:"required,min=20,max=2000"`
	Address         string                 `json:"address" validate:"required,min=5"`
	RegularPrice    float64                `json:"regularPrice" validate:"required,gt=0"`
	DiscountedPrice float64                `json:"discountedPrice"`
	Offer           bool                   `json:"offer"`
	Category        string                 `json:"category" validate:"required"`
	SubCategory     string                 `json:"subCategory" validate:"required"`
	Details         map[string]interface{} `json:"details"`
	Images          []listingImageRequest  `json:"images" validate:"required,min=1,max=6,dive"`
}

type updateListingRequest struct {
	Name            string                 `json:"name"`
	Description     string                 `json:"description"`
	Address         string                 `json:"address"`
	RegularPrice    *float64               `json:"regularPrice"`
	DiscountedPrice *float64               `json:"discountedPrice"`
	Offer           *bool                  `json:"offer"`
	Category        string                 `json:"category"`
	SubCategory     string                 `json:"subCategory"`
	Details         map[string]interface{} `json:"details"`
	Images          []listingImageRequest  `json:"images" validate:"omitempty,max=6,dive"`
}

type promoteRequest struct {
	Days int `json:"days" validate:"omitempty,min=1"`
}

type boostRequest struct {
	Hours int `json:"hours" validate:"omitempty,min=1"`
}

// listingView decorates a listing with the read-time promotion evaluation so
// clients never have to compare expiry timestamps themselves.
type listingView struct {
	*entity.Listing
	FeaturedActive bool `json:"featuredActive"`
	BoostedActive  bool `json:"boostedActive"`
}

func newListingView(l *entity.Listing) listingView {
	now := time.Now()
	return listingView{
		Listing:        l,
		FeaturedActive: l.FeaturedActive(now),
		BoostedActive:  l.BoostedActive(now),
	}
}

func newListingViews(listings []*entity.Listing) []listingView {
	views := make([]listingView, len(listings))
	for i, l := range listings {
		views[i] = newListingView(l)
	}
	return views
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req createListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	userID := middleware.UserID(c)

	listing, err := h.listingUseCase.Create(c.Request().Context(), userID, usecase.CreateListingInput{
		Name:            req.Name,
		Description:     req.Description,
		Address:         req.Address,
		RegularPrice:    req.RegularPrice,
		DiscountedPrice: req.DiscountedPrice,
		Offer:           req.Offer,
		Category:        req.Category,
		SubCategory:     req.SubCategory,
		Details:         req.Details,
		Images:          toImageInputs(req.Images),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, newListingView(listing))
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	listing, err := h.listingUseCase.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, newListingView(listing))
}

func (h *ListingHandler) ListListings(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	filter := repository.ListingFilter{
		SearchTerm:  c.QueryParam("searchTerm"),
		Category:    c.QueryParam("category"),
		SubCategory: c.QueryParam("subCategory"),
		Type:        c.QueryParam("type"),
		Offer:       parseBoolParam(c, "offer"),
		Furnished:   parseBoolParam(c, "furnished"),
		Parking:     parseBoolParam(c, "parking"),
		Featured:    c.QueryParam("featured") == "true",
		Sort:        c.QueryParam("sort"),
		Order:       c.QueryParam("order"),
		Limit:       pagination.Limit,
		StartIndex:  pagination.StartIndex,
	}
	if v, err := strconv.ParseFloat(c.QueryParam("minPrice"), 64); err == nil {
		filter.MinPrice = v
	}
	if v, err := strconv.ParseFloat(c.QueryParam("maxPrice"), 64); err == nil {
		filter.MaxPrice = v
	}

	listings, total, err := h.listingUseCase.List(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, newListingViews(listings), total, pagination.Page(), pagination.Limit)
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	var req updateListingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.UpdateListingInput{
		Name:            req.Name,
		Description:     req.Description,
		Address:         req.Address,
		RegularPrice:    req.RegularPrice,
		DiscountedPrice: req.DiscountedPrice,
		Offer:           req.Offer,
		Category:        req.Category,
		SubCategory:     req.SubCategory,
		Details:         req.Details,
	}
	if req.Images != nil {
		input.Images = toImageInputs(req.Images)
	}

	listing, err := h.listingUseCase.Update(c.Request().Context(), c.Param("id"), middleware.UserID(c), input)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, newListingView(listing))
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	err := h.listingUseCase.Delete(c.Request().Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{
		"message": "Listing has been deleted",
	})
}

func (h *ListingHandler) PromoteListing(c echo.Context) error {
	return h.promote(c, middleware.UserID(c), false)
}

// PromoteWebhook is reached only behind the shared-secret middleware.
func (h *ListingHandler) PromoteWebhook(c echo.Context) error {
	return h.promote(c, "", true)
}

func (h *ListingHandler) promote(c echo.Context, actorID string, viaWebhook bool) error {
	var req promoteRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Promote(c.Request().Context(), c.Param("id"), actorID, viaWebhook, req.Days)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, newListingView(listing))
}

func (h *ListingHandler) BoostListing(c echo.Context) error {
	return h.boost(c, middleware.UserID(c), false)
}

func (h *ListingHandler) BoostWebhook(c echo.Context) error {
	return h.boost(c, "", true)
}

func (h *ListingHandler) boost(c echo.Context, actorID string, viaWebhook bool) error {
	var req boostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	listing, err := h.listingUseCase.Boost(c.Request().Context(), c.Param("id"), actorID, viaWebhook, req.Hours)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, newListingView(listing))
}

// GetSchema serves the field schema that drives the listing form for a
// (category, subCategory) pair.
func (h *ListingHandler) GetSchema(c echo.Context) error {
	category := c.QueryParam("category")
	subCategory := c.QueryParam("subCategory")

	cfg := catalog.ConfigFor(category, subCategory)
	return response.Success(c, map[string]interface{}{
		"category":    category,
		"subCategory": subCategory,
		"fields":      cfg.Fields,
		"required":    cfg.Required,
		"metadata":    catalog.MetaForFields(cfg.Fields),
	})
}

func toImageInputs(images []listingImageRequest) []usecase.ListingImageInput {
	inputs := make([]usecase.ListingImageInput, len(images))
	for i, img := range images {
		inputs[i] = usecase.ListingImageInput{URL: img.URL, AssetID: img.AssetID}
	}
	return inputs
}

// parseBoolParam returns nil when the query param is absent or malformed so
// an unset filter stays "don't care" instead of becoming false.
func parseBoolParam(c echo.Context, name string) *bool {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}
