package ratecard

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/ratecard/model"
	"lodge/internal/domains/ratecard/model/dto"
	"lodge/internal/domains/ratecard/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.RateCard
	otel    otel.Otel
}

func New(service service.RateCard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/ratecards", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRateCard)
		routerGroup.Get("/", handler.GetRateCards)
		routerGroup.Get("/{id}", handler.GetRateCardByID)
		routerGroup.Patch("/{id}", handler.UpdateRateCard)
		routerGroup.Delete("/{id}", handler.DeleteRateCard)
	})
}

// CreateRateCard handles the creation of a new rate card.
// @Summary Create a new rate card
// @Description Create a rate card for a room and bathroom category.
// @Tags RateCard
// @Accept json
// @Produce json
// @Param request body dto.CreateRateCardRequest true "Create RateCard Request"
// @Success 201 {object} response.Message "Rate card created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ratecards [post]
func (handler *Handler) CreateRateCard(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRateCard")
	defer scope.End()

	req := dto.CreateRateCardRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create rate card")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Rate card created successfully")

	response.WithMessage(writer, http.StatusCreated, "Rate card created successfully")
}

// GetRateCards retrieves all rate cards based on query parameters.
// @Summary Get all rate cards
// @Description Retrieve all rate cards with optional filtering and pagination.
// @Tags RateCard
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_type query string false "Filter by room type (standard, deluxe)"
// @Param bathroom_type query string false "Filter by bathroom type (attached, shared)"
// @Param duration_type query string false "Filter by duration type (daily, monthly)"
// @Success 200 {object} response.Data[dto.GetRateCardsResponse] "List of rate cards"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ratecards [get]
func (handler *Handler) GetRateCards(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRateCards")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	roomType := r.URL.Query().Get(model.FieldRoomType)
	bathroomType := r.URL.Query().Get(model.FieldBathroomType)
	durationType := r.URL.Query().Get(model.FieldDurationType)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if roomType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomType,
			Operator: gDto.FilterOperatorEq,
			Value:    roomType,
			Table:    model.TableName,
		})
	}

	if bathroomType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBathroomType,
			Operator: gDto.FilterOperatorEq,
			Value:    bathroomType,
			Table:    model.TableName,
		})
	}

	if durationType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDurationType,
			Operator: gDto.FilterOperatorEq,
			Value:    durationType,
			Table:    model.TableName,
		})
	}

	rateCards, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rate cards")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rate cards retrieved successfully")

	response.WithJSON(w, http.StatusOK, rateCards)
}

// GetRateCardByID retrieves a rate card by its ID.
// @Summary Get a rate card by ID
// @Description Retrieve a rate card by its unique identifier.
// @Tags RateCard
// @Accept json
// @Produce json
// @Param id path string true "Rate card ID"
// @Success 200 {object} response.Data[dto.RateCardResponse] "Rate card details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ratecards/{id} [get]
func (handler *Handler) GetRateCardByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRateCardByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	rateCard, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rate card by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rate card retrieved successfully")

	response.WithJSON(w, http.StatusOK, rateCard)
}

// UpdateRateCard updates an existing rate card by its ID.
// @Summary Update a rate card by ID
// @Description Update the details of an existing rate card.
// @Tags RateCard
// @Accept json
// @Produce json
// @Param id path string true "Rate card ID"
// @Param request body dto.UpdateRateCardRequest true "Update RateCard Request"
// @Success 200 {object} response.Message "Rate card updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ratecards/{id} [patch]
func (handler *Handler) UpdateRateCard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRateCard")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRateCardRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update rate card")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rate card updated successfully")

	response.WithMessage(w, http.StatusOK, "Rate card updated successfully")
}

// DeleteRateCard deletes a rate card by its ID.
// @Summary Delete a rate card by ID
// @Description Delete a rate card by its unique identifier.
// @Tags RateCard
// @Accept json
// @Produce json
// @Param id path string true "Rate card ID"
// @Success 200 {object} response.Message "Rate card deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ratecards/{id} [delete]
func (handler *Handler) DeleteRateCard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRateCard")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete rate card")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rate card deleted successfully")

	response.WithMessage(w, http.StatusOK, "Rate card deleted successfully")
}
