package expense

import (
	"net/http"

	"lodge/infras/otel"
	"lodge/internal/domains/expense/model"
	"lodge/internal/domains/expense/model/dto"
	"lodge/internal/domains/expense/service"
	"lodge/shared/constant"
	gDto "lodge/shared/dto"
	"lodge/shared/validator"
	"lodge/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Expense
	otel    otel.Otel
}

func New(service service.Expense, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/expenses", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateExpense)
		routerGroup.Get("/", handler.GetExpenses)
		routerGroup.Get("/{id}", handler.GetExpenseByID)
		routerGroup.Patch("/{id}", handler.UpdateExpense)
		routerGroup.Delete("/{id}", handler.DeleteExpense)
	})
}

// CreateExpense handles the creation of a new expense.
// @Summary Create a new expense
// @Description Record an operating expense with its amount and date.
// @Tags Expense
// @Accept json
// @Produce json
// @Param request body dto.CreateExpenseRequest true "Create Expense Request"
// @Success 201 {object} response.Message "Expense created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/expenses [post]
func (handler *Handler) CreateExpense(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateExpense")
	defer scope.End()

	req := dto.CreateExpenseRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create expense")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Expense created successfully")

	response.WithMessage(writer, http.StatusCreated, "Expense created successfully")
}

// GetExpenses retrieves all expenses based on query parameters.
// @Summary Get all expenses
// @Description Retrieve all expenses with optional filtering and pagination.
// @Tags Expense
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name (substring match)"
// @Success 200 {object} response.Data[dto.GetExpensesResponse] "List of expenses"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/expenses [get]
func (handler *Handler) GetExpenses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExpenses")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	expenses, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get expenses")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Expenses retrieved successfully")

	response.WithJSON(w, http.StatusOK, expenses)
}

// GetExpenseByID retrieves an expense by its ID.
// @Summary Get an expense by ID
// @Description Retrieve an expense by its unique identifier.
// @Tags Expense
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} response.Data[dto.ExpenseResponse] "Expense details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/expenses/{id} [get]
func (handler *Handler) GetExpenseByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExpenseByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	expense, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get expense by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Expense retrieved successfully")

	response.WithJSON(w, http.StatusOK, expense)
}

// UpdateExpense updates an existing expense by its ID.
// @Summary Update an expense by ID
// @Description Update the details of an existing expense.
// @Tags Expense
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Param request body dto.UpdateExpenseRequest true "Update Expense Request"
// @Success 200 {object} response.Message "Expense updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/expenses/{id} [patch]
func (handler *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateExpense")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateExpenseRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update expense")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Expense updated successfully")

	response.WithMessage(w, http.StatusOK, "Expense updated successfully")
}

// DeleteExpense deletes an expense by its ID.
// @Summary Delete an expense by ID
// @Description Delete an expense by its unique identifier.
// @Tags Expense
// @Accept json
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} response.Message "Expense deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/expenses/{id} [delete]
func (handler *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteExpense")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete expense")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Expense deleted successfully")

	response.WithMessage(w, http.StatusOK, "Expense deleted successfully")
}
