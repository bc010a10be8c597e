package dto

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAddStockRequest_Validate(t *testing.T) {
	valid := func() AddStockRequest {
		return AddStockRequest{
			ItemName:     "Flour",
			Unit:         "g",
			PackageSize:  decimal.NewFromInt(500),
			FullPackages: 2,
			LocationID:   "pantry-1",
		}
	}

	tests := []struct {
		name          string
		mutate        func(r *AddStockRequest)
		expectedField string
	}{
		{name: "valid request", mutate: func(r *AddStockRequest) {}},
		{name: "unit alias", mutate: func(r *AddStockRequest) { r.Unit = "Cups" }},
		{name: "missing name", mutate: func(r *AddStockRequest) { r.ItemName = "  " }, expectedField: "item_name"},
		{name: "unknown unit", mutate: func(r *AddStockRequest) { r.Unit = "handful" }, expectedField: "unit"},
		{name: "zero package size", mutate: func(r *AddStockRequest) { r.PackageSize = decimal.Zero }, expectedField: "package_size"},
		{name: "negative count", mutate: func(r *AddStockRequest) { r.FullPackages = -1 }, expectedField: "full_packages"},
		{name: "negative remainder", mutate: func(r *AddStockRequest) { r.OpenedRemaining = decimal.NewFromInt(-1) }, expectedField: "opened_remaining"},
		{name: "missing location", mutate: func(r *AddStockRequest) { r.LocationID = "" }, expectedField: "location_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid()
			tt.mutate(&req)

			err := req.Validate()

			if tt.expectedField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.expectedField, verr.Field)
		})
	}
}

func TestTransferRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		request       TransferRequest
		expectedError bool
	}{
		{
			name: "valid request",
			request: TransferRequest{
				GroupKey:   "flour|g",
				Operation:  "spoil",
				Selections: map[string]SizeSelectionRequest{"500": {FullCount: 1}},
			},
		},
		{
			name:          "missing selections",
			request:       TransferRequest{GroupKey: "flour|g", Operation: "spoil"},
			expectedError: true,
		},
		{
			name: "negative partial amount",
			request: TransferRequest{
				GroupKey:   "flour|g",
				Operation:  "spoil",
				Selections: map[string]SizeSelectionRequest{"500": {PartialAmount: decimal.NewFromInt(-5)}},
			},
			expectedError: true,
		},
		{
			name: "missing operation",
			request: TransferRequest{
				GroupKey:   "flour|g",
				Selections: map[string]SizeSelectionRequest{"500": {FullCount: 1}},
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEatRequest_Validate(t *testing.T) {
	assert.Error(t, (&EatRequest{}).Validate())
	assert.Error(t, (&EatRequest{Items: []EatItemRequest{{GroupKey: "milk|ml"}}}).Validate())
	assert.Error(t, (&EatRequest{Items: []EatItemRequest{{GroupKey: "milk|ml", Amount: decimal.NewFromInt(1), Unit: "bucket"}}}).Validate())
	assert.NoError(t, (&EatRequest{Items: []EatItemRequest{{GroupKey: "milk|ml", Amount: decimal.NewFromInt(250)}}}).Validate())
}

func TestCookRequest_Validate(t *testing.T) {
	valid := CookRequest{
		RecipeName:    "Pancakes",
		Ingredients:   []IngredientRequest{{Name: "flour", Amount: decimal.NewFromInt(2), Unit: "cup"}},
		TotalServings: 4,
		ServingsEaten: 1,
		Leftovers:     []LeftoverRequest{{LocationID: "fridge-1", Servings: 3}},
	}
	assert.NoError(t, valid.Validate())

	noServings := valid
	noServings.TotalServings = 0
	assert.Error(t, noServings.Validate())

	badUnit := valid
	badUnit.Ingredients = []IngredientRequest{{Name: "flour", Amount: decimal.NewFromInt(2), Unit: "pinch"}}
	assert.Error(t, badUnit.Validate())

	negativeLeftover := valid
	negativeLeftover.Leftovers = []LeftoverRequest{{LocationID: "fridge-1", Servings: -1}}
	assert.Error(t, negativeLeftover.Validate())
}

func TestCreateLocationRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CreateLocationRequest{Name: "Garage freezer", Kind: "freezer"}).Validate())
	assert.Error(t, (&CreateLocationRequest{Name: "Garage", Kind: "garage"}).Validate())
	assert.Error(t, (&CreateLocationRequest{Kind: "pantry"}).Validate())
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: "unit", Message: "unknown unit"}
	assert.Equal(t, "unit: unknown unit", err.Error())
}
