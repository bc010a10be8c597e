package model

// Macros is an optional nutrition annotation. Inventory arithmetic never reads it.
type Macros struct {
	Calories float64 `json:"calories" bson:"calories"`
	Protein  float64 `json:"protein" bson:"protein"`
	Carbs    float64 `json:"carbs" bson:"carbs"`
	Fat      float64 `json:"fat" bson:"fat"`
	Fiber    float64 `json:"fiber,omitempty" bson:"fiber,omitempty"`
	Sugar    float64 `json:"sugar,omitempty" bson:"sugar,omitempty"`
}

// ServingSize describes what one serving of Macros refers to.
type ServingSize struct {
	Amount float64 `json:"amount" bson:"amount"`
	Unit   string  `json:"unit" bson:"unit"`
}

// NutritionFacts is the output of the external nutrition estimator.
type NutritionFacts struct {
	PerServing  Macros      `json:"per_serving"`
	ServingSize ServingSize `json:"serving_size"`
}
